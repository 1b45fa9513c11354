package geo

import "order-grouping-service/internal/domain"

// DefaultClusters is the static DC-metro postal cluster table.
// Group rates come from historical daily snapshots of which clusters'
// orders actually ended up sharing a driver.
func DefaultClusters() []domain.PostalCluster {
	return []domain.PostalCluster{
		{
			ID:        "downtown-dc",
			Name:      "Downtown DC",
			Region:    domain.RegionDC,
			ZipCodes:  []string{"20001", "20004", "20005", "20006", "20036"},
			GroupRate: 0.82,
		},
		{
			ID:        "capitol-hill",
			Name:      "Capitol Hill / Navy Yard",
			Region:    domain.RegionDC,
			ZipCodes:  []string{"20002", "20003", "20024"},
			GroupRate: 0.74,
		},
		{
			ID:        "upper-nw-dc",
			Name:      "Upper Northwest DC",
			Region:    domain.RegionDC,
			ZipCodes:  []string{"20007", "20008", "20009", "20010", "20015", "20016"},
			GroupRate: 0.61,
		},
		{
			ID:        "arlington",
			Name:      "Arlington",
			Region:    domain.RegionVirginia,
			ZipCodes:  []string{"22201", "22202", "22203", "22204", "22205", "22209"},
			GroupRate: 0.77,
		},
		{
			ID:        "alexandria",
			Name:      "Alexandria",
			Region:    domain.RegionVirginia,
			ZipCodes:  []string{"22301", "22302", "22304", "22305", "22314"},
			GroupRate: 0.68,
		},
		{
			ID:        "tysons",
			Name:      "Tysons / McLean",
			Region:    domain.RegionVirginia,
			ZipCodes:  []string{"22101", "22102", "22182"},
			GroupRate: 0.54,
		},
		{
			ID:        "bethesda",
			Name:      "Bethesda / Chevy Chase",
			Region:    domain.RegionMaryland,
			ZipCodes:  []string{"20814", "20815", "20816", "20817"},
			GroupRate: 0.66,
		},
		{
			ID:        "silver-spring",
			Name:      "Silver Spring / Takoma",
			Region:    domain.RegionMaryland,
			ZipCodes:  []string{"20901", "20902", "20910", "20912"},
			GroupRate: 0.63,
		},
		{
			ID:        "college-park",
			Name:      "College Park / Hyattsville",
			Region:    domain.RegionMaryland,
			ZipCodes:  []string{"20740", "20742", "20782", "20783"},
			GroupRate: 0.49,
		},
		{
			ID:        "fredericksburg",
			Name:      "Fredericksburg",
			Region:    domain.RegionOuterVirginia,
			Remote:    true,
			ZipCodes:  []string{"22401", "22405", "22407"},
			GroupRate: 0.21,
		},
		{
			ID:        "leesburg",
			Name:      "Leesburg",
			Region:    domain.RegionOuterVirginia,
			Remote:    true,
			ZipCodes:  []string{"20175", "20176"},
			GroupRate: 0.24,
		},
		{
			ID:        "frederick-md",
			Name:      "Frederick",
			Region:    domain.RegionOuterMaryland,
			Remote:    true,
			ZipCodes:  []string{"21701", "21702", "21703"},
			GroupRate: 0.19,
		},
	}
}
