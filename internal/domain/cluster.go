package domain

// Coarse geographic region tag for a postal cluster.
type Region string

const (
	RegionDC            Region = "DC"
	RegionVirginia      Region = "Virginia"
	RegionMaryland      Region = "Maryland"
	RegionOuterVirginia Region = "Outer Virginia"
	RegionOuterMaryland Region = "Outer Maryland"
)

// Represents a named geographic cluster of postal codes.
// Clusters are static reference data loaded once at startup and never
// mutated at runtime. GroupRate is the historical share of this
// cluster's orders that ended up grouped, in [0,1].
type PostalCluster struct {
	ID        string
	Name      string
	Region    Region
	Remote    bool
	ZipCodes  []string
	GroupRate float64
}
