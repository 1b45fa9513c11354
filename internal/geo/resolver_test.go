package geo

import (
	"testing"

	"order-grouping-service/internal/domain"
)

func testResolver() *Resolver {
	return NewResolver([]domain.PostalCluster{
		{
			ID:        "downtown-dc",
			Name:      "Downtown DC",
			Region:    domain.RegionDC,
			ZipCodes:  []string{"20004", "20005"},
			GroupRate: 0.82,
		},
		{
			ID:        "arlington",
			Name:      "Arlington",
			Region:    domain.RegionVirginia,
			ZipCodes:  []string{"22201"},
			GroupRate: 0.77,
		},
		{
			ID:        "fredericksburg",
			Name:      "Fredericksburg",
			Region:    domain.RegionOuterVirginia,
			Remote:    true,
			ZipCodes:  []string{"22401"},
			GroupRate: 0.21,
		},
		{
			ID:        "frederick-md",
			Name:      "Frederick",
			Region:    domain.RegionOuterMaryland,
			Remote:    true,
			ZipCodes:  []string{"21701"},
			GroupRate: 0.19,
		},
	})
}

func TestExtractPostalCode(t *testing.T) {
	r := testResolver()

	cases := []struct {
		address string
		want    string
		ok      bool
	}{
		{"1455 K St NW, Washington, DC 20005", "20005", true},
		{"Suite 900, Arlington, VA 22201, USA", "22201", true},
		{"Bethesda MD 20814", "20814", true},
		// No state anchor: first token in the service-area range wins.
		{"PO Box 10001 near 20005 Washington", "20005", true},
		// Out-of-range tokens only: last token is the best guess.
		{"Warehouse 90210 dock 10003", "10003", true},
		{"no zip here", "", false},
		{"", "", false},
	}

	for _, c := range cases {
		got, ok := r.ExtractPostalCode(c.address)
		if ok != c.ok || got != c.want {
			t.Errorf("ExtractPostalCode(%q) = (%q, %v), want (%q, %v)", c.address, got, ok, c.want, c.ok)
		}
	}
}

func TestClusterLookups(t *testing.T) {
	r := testResolver()

	if c := r.Cluster("20005"); c == nil || c.ID != "downtown-dc" {
		t.Fatalf("Cluster(20005) = %+v, want downtown-dc", c)
	}
	if c := r.Cluster("99999"); c != nil {
		t.Fatalf("Cluster(99999) = %+v, want nil", c)
	}

	if !r.SameCluster("20004", "20005") {
		t.Error("20004 and 20005 should share a cluster")
	}
	if r.SameCluster("20005", "22201") {
		t.Error("20005 and 22201 should not share a cluster")
	}
	if r.SameCluster("20005", "99999") {
		t.Error("unknown code must never match a cluster")
	}

	if !r.SameRegion("20004", "20005") {
		t.Error("20004 and 20005 should share a region")
	}
	if r.SameRegion("20005", "22201") {
		t.Error("DC and Virginia are distinct regions")
	}

	if !r.Remote("22401") {
		t.Error("22401 should be remote")
	}
	if r.Remote("20005") || r.Remote("99999") {
		t.Error("core and unknown codes must not be remote")
	}
}

func TestRegionTransitionScore(t *testing.T) {
	r := testResolver()

	cases := []struct {
		from, to domain.Region
		want     int
	}{
		{domain.RegionDC, domain.RegionDC, 20},
		{domain.RegionDC, domain.RegionVirginia, 12},
		{domain.RegionVirginia, domain.RegionDC, 12},
		{domain.RegionMaryland, domain.RegionVirginia, 5},
		{domain.RegionDC, domain.RegionOuterVirginia, -15},
		{domain.RegionOuterMaryland, domain.RegionDC, -15},
		{domain.RegionOuterVirginia, domain.RegionOuterVirginia, -15},
		{"", domain.RegionDC, 0},
		{domain.RegionDC, "", 0},
		{"", "", 0},
		{"Delaware", "DC", 0},
	}

	for _, c := range cases {
		if got := r.RegionTransitionScore(c.from, c.to); got != c.want {
			t.Errorf("RegionTransitionScore(%q, %q) = %d, want %d", c.from, c.to, got, c.want)
		}
	}
}

func TestRemoteRegionsFollowClusterTable(t *testing.T) {
	// Remoteness is a property of the configured clusters, not of the
	// region tag: a deployment flagging a core region Remote gets the
	// transition penalty too.
	r := NewResolver([]domain.PostalCluster{
		{
			ID:       "downtown-dc",
			Region:   domain.RegionDC,
			ZipCodes: []string{"20005"},
		},
		{
			ID:       "rural-md",
			Region:   domain.RegionMaryland,
			Remote:   true,
			ZipCodes: []string{"21501"},
		},
	})

	if !r.Remote("21501") {
		t.Fatal("21501 should be remote")
	}
	if got := r.RegionTransitionScore(domain.RegionDC, domain.RegionMaryland); got != -15 {
		t.Errorf("transition into a remote-flagged region = %d, want -15", got)
	}
	if got := r.RegionTransitionScore(domain.RegionMaryland, domain.RegionDC); got != -15 {
		t.Errorf("transition out of a remote-flagged region = %d, want -15", got)
	}
	// Regions absent from the table are simply not remote.
	if got := r.RegionTransitionScore(domain.RegionDC, domain.RegionVirginia); got != 12 {
		t.Errorf("core adjacent transition = %d, want 12", got)
	}
}

func TestClusterGroupRate(t *testing.T) {
	r := testResolver()

	if got := r.ClusterGroupRate("20005"); got != 0.82 {
		t.Errorf("ClusterGroupRate(20005) = %v, want 0.82", got)
	}
	if got := r.ClusterGroupRate("99999"); got != 0.5 {
		t.Errorf("ClusterGroupRate(99999) = %v, want neutral 0.5", got)
	}
}
