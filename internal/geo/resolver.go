// Package geo maps postal codes to micro-region clusters and scores
// region-to-region transitions for grouping desirability.
package geo

import (
	"regexp"
	"strconv"

	"order-grouping-service/internal/domain"
)

var (
	stateZipRe = regexp.MustCompile(`\b(?:DC|VA|MD)[,.]?\s+(\d{5})\b`)
	zipTokenRe = regexp.MustCompile(`\b(\d{5})\b`)
)

// Numeric range of postal codes belonging to the service area.
// Used only as a fallback when no state abbreviation anchors the code.
const (
	serviceAreaZipLow  = 20001
	serviceAreaZipHigh = 24999
)

// Resolver answers cluster and region lookups against a static postal
// cluster table. It is read-only after construction and safe for
// concurrent use. Tests substitute fixture tables; production wiring
// uses DefaultClusters.
type Resolver struct {
	byZip         map[string]*domain.PostalCluster
	remoteRegions map[domain.Region]bool
}

func NewResolver(clusters []domain.PostalCluster) *Resolver {
	byZip := make(map[string]*domain.PostalCluster)
	remoteRegions := make(map[domain.Region]bool)
	for i := range clusters {
		c := &clusters[i]
		for _, zip := range c.ZipCodes {
			byZip[zip] = c
		}
		if c.Remote {
			remoteRegions[c.Region] = true
		}
	}
	return &Resolver{byZip: byZip, remoteRegions: remoteRegions}
}

// ExtractPostalCode pulls a 5-digit postal code out of a free-text
// address. Preference order: a code anchored by a DC/VA/MD state
// abbreviation, then any code in the service-area numeric range, then
// the last 5-digit token found. Returns false when the address holds
// no 5-digit token at all.
func (r *Resolver) ExtractPostalCode(address string) (string, bool) {
	if m := stateZipRe.FindStringSubmatch(address); m != nil {
		return m[1], true
	}

	tokens := zipTokenRe.FindAllString(address, -1)
	if len(tokens) == 0 {
		return "", false
	}

	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err == nil && n >= serviceAreaZipLow && n <= serviceAreaZipHigh {
			return tok, true
		}
	}

	return tokens[len(tokens)-1], true
}

// Cluster returns the cluster containing the code, or nil when unknown.
func (r *Resolver) Cluster(code string) *domain.PostalCluster {
	return r.byZip[code]
}

func (r *Resolver) SameCluster(a, b string) bool {
	ca, cb := r.byZip[a], r.byZip[b]
	return ca != nil && cb != nil && ca.ID == cb.ID
}

func (r *Resolver) SameRegion(a, b string) bool {
	ca, cb := r.byZip[a], r.byZip[b]
	return ca != nil && cb != nil && ca.Region == cb.Region
}

// Region returns the coarse region tag for a code, or "" when unknown.
func (r *Resolver) Region(code string) domain.Region {
	if c := r.byZip[code]; c != nil {
		return c.Region
	}
	return ""
}

// Remote reports whether the code falls in a remote/outlying cluster.
// Unknown codes are not remote; reachability handles them separately.
func (r *Resolver) Remote(code string) bool {
	c := r.byZip[code]
	return c != nil && c.Remote
}

// Transition scores between coarse regions. Keys are unordered pairs.
var adjacentRegionScores = map[[2]domain.Region]int{
	{domain.RegionDC, domain.RegionVirginia}:       12,
	{domain.RegionDC, domain.RegionMaryland}:       12,
	{domain.RegionVirginia, domain.RegionMaryland}: 5,
}

// RegionTransitionScore rates a hand-off crossing from one region to
// another. Same region scores a high bonus, adjacent core-metro regions
// a medium one, and any remote/outlying region on either end scores
// negative to discourage long-haul grouping. A region counts as remote
// when the cluster table flags any of its clusters Remote, so this
// stays consistent with Remote. Unknown or unlisted combinations score
// zero; the function is total over all inputs.
func (r *Resolver) RegionTransitionScore(from, to domain.Region) int {
	if r.remoteRegions[from] || r.remoteRegions[to] {
		return -15
	}
	if from == "" || to == "" {
		return 0
	}
	if from == to {
		return 20
	}
	if s, ok := adjacentRegionScores[[2]domain.Region{from, to}]; ok {
		return s
	}
	if s, ok := adjacentRegionScores[[2]domain.Region{to, from}]; ok {
		return s
	}
	return 0
}

// ClusterGroupRate returns the historical grouping propensity for the
// code's cluster, defaulting to a neutral 0.5 when the code is unknown.
func (r *Resolver) ClusterGroupRate(code string) float64 {
	if c := r.byZip[code]; c != nil {
		return c.GroupRate
	}
	return 0.5
}
