package services

import (
	"context"
	"fmt"

	"order-grouping-service/internal/domain"
	"order-grouping-service/internal/timeparse"
)

// Score component ceilings. Buffer band dominates: a pair with a zero
// band score is never suggested regardless of the other bonuses.
const (
	samePostalCodeBonus   = 15
	samePostalPrefixBonus = 8
	sameBucketBonus       = 15

	highGroupRateThreshold = 0.7
)

// hop is one admissible dropoff->pickup transition, scored on the
// hand-off point.
type hop struct {
	bufferMin int
	score     int
	risky     bool
	reasons   []string
}

// scoredPair is the admissible execution sequence of two orders with
// its desirability score.
type scoredPair struct {
	first  *domain.Order
	second *domain.Order
	hop    hop
}

// scorePair determines whether two orders can be sequenced back to
// back under the tier's buffer window and scores the better ordering.
// Selection is symmetric in the argument order: both orderings are
// always evaluated, and when both are admissible the tighter buffer
// wins (efficiency over slack).
func (e *Engine) scorePair(ctx context.Context, a, b *domain.Order, tier Tier) (scoredPair, bool) {
	aPick, okA := timeparse.Minutes(a.PickupTime)
	bPick, okB := timeparse.Minutes(b.PickupTime)
	if !okA || !okB {
		return scoredPair{}, false
	}

	// One driver cannot start two pickups simultaneously.
	if aPick == bPick {
		return scoredPair{}, false
	}

	ab, okAB := e.scoreHop(ctx, a, b, tier)
	ba, okBA := e.scoreHop(ctx, b, a, tier)

	switch {
	case okAB && okBA:
		if ba.bufferMin < ab.bufferMin {
			return scoredPair{first: b, second: a, hop: ba}, true
		}
		return scoredPair{first: a, second: b, hop: ab}, true
	case okAB:
		return scoredPair{first: a, second: b, hop: ab}, true
	case okBA:
		return scoredPair{first: b, second: a, hop: ba}, true
	default:
		return scoredPair{}, false
	}
}

// scoreHop evaluates the fixed sequence first->second: admissibility of
// the buffer under the tier window, reachability at the hand-off, and
// the 0-100 desirability score.
func (e *Engine) scoreHop(ctx context.Context, first, second *domain.Order, tier Tier) (hop, bool) {
	_, ok := timeparse.Minutes(first.PickupTime)
	if !ok {
		return hop{}, false
	}
	firstDrop, ok := timeparse.Minutes(first.DropoffTime)
	if !ok {
		return hop{}, false
	}
	secondPick, ok := timeparse.Minutes(second.PickupTime)
	if !ok {
		return hop{}, false
	}

	buffer := secondPick - firstDrop
	if buffer < tier.MinBufferMin || buffer > tier.MaxBufferMin {
		return hop{}, false
	}

	band, bandReason := bufferBandScore(buffer)
	if band == 0 {
		return hop{}, false
	}

	// Region and proximity apply at the hand-off point: the first
	// order's dropoff and the second order's pickup.
	fromZip, _ := e.resolver.ExtractPostalCode(first.DropoffAddress)
	toZip, _ := e.resolver.ExtractPostalCode(second.PickupAddress)

	verdict := e.checker.Check(ctx, fromZip, toZip, buffer)
	if !verdict.Reachable {
		return hop{}, false
	}

	h := hop{
		bufferMin: buffer,
		score:     band,
		risky:     verdict.Risky,
		reasons:   []string{bandReason},
	}

	fromRegion := e.resolver.Region(fromZip)
	toRegion := e.resolver.Region(toZip)
	if regionScore := e.resolver.RegionTransitionScore(fromRegion, toRegion); regionScore != 0 {
		h.score += regionScore
		if regionScore > 0 {
			h.reasons = append(h.reasons, fmt.Sprintf("region %s to %s (+%d)", fromRegion, toRegion, regionScore))
		} else {
			h.reasons = append(h.reasons, fmt.Sprintf("remote region transition (%d)", regionScore))
		}
	}

	switch {
	case fromZip != "" && fromZip == toZip:
		h.score += samePostalCodeBonus
		h.reasons = append(h.reasons, fmt.Sprintf("same postal code %s at hand-off (+%d)", fromZip, samePostalCodeBonus))
	case len(fromZip) == 5 && len(toZip) == 5 && fromZip[:3] == toZip[:3]:
		h.score += samePostalPrefixBonus
		h.reasons = append(h.reasons, fmt.Sprintf("nearby postal prefix %s (+%d)", fromZip[:3], samePostalPrefixBonus))
	}

	if bf, bs := bucketOf(first), bucketOf(second); bf != "" && bf == bs {
		h.score += sameBucketBonus
		h.reasons = append(h.reasons, fmt.Sprintf("both %s orders (+%d)", bf, sameBucketBonus))
	}

	// Historical grouping propensity is a soft signal surfaced for
	// audit, never a gate.
	if rate := e.resolver.ClusterGroupRate(toZip); rate >= highGroupRateThreshold {
		h.reasons = append(h.reasons, fmt.Sprintf("hand-off cluster groups %.0f%% of orders historically", rate*100))
	}

	if verdict.Risky {
		h.reasons = append(h.reasons, fmt.Sprintf("risky: estimated drive %dm close to buffer", verdict.DriveMinutes))
	}

	if h.score < 0 {
		h.score = 0
	}
	if h.score > 100 {
		h.score = 100
	}

	return h, true
}

// bufferBandScore rates the buffer in minutes. The 15-45 window is the
// empirically optimal band; overlaps and gaps beyond two hours
// disqualify outright.
func bufferBandScore(buffer int) (int, string) {
	switch {
	case buffer < 0:
		return 0, ""
	case buffer < 15:
		return 20, fmt.Sprintf("tight %dm buffer (+20)", buffer)
	case buffer <= 45:
		return 50, fmt.Sprintf("buffer %dm in optimal window (+50)", buffer)
	case buffer <= 60:
		return 40, fmt.Sprintf("buffer %dm (+40)", buffer)
	case buffer <= 90:
		return 25, fmt.Sprintf("wide %dm buffer (+25)", buffer)
	case buffer <= 120:
		return 10, fmt.Sprintf("very wide %dm buffer (+10)", buffer)
	default:
		return 0, ""
	}
}

// bucketOf prefers the snapshot's precomputed band and falls back to
// deriving it from the pickup time.
func bucketOf(o *domain.Order) domain.TimeBucket {
	if o.Bucket != "" {
		return o.Bucket
	}
	if m, ok := timeparse.Minutes(o.PickupTime); ok {
		return domain.BucketForMinutes(m)
	}
	return ""
}
