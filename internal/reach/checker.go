// Package reach decides whether a driver can plausibly travel between
// two postal codes within an available time buffer.
//
// The design fails closed: false positives create undeliverable routes,
// so unknown geography, long drives, and remote regions all default to
// rejection. A live duration provider is consulted first when
// configured; any provider failure degrades silently to the static
// coordinate table and a tiered speed model.
package reach

import (
	"context"
	"fmt"
	"math"

	"order-grouping-service/internal/ports"
)

const (
	// MinSlackMin is the smallest buffer accepted even for a same-zip
	// hand-off.
	MinSlackMin = 5
	// MaxDriveMin is the hard ceiling on intra-group drive time.
	// Longer drives are rejected regardless of schedule slack.
	MaxDriveMin = 25
	// RemoteMinBufferMin is the buffer required when either endpoint
	// sits in a remote/outlying region.
	RemoteMinBufferMin = 60

	// A drive consuming more than this share of the buffer is accepted
	// but flagged risky.
	riskyBufferFraction = 0.8

	metersPerMile = 1609.344
)

// Tiered average speeds: short hops crawl through town, longer legs
// spend more time on arterials and highways.
const (
	inTownSpeedMph  = 18.0
	mediumSpeedMph  = 28.0
	highwaySpeedMph = 40.0

	inTownMaxMiles = 5.0
	mediumMaxMiles = 15.0
)

// Latitude/longitude of a postal code centroid.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Verdict is the outcome of one reachability check. Reason is a
// human-readable explanation suitable for audit output.
type Verdict struct {
	Reachable     bool
	Risky         bool
	Reason        string
	DriveMinutes  int
	DistanceMiles float64
}

// Checker evaluates zip-to-zip reachability against an injected
// coordinate table, a remote-region classifier, and an optional live
// duration provider. It is read-only after construction and safe for
// concurrent use.
type Checker struct {
	coords   map[string]Coordinate
	remote   func(zip string) bool
	provider ports.DurationProvider
}

// NewChecker builds a Checker. remote may be nil (no region is treated
// as remote); provider may be nil (static estimation only).
func NewChecker(coords map[string]Coordinate, remote func(zip string) bool, provider ports.DurationProvider) *Checker {
	if remote == nil {
		remote = func(string) bool { return false }
	}
	return &Checker{coords: coords, remote: remote, provider: provider}
}

// Check decides whether a driver finishing at fromZip can plausibly
// start a pickup at toZip within bufferMin minutes.
func (c *Checker) Check(ctx context.Context, fromZip, toZip string, bufferMin int) Verdict {
	if fromZip == "" || toZip == "" {
		return Verdict{Reason: "missing postal code"}
	}

	if fromZip == toZip {
		if bufferMin < MinSlackMin {
			return Verdict{Reason: "buffer too short even for same location"}
		}
		return Verdict{
			Reachable: true,
			Reason:    "same postal code",
		}
	}

	// Unknown geography is never assumed safe.
	from, okFrom := c.coords[fromZip]
	to, okTo := c.coords[toZip]
	if !okFrom || !okTo {
		return Verdict{Reason: fmt.Sprintf("unknown postal code %s", firstUnknown(fromZip, toZip, okFrom))}
	}

	miles := haversineMiles(from, to)
	driveMin := driveMinutes(miles)

	// A live lookup refines the estimate when available; failures fall
	// back to the table-based estimate computed above.
	if c.provider != nil {
		if res, err := c.provider.GetDuration(ctx, fromZip, toZip); err == nil && res.DurationSeconds > 0 {
			driveMin = int(math.Ceil(float64(res.DurationSeconds) / 60))
			if driveMin < MinSlackMin {
				driveMin = MinSlackMin
			}
			if res.DistanceMeters > 0 {
				miles = float64(res.DistanceMeters) / metersPerMile
			}
		}
	}

	v := Verdict{DriveMinutes: driveMin, DistanceMiles: miles}

	if driveMin > MaxDriveMin {
		v.Reason = fmt.Sprintf("estimated drive %dm exceeds %dm ceiling", driveMin, MaxDriveMin)
		return v
	}

	if (c.remote(fromZip) || c.remote(toZip)) && bufferMin < RemoteMinBufferMin {
		v.Reason = fmt.Sprintf("remote region hand-off needs at least %dm buffer", RemoteMinBufferMin)
		return v
	}

	if driveMin > bufferMin {
		v.Reason = fmt.Sprintf("estimated drive %dm exceeds %dm buffer", driveMin, bufferMin)
		return v
	}

	v.Reachable = true
	v.Reason = fmt.Sprintf("estimated drive %dm within %dm buffer", driveMin, bufferMin)
	if float64(driveMin) > riskyBufferFraction*float64(bufferMin) {
		v.Risky = true
		v.Reason = fmt.Sprintf("estimated drive %dm close to %dm buffer", driveMin, bufferMin)
	}
	return v
}

func firstUnknown(fromZip, toZip string, okFrom bool) string {
	if !okFrom {
		return fromZip
	}
	return toZip
}

// driveMinutes converts straight-line miles to an estimated driving
// time using the tiered speed model, clamped to a 5 minute floor.
func driveMinutes(miles float64) int {
	speed := highwaySpeedMph
	switch {
	case miles <= inTownMaxMiles:
		speed = inTownSpeedMph
	case miles <= mediumMaxMiles:
		speed = mediumSpeedMph
	}

	est := int(math.Ceil(miles / speed * 60))
	if est < MinSlackMin {
		est = MinSlackMin
	}
	return est
}

func haversineMiles(a, b Coordinate) float64 {
	const earthRadiusMiles = 3958.8

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusMiles * c
}
