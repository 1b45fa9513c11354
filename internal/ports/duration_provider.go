package ports

import "context"

// Travel distance and duration between two postal codes.
type DurationResult struct {
	DistanceMeters  int
	DurationSeconds int
}

// Contract for retrieving a driving-duration estimate between two
// postal codes. Implementations may call a live Maps API; callers must
// tolerate errors and degrade to local estimation.
type DurationProvider interface {
	// Return travel distance and estimated driving duration between two
	// postal codes.
	GetDuration(ctx context.Context, originZip string, destZip string) (DurationResult, error)
}
