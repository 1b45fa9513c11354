package ports

import "context"

// Port: a lookaside cache for zip-pair duration results.
// A miss is not an error; callers fall through to on-demand computation.
type DurationCache interface {
	// Return the cached result for the pair and whether it was present.
	Get(ctx context.Context, originZip string, destZip string) (DurationResult, bool, error)
	// Store a result for the pair.
	Put(ctx context.Context, originZip string, destZip string, res DurationResult) error
}
