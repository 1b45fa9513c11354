package durations

import (
	"context"
	"fmt"

	"order-grouping-service/internal/ports"
)

type MockPair struct {
	From, To string
	Meters   int
	Seconds  int
}

// MockDurationProvider serves fixed zip-pair durations for tests.
type MockDurationProvider struct {
	m map[string]ports.DurationResult
}

func NewMockDurationProvider(pairs []MockPair) *MockDurationProvider {
	m := make(map[string]ports.DurationResult, len(pairs))
	for _, p := range pairs {
		m[p.From+"|"+p.To] = ports.DurationResult{DistanceMeters: p.Meters, DurationSeconds: p.Seconds}
	}
	return &MockDurationProvider{m: m}
}

func (p *MockDurationProvider) GetDuration(ctx context.Context, originZip, destZip string) (ports.DurationResult, error) {
	r, ok := p.m[originZip+"|"+destZip]
	if !ok {
		return ports.DurationResult{}, fmt.Errorf("missing pair %q -> %q", originZip, destZip)
	}

	return r, nil
}
