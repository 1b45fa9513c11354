// Package durations implements the DurationProvider port against a
// Maps-style drive-time HTTP API, with a lookaside cache in front.
package durations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"order-grouping-service/internal/platform/obs"
	"order-grouping-service/internal/ports"
)

var zipRe = regexp.MustCompile(`^\d{5}$`)

// MapsDurationProvider resolves zip-to-zip drive durations through an
// external Maps API. It coordinates:
//   - input validation (plain 5-digit zips only)
//   - lookaside caching of resolved pairs
//   - external API calls with retry/backoff
//
// The provider is safe for concurrent use. Cache failures are logged
// and treated as misses; the provider itself fails only when the API
// cannot produce a usable result.
type MapsDurationProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	cache   ports.DurationCache
}

func NewMapsDurationProvider(apiKey string, baseURL string, cache ports.DurationCache) (*MapsDurationProvider, error) {
	if apiKey == "" {
		return nil, errors.New("maps api key is empty")
	}
	if baseURL == "" {
		return nil, errors.New("maps base url is empty")
	}

	return &MapsDurationProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: baseURL,
		cache:   cache,
	}, nil
}

type driveTimeResponse struct {
	DistanceMeters  int `json:"distance_meters"`
	DurationSeconds int `json:"duration_seconds"`
}

// GetDuration returns the drive distance and duration between two
// postal codes, consulting the cache before the external API.
func (m *MapsDurationProvider) GetDuration(ctx context.Context, originZip, destZip string) (_ ports.DurationResult, err error) {
	defer obs.Time(ctx, "maps.GetDuration")(&err)

	if !zipRe.MatchString(originZip) || !zipRe.MatchString(destZip) {
		return ports.DurationResult{}, fmt.Errorf("get duration: invalid zip pair %q -> %q", originZip, destZip)
	}

	if m.cache != nil {
		res, ok, err := m.cache.Get(ctx, originZip, destZip)
		if err != nil {
			log.Printf("duration cache read failed: %v", err)
		} else if ok {
			return res, nil
		}
	}

	res, err := m.fetchDriveTime(ctx, originZip, destZip)
	if err != nil {
		return ports.DurationResult{}, fmt.Errorf("get duration %q -> %q: %w", originZip, destZip, err)
	}

	if m.cache != nil {
		if err := m.cache.Put(ctx, originZip, destZip, res); err != nil {
			log.Printf("duration cache write failed: %v", err)
		}
	}

	return res, nil
}

func (m *MapsDurationProvider) fetchDriveTime(ctx context.Context, originZip, destZip string) (ports.DurationResult, error) {
	q := url.Values{}
	q.Set("origin", originZip)
	q.Set("destination", destZip)
	q.Set("mode", "driving")
	endpoint := m.baseURL + "/v1/drivetime?" + q.Encode()

	resp, err := m.doWithRetry(ctx, func() (*http.Request, error) {
		return m.newRequest(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return ports.DurationResult{}, fmt.Errorf("fetch drive time: %w", err)
	}
	defer resp.Body.Close()

	var body driveTimeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.DurationResult{}, fmt.Errorf("fetch drive time: decode response: %w", err)
	}

	if body.DurationSeconds <= 0 {
		return ports.DurationResult{}, fmt.Errorf("fetch drive time: non-positive duration %d", body.DurationSeconds)
	}

	return ports.DurationResult{
		DistanceMeters:  body.DistanceMeters,
		DurationSeconds: body.DurationSeconds,
	}, nil
}
