package reach

import (
	"context"
	"testing"

	"order-grouping-service/internal/adapters/durations"
	"order-grouping-service/internal/ports"
)

// Fixture zips laid out on one meridian so distances are predictable:
// one degree of latitude is ~69.1 miles.
func testChecker(provider ports.DurationProvider) *Checker {
	coords := map[string]Coordinate{
		"10001": {Lat: 39.00, Lon: -77.0},
		"10002": {Lat: 39.05, Lon: -77.0}, // ~3.5 mi, drive 12m
		"10003": {Lat: 39.10, Lon: -77.0}, // ~6.9 mi, drive 15m
		"10004": {Lat: 39.30, Lon: -77.0}, // ~20.7 mi, drive 32m
		"10009": {Lat: 39.04, Lon: -77.0}, // ~2.8 mi, drive 10m, remote
	}
	remote := func(zip string) bool { return zip == "10009" }
	return NewChecker(coords, remote, provider)
}

func TestCheckSameZip(t *testing.T) {
	c := testChecker(nil)

	if v := c.Check(context.Background(), "10001", "10001", MinSlackMin); !v.Reachable {
		t.Errorf("same zip with %dm buffer should be reachable: %s", MinSlackMin, v.Reason)
	}
	if v := c.Check(context.Background(), "10001", "10001", MinSlackMin-1); v.Reachable {
		t.Error("same zip with too-short buffer should be rejected")
	}
}

func TestCheckUnknownZipFailsClosed(t *testing.T) {
	c := testChecker(nil)

	if v := c.Check(context.Background(), "99999", "10001", 120); v.Reachable {
		t.Error("unknown origin must fail closed")
	}
	if v := c.Check(context.Background(), "10001", "99999", 120); v.Reachable {
		t.Error("unknown destination must fail closed")
	}
	if v := c.Check(context.Background(), "", "10001", 120); v.Reachable {
		t.Error("missing origin must fail closed")
	}
}

func TestCheckDriveCeiling(t *testing.T) {
	c := testChecker(nil)

	v := c.Check(context.Background(), "10001", "10004", 120)
	if v.Reachable {
		t.Errorf("drive of %dm should exceed the %dm ceiling", v.DriveMinutes, MaxDriveMin)
	}
	if v.DriveMinutes <= MaxDriveMin {
		t.Errorf("DriveMinutes = %d, want above ceiling", v.DriveMinutes)
	}
}

func TestCheckRemoteRegionVeto(t *testing.T) {
	c := testChecker(nil)

	// The raw drive estimate (10m) passes easily; the remote flag must
	// still reject anything under the remote minimum buffer.
	if v := c.Check(context.Background(), "10001", "10009", 30); v.Reachable {
		t.Errorf("remote hand-off with 30m buffer should be rejected, got %s", v.Reason)
	}
	if v := c.Check(context.Background(), "10001", "10009", RemoteMinBufferMin); !v.Reachable {
		t.Errorf("remote hand-off with %dm buffer should pass, got %s", RemoteMinBufferMin, v.Reason)
	}
}

func TestCheckBufferAndRisk(t *testing.T) {
	c := testChecker(nil)

	v := c.Check(context.Background(), "10001", "10002", 30)
	if !v.Reachable || v.Risky {
		t.Errorf("12m drive in 30m buffer should be comfortably reachable, got %+v", v)
	}
	if v.DriveMinutes != 12 {
		t.Errorf("DriveMinutes = %d, want 12", v.DriveMinutes)
	}

	v = c.Check(context.Background(), "10001", "10002", 13)
	if !v.Reachable || !v.Risky {
		t.Errorf("12m drive in 13m buffer should be reachable but risky, got %+v", v)
	}

	if v := c.Check(context.Background(), "10001", "10002", 11); v.Reachable {
		t.Error("12m drive in 11m buffer should be rejected")
	}
}

func TestCheckProviderRefinesEstimate(t *testing.T) {
	// Live lookup says 30 minutes: ceiling applies to the refined value.
	c := testChecker(durations.NewMockDurationProvider([]durations.MockPair{
		{From: "10001", To: "10002", Meters: 9000, Seconds: 1800},
	}))
	if v := c.Check(context.Background(), "10001", "10002", 120); v.Reachable {
		t.Errorf("provider-reported 30m drive should hit the ceiling, got %+v", v)
	}

	// Provider failure (no pair configured) degrades to the static table.
	c = testChecker(durations.NewMockDurationProvider(nil))
	if v := c.Check(context.Background(), "10001", "10002", 30); !v.Reachable {
		t.Errorf("provider failure should fall back to table estimate, got %s", v.Reason)
	}
}
