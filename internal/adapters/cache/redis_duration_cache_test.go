package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"order-grouping-service/internal/ports"
)

func testCache(t *testing.T) (*RedisDurationCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedisDurationCache(rdb), mr
}

func TestRedisDurationCacheRoundTrip(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "20005", "22201"); err != nil || ok {
		t.Fatalf("empty cache: got ok=%v err=%v, want miss", ok, err)
	}

	want := ports.DurationResult{DistanceMeters: 9100, DurationSeconds: 1080}
	if err := c.Put(ctx, "20005", "22201", want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "20005", "22201")
	if err != nil || !ok {
		t.Fatalf("get after put: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Errorf("get = %+v, want %+v", got, want)
	}

	// The reverse direction is a distinct key.
	if _, ok, _ := c.Get(ctx, "22201", "20005"); ok {
		t.Error("reverse pair should be a miss")
	}
}

func TestRedisDurationCacheExpiry(t *testing.T) {
	c, mr := testCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "20005", "20001", ports.DurationResult{DistanceMeters: 1500, DurationSeconds: 420}); err != nil {
		t.Fatalf("put: %v", err)
	}

	mr.FastForward(defaultTTL + 1)

	if _, ok, err := c.Get(ctx, "20005", "20001"); err != nil || ok {
		t.Errorf("expired entry: got ok=%v err=%v, want miss", ok, err)
	}
}

func TestRedisDurationCacheValidation(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	if _, _, err := c.Get(ctx, "", "20001"); err == nil {
		t.Error("empty origin should error")
	}
	if err := c.Put(ctx, "20005", "", ports.DurationResult{}); err == nil {
		t.Error("empty destination should error")
	}
}
