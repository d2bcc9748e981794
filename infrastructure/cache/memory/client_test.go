package memory

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	if err := cache.Set(ctx, "topic:exists:aww", []byte("1"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, err := cache.Get(ctx, "topic:exists:aww")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(value) != "1" {
		t.Errorf("Get returned %q, want %q", value, "1")
	}
}

func TestMemoryCache_GetMissingKey(t *testing.T) {
	cache := NewMemoryCache(time.Minute, time.Minute)

	_, err := cache.Get(context.Background(), "missing")
	if err == nil {
		t.Error("Get should return an error for a missing key")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := NewMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "short", []byte("v"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, err := cache.Get(ctx, "short"); err == nil {
		t.Error("Get returned an expired value")
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("v"), time.Minute)
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("Get returned a deleted value")
	}
}

func TestMemoryCache_GetReturnsCopy(t *testing.T) {
	cache := NewMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("original"), time.Minute)

	first, _ := cache.Get(ctx, "key")
	first[0] = 'X'

	second, _ := cache.Get(ctx, "key")
	if string(second) != "original" {
		t.Error("mutating a returned value corrupted the cached copy")
	}
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	cache := NewMemoryCache(10*time.Millisecond, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "forever", []byte("v"), 0)
	time.Sleep(30 * time.Millisecond)

	if _, err := cache.Get(ctx, "forever"); err != nil {
		t.Error("zero-TTL value expired")
	}
}
