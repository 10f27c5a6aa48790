package cache

import (
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	// Miss before Set
	if _, hit, err := c.Get(ctx, "k"); err != nil || hit {
		t.Fatalf("Get before Set: hit=%v err=%v", hit, err)
	}

	// Round trip
	if err := c.Set(ctx, "k", []byte("svg bytes"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit {
		t.Fatalf("Get after Set: hit=%v err=%v", hit, err)
	}
	if string(data) != "svg bytes" {
		t.Errorf("Get = %q, want %q", data, "svg bytes")
	}

	// Expired entries are misses
	if err := c.Set(ctx, "expired", []byte("old"), -time.Second); err != nil {
		t.Fatalf("Set expired: %v", err)
	}
	// ttl <= 0 means no expiry; use a tiny positive ttl instead.
	if err := c.Set(ctx, "short", []byte("old"), time.Nanosecond); err != nil {
		t.Fatalf("Set short: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "short"); hit {
		t.Error("expired entry should be a miss")
	}

	// Zero TTL entries never expire
	if _, hit, _ := c.Get(ctx, "expired"); !hit {
		t.Error("negative ttl means no expiry; entry should still be present")
	}

	// Delete
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("deleted entry should be a miss")
	}
	if err := c.Delete(ctx, "never-existed"); err != nil {
		t.Errorf("Delete absent key: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestArtifactKey(t *testing.T) {
	k1 := ArtifactKey("hash123", ArtifactKeyOpts{Nodes: []uint32{1, 2, 3}, Format: "svg"})
	k2 := ArtifactKey("hash123", ArtifactKeyOpts{Nodes: []uint32{1, 2, 3}, Format: "dot"})
	if k1 == k2 {
		t.Error("Different formats should produce different keys")
	}

	k3 := ArtifactKey("hash123", ArtifactKeyOpts{Nodes: []uint32{1, 2, 4}, Format: "svg"})
	if k1 == k3 {
		t.Error("Different node sets should produce different keys")
	}

	k4 := ArtifactKey("other", ArtifactKeyOpts{Nodes: []uint32{1, 2, 3}, Format: "svg"})
	if k1 == k4 {
		t.Error("Different graph hashes should produce different keys")
	}

	if k1 != ArtifactKey("hash123", ArtifactKeyOpts{Nodes: []uint32{1, 2, 3}, Format: "svg"}) {
		t.Error("ArtifactKey should be deterministic")
	}
}
