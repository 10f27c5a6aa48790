// Package cache stores rendered subgraph artifacts so repeated exports of
// the same view skip the Graphviz round trip.
//
// Backends implement the [Cache] interface; [FileCache] keeps entries on
// disk for CLI usage and [NullCache] disables caching entirely. Keys are
// derived from a fingerprint of the loaded graph plus the parameters of
// the view, so a changed edge list never serves stale pictures.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is the storage contract for rendered artifacts.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a time-to-live. A non-positive ttl means
	// the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKeyOpts carries the parameters that make two rendered views
// distinct.
type ArtifactKeyOpts struct {
	Nodes  []uint32 // subset the view was induced over
	Format string   // "dot" or "svg"
}

// ArtifactKey derives a cache key for a rendered subgraph. graphHash
// fingerprints the loaded edge list (see [Hash]); the options cover
// everything else that influences the picture.
func ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
