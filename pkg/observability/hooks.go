// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about graph loading, traversals, and
// cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This keeps the engine packages free of observability framework imports
// while still letting an application wire in Prometheus, OpenTelemetry, or
// plain logging.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGraphHooks(&myGraphHooks{})
//	    // ... run application
//	}
//
// Engine packages call hooks to emit events:
//
//	observability.Graph().OnLoadStart(path)
//	// ... build CSR ...
//	observability.Graph().OnLoadComplete(path, edges, duration, err)
package observability

import (
	"sync"
	"time"
)

// GraphHooks receives events from graph loading and traversal.
type GraphHooks interface {
	// OnLoadStart records the beginning of a bulk load.
	OnLoadStart(path string)
	// OnLoadComplete records the end of a bulk load with the number of
	// edges built and the total elapsed time.
	OnLoadComplete(path string, edges int, duration time.Duration, err error)

	// OnTraverseStart records the beginning of a traversal. Kind is one
	// of "bfs", "dfs", or "path".
	OnTraverseStart(kind string, start uint32)
	// OnTraverseComplete records a finished traversal and how many nodes
	// it visited.
	OnTraverseComplete(kind string, start uint32, visited int, duration time.Duration)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(keyType string)
	// OnCacheMiss records a cache miss.
	OnCacheMiss(keyType string)
	// OnCacheSet records a cache write.
	OnCacheSet(keyType string, size int)
}

// NoopGraphHooks is a no-op implementation of GraphHooks.
type NoopGraphHooks struct{}

func (NoopGraphHooks) OnLoadStart(string)                                {}
func (NoopGraphHooks) OnLoadComplete(string, int, time.Duration, error)  {}
func (NoopGraphHooks) OnTraverseStart(string, uint32)                    {}
func (NoopGraphHooks) OnTraverseComplete(string, uint32, int, time.Duration) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(string)       {}
func (NoopCacheHooks) OnCacheMiss(string)      {}
func (NoopCacheHooks) OnCacheSet(string, int)  {}

var (
	graphHooks GraphHooks = NoopGraphHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetGraphHooks registers custom graph hooks.
// This should be called once at application startup, before any loads.
func SetGraphHooks(h GraphHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		graphHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Graph returns the registered graph hooks.
func Graph() GraphHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return graphHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	graphHooks = NoopGraphHooks{}
	cacheHooks = NoopCacheHooks{}
}
