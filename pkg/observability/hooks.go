// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about each conversion stage.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for conversion events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetConvertHooks(&myHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks to emit events:
//
//	observability.Convert().OnLoadStart(ctx, path)
//	// ... parse XML ...
//	observability.Convert().OnLoadComplete(ctx, path, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Conversion Hooks
// =============================================================================

// ConvertHooks receives events from the conversion pipeline.
type ConvertHooks interface {
	// Load events (XML parsing)
	OnLoadStart(ctx context.Context, path string)
	OnLoadComplete(ctx context.Context, path string, duration time.Duration, err error)

	// Convert events (extraction and assembly)
	OnConvertStart(ctx context.Context, scale float64)
	OnConvertComplete(ctx context.Context, nodes, edges, styles int, duration time.Duration, err error)

	// Encode events (JSON/CSV output)
	OnEncodeStart(ctx context.Context, format string)
	OnEncodeComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopConvertHooks is a no-op implementation of ConvertHooks.
type NoopConvertHooks struct{}

func (NoopConvertHooks) OnLoadStart(context.Context, string)                                    {}
func (NoopConvertHooks) OnLoadComplete(context.Context, string, time.Duration, error)           {}
func (NoopConvertHooks) OnConvertStart(context.Context, float64)                                {}
func (NoopConvertHooks) OnConvertComplete(context.Context, int, int, int, time.Duration, error) {}
func (NoopConvertHooks) OnEncodeStart(context.Context, string)                                  {}
func (NoopConvertHooks) OnEncodeComplete(context.Context, string, int, time.Duration, error)    {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	convertHooks ConvertHooks = NoopConvertHooks{}
	hooksMu      sync.RWMutex
)

// SetConvertHooks registers custom conversion hooks.
// This should be called once at application startup before any conversion.
// A nil h is ignored.
func SetConvertHooks(h ConvertHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		convertHooks = h
	}
}

// Convert returns the registered conversion hooks.
func Convert() ConvertHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return convertHooks
}

// Reset restores the hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	convertHooks = NoopConvertHooks{}
}
