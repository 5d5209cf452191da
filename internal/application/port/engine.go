// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (WebKit, GTK, etc.).
package port

import (
	"context"
	"errors"
)

// ErrSurfaceDestroyed is returned by surface operations after Destroy.
var ErrSurfaceDestroyed = errors.New("rendering surface destroyed")

// SurfaceID uniquely identifies a RenderingSurface instance.
type SurfaceID uint64

// ContextKind distinguishes the two browsing context variants.
type ContextKind int

const (
	// ContextPersistent is the process-wide context with on-disk cookies and cache.
	ContextPersistent ContextKind = iota
	// ContextEphemeral keeps everything in memory and is owned by a single tab.
	ContextEphemeral
)

// String returns a human-readable representation of the context kind.
func (k ContextKind) String() string {
	switch k {
	case ContextPersistent:
		return "persistent"
	case ContextEphemeral:
		return "ephemeral"
	default:
		return "unknown"
	}
}

// BrowsingContext is an isolated cookie/cache/storage domain.
type BrowsingContext interface {
	// Kind reports whether the context is persistent or ephemeral.
	Kind() ContextKind

	// Release drops the context's engine resources.
	// The persistent context ignores it; it lives for the whole process.
	Release()
}

// SurfaceSpec is the policy applied to a surface at creation time.
type SurfaceSpec struct {
	// Context the surface is bound to for its whole life.
	Context BrowsingContext

	// ContentFilterCSS is injected as a user stylesheet in all frames. Empty disables it.
	ContentFilterCSS string

	// HardwareAcceleration switches GPU compositing and WebGL together.
	HardwareAcceleration bool
}

// SurfaceCallbacks defines the lifecycle observers of a surface.
// Implementations invoke them on the UI main loop.
type SurfaceCallbacks struct {
	// OnURIChanged is called when the committed URI changes.
	OnURIChanged func(uri string)
	// OnTitleChanged is called when the page title changes.
	OnTitleChanged func(title string)
	// OnProgressChanged is called during page load with progress 0.0-1.0.
	OnProgressChanged func(progress float64)
}

// RenderingSurface is the engine object that loads and renders one tab's page.
type RenderingSurface interface {
	// ID returns the unique identifier for this surface.
	ID() SurfaceID

	// --- Navigation ---

	LoadURI(ctx context.Context, uri string) error
	GoBack(ctx context.Context) error
	GoForward(ctx context.Context) error
	Reload(ctx context.Context) error

	// --- State Queries ---

	CanGoBack() bool
	CanGoForward() bool
	URI() string
	Title() string
	IsLoading() bool
	EstimatedProgress() float64

	// --- Callbacks ---

	// SetCallbacks registers lifecycle observers. Pass nil to clear them.
	SetCallbacks(callbacks *SurfaceCallbacks)

	// --- Lifecycle ---

	IsDestroyed() bool
	Destroy()
}

// Engine creates browsing contexts and rendering surfaces.
type Engine interface {
	// PersistentContext returns the process-wide persistent context.
	PersistentContext(ctx context.Context) (BrowsingContext, error)

	// NewEphemeralContext allocates a fresh in-memory context.
	NewEphemeralContext(ctx context.Context) (BrowsingContext, error)

	// NewSurface builds a surface bound to spec.Context.
	NewSurface(ctx context.Context, spec SurfaceSpec) (RenderingSurface, error)
}
