// Package component provides UI components for the browser chrome.
package component

import (
	"sync"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/burrow/internal/ui/layout"
)

const (
	progressFrameMs   = 16
	progressFrameStep = 0.02
	// Forward moves bigger than this are applied without easing.
	progressSnapDelta = 0.3
)

// Scheduler runs a repeating callback on the main loop until it returns false.
type Scheduler interface {
	TimeoutAdd(intervalMs uint, fn func() bool) uint
	Remove(handle uint)
}

type glibScheduler struct{}

func (glibScheduler) TimeoutAdd(intervalMs uint, fn func() bool) uint {
	return uint(glib.TimeoutAdd(intervalMs, fn))
}

func (glibScheduler) Remove(handle uint) {
	glib.SourceRemove(glib.SourceHandle(handle))
}

// ProgressBar is the page-load indicator below the toolbar. Small forward
// steps are eased frame by frame; resets and large jumps are immediate.
type ProgressBar struct {
	bar   layout.ProgressBarWidget
	sched Scheduler

	mu      sync.Mutex
	shown   bool
	drawn   float64
	target  float64
	ticking uint
}

// NewProgressBar creates a progress bar driven by the GLib main loop.
func NewProgressBar(factory layout.WidgetFactory) *ProgressBar {
	return NewProgressBarWithScheduler(factory, glibScheduler{})
}

// NewProgressBarWithScheduler creates a hidden progress bar animated by sched.
func NewProgressBarWithScheduler(factory layout.WidgetFactory, sched Scheduler) *ProgressBar {
	bar := factory.NewProgressBar()
	bar.AddCssClass("global-progress")
	bar.SetHexpand(true)
	bar.SetValign(gtk.AlignStart)
	bar.SetCanTarget(false)
	bar.SetCanFocus(false)
	bar.SetVisible(false)

	return &ProgressBar{bar: bar, sched: sched}
}

// SetProgress moves the bar towards fraction, clamped to [0, 1].
func (pb *ProgressBar) SetProgress(fraction float64) {
	fraction = min(max(fraction, 0), 1)

	pb.mu.Lock()
	defer pb.mu.Unlock()

	pb.target = fraction
	switch delta := fraction - pb.drawn; {
	case delta < 0, delta > progressSnapDelta, fraction >= 1:
		pb.snapLocked(fraction)
	case delta > 0 && pb.ticking == 0:
		pb.ticking = pb.sched.TimeoutAdd(progressFrameMs, pb.frame)
	}
}

func (pb *ProgressBar) snapLocked(fraction float64) {
	pb.cancelLocked()
	pb.drawn = fraction
	pb.bar.SetFraction(fraction)
}

func (pb *ProgressBar) cancelLocked() {
	if pb.ticking == 0 {
		return
	}
	pb.sched.Remove(pb.ticking)
	pb.ticking = 0
}

func (pb *ProgressBar) frame() bool {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	if pb.drawn < pb.target {
		pb.drawn = min(pb.drawn+progressFrameStep, pb.target)
		pb.bar.SetFraction(pb.drawn)
	}
	if pb.drawn < pb.target {
		return true
	}
	pb.ticking = 0
	return false
}

// Show makes the bar visible.
func (pb *ProgressBar) Show() {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	if pb.shown {
		return
	}
	pb.shown = true
	pb.bar.SetVisible(true)
}

// Hide hides the bar and resets it to zero.
func (pb *ProgressBar) Hide() {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	if !pb.shown {
		return
	}
	pb.shown = false
	pb.bar.SetVisible(false)
	pb.target = 0
	pb.snapLocked(0)
}

// IsVisible reports whether the bar is shown.
func (pb *ProgressBar) IsVisible() bool {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	return pb.shown
}

// Widget returns the underlying widget for packing.
func (pb *ProgressBar) Widget() layout.Widget {
	return pb.bar
}
