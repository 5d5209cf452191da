// Package ui provides the GTK4 presentation layer for the burrow browser.
package ui

import (
	"context"

	"github.com/bnema/burrow/internal/application/port"
	"github.com/bnema/burrow/internal/domain/build"
	"github.com/bnema/burrow/internal/domain/entity"
	"github.com/bnema/burrow/internal/ui/theme"
)

// PreferenceSource is the preference store with change notifications.
type PreferenceSource interface {
	port.PreferenceStore
	Watch(ctx context.Context) error
	OnChange(callback func(entity.Preferences))
}

// Dependencies holds all injected dependencies for the UI layer.
// This struct is created once at startup and passed to the App.
type Dependencies struct {
	Ctx         context.Context
	Preferences PreferenceSource
	Engine      port.Engine
	Filter      port.ContentFilter

	// History is optional; nil disables visit recording.
	History port.HistoryRecorder

	Theme     *theme.Manager
	BuildInfo build.Info

	// InitialURL is opened in the first tab instead of the homepage.
	InitialURL       string
	InitialIncognito bool
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Preferences == nil {
		return ErrMissingDependency("Preferences")
	}
	if d.Engine == nil {
		return ErrMissingDependency("Engine")
	}
	if d.Filter == nil {
		return ErrMissingDependency("Filter")
	}
	return nil
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
