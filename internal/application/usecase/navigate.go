package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/burrow/internal/application/port"
	"github.com/bnema/burrow/internal/domain/url"
	"github.com/bnema/burrow/internal/logging"
)

const logURLMaxLen = 120

// ActiveSurfaceProvider exposes the surface navigation commands act on.
type ActiveSurfaceProvider interface {
	ActiveSurface() (port.RenderingSurface, bool)
}

// NavigateUseCase dispatches toolbar and address bar commands to the active tab.
// Every command is a no-op when no tab is open.
type NavigateUseCase struct {
	tabs  ActiveSurfaceProvider
	prefs port.PreferenceStore
}

// NewNavigateUseCase creates a new navigation use case.
func NewNavigateUseCase(tabs ActiveSurfaceProvider, prefs port.PreferenceStore) *NavigateUseCase {
	return &NavigateUseCase{
		tabs:  tabs,
		prefs: prefs,
	}
}

// Back goes one step back when the history allows it.
func (uc *NavigateUseCase) Back(ctx context.Context) error {
	surface, ok := uc.tabs.ActiveSurface()
	if !ok || !surface.CanGoBack() {
		return nil
	}
	logging.FromContext(ctx).Debug().Msg("navigating back")
	if err := surface.GoBack(ctx); err != nil {
		return fmt.Errorf("failed to go back: %w", err)
	}
	return nil
}

// Forward goes one step forward when the history allows it.
func (uc *NavigateUseCase) Forward(ctx context.Context) error {
	surface, ok := uc.tabs.ActiveSurface()
	if !ok || !surface.CanGoForward() {
		return nil
	}
	logging.FromContext(ctx).Debug().Msg("navigating forward")
	if err := surface.GoForward(ctx); err != nil {
		return fmt.Errorf("failed to go forward: %w", err)
	}
	return nil
}

// Reload reloads the current page.
func (uc *NavigateUseCase) Reload(ctx context.Context) error {
	surface, ok := uc.tabs.ActiveSurface()
	if !ok {
		return nil
	}
	logging.FromContext(ctx).Debug().Msg("reloading page")
	if err := surface.Reload(ctx); err != nil {
		return fmt.Errorf("failed to reload: %w", err)
	}
	return nil
}

// Home loads the configured homepage.
func (uc *NavigateUseCase) Home(ctx context.Context) error {
	surface, ok := uc.tabs.ActiveSurface()
	if !ok {
		return nil
	}
	homepage := uc.prefs.Get().Homepage
	logging.FromContext(ctx).Debug().Str("url", homepage).Msg("navigating home")
	if err := surface.LoadURI(ctx, homepage); err != nil {
		return fmt.Errorf("failed to load homepage: %w", err)
	}
	return nil
}

// Submit resolves address bar input and loads it in the active tab.
// It returns the URL that was loaded, or "" when nothing happened.
func (uc *NavigateUseCase) Submit(ctx context.Context, input string) (string, error) {
	surface, ok := uc.tabs.ActiveSurface()
	if !ok {
		return "", nil
	}

	target := url.Resolve(input, uc.prefs.Get().SearchEngineURL)
	if target == "" {
		return "", nil
	}

	logging.FromContext(ctx).Info().
		Str("url", logging.TruncateURL(target, logURLMaxLen)).
		Msg("navigation initiated")

	if err := surface.LoadURI(ctx, target); err != nil {
		return "", fmt.Errorf("failed to load URL: %w", err)
	}
	return target, nil
}
