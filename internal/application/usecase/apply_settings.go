package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/burrow/internal/application/port"
	"github.com/bnema/burrow/internal/domain/entity"
	"github.com/bnema/burrow/internal/logging"
)

// SettingsForm is the state of the settings dialog widgets.
type SettingsForm struct {
	Homepage                string
	ShowHomeButton          bool
	UseHardwareAcceleration bool
	AdBlockEnabled          bool
	AmnesiaMode             bool
	SearchEngineIndex       int
}

// FormFromPreferences fills the dialog from the current preferences.
func FormFromPreferences(prefs entity.Preferences) SettingsForm {
	return SettingsForm{
		Homepage:                prefs.Homepage,
		ShowHomeButton:          prefs.ShowHomeButton,
		UseHardwareAcceleration: prefs.UseHardwareAcceleration,
		AdBlockEnabled:          prefs.AdBlockEnabled,
		AmnesiaMode:             prefs.AmnesiaMode,
		SearchEngineIndex:       prefs.SearchEngine().Index,
	}
}

// ApplySettingsOutput reports what Apply did.
type ApplySettingsOutput struct {
	Preferences entity.Preferences
	// Persisted is false when the preference file could not be written.
	Persisted bool
}

// ApplySettingsUseCase commits the settings dialog.
// Open tabs keep the policy they were created with.
type ApplySettingsUseCase struct {
	store  port.PreferenceStore
	chrome port.BrowserChrome
}

// NewApplySettingsUseCase creates a new settings use case.
func NewApplySettingsUseCase(store port.PreferenceStore, chrome port.BrowserChrome) *ApplySettingsUseCase {
	return &ApplySettingsUseCase{
		store:  store,
		chrome: chrome,
	}
}

// Apply builds the next preferences from form, updates the toolbar and saves.
// An unknown search engine index aborts before anything is changed.
func (uc *ApplySettingsUseCase) Apply(ctx context.Context, form SettingsForm) (*ApplySettingsOutput, error) {
	log := logging.FromContext(ctx)

	next := uc.store.Get()
	next.Homepage = strings.TrimSpace(form.Homepage)
	if next.Homepage == "" {
		next.Homepage = entity.DefaultHomepage
	}
	next.ShowHomeButton = form.ShowHomeButton
	next.UseHardwareAcceleration = form.UseHardwareAcceleration
	next.AdBlockEnabled = form.AdBlockEnabled
	next.AmnesiaMode = form.AmnesiaMode
	if err := next.SelectSearchEngine(form.SearchEngineIndex); err != nil {
		return nil, fmt.Errorf("apply settings: %w", err)
	}

	if uc.chrome != nil {
		uc.chrome.SetHomeButtonVisible(next.ShowHomeButton)
	}

	out := &ApplySettingsOutput{Preferences: next, Persisted: true}
	if err := uc.store.Save(ctx, next); err != nil {
		log.Error().Err(err).Msg("failed to save preferences")
		out.Persisted = false
	}

	log.Info().
		Str("search_engine", next.SearchEngine().Name).
		Bool("amnesia", next.AmnesiaMode).
		Bool("adblock", next.AdBlockEnabled).
		Bool("hw_accel", next.UseHardwareAcceleration).
		Msg("settings applied")

	return out, nil
}
