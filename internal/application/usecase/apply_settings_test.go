package usecase

import (
	"context"
	"errors"
	"testing"

	portmocks "github.com/bnema/burrow/internal/application/port/mocks"
	"github.com/bnema/burrow/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApplySettings_SearchEngineStaysConsistent(t *testing.T) {
	for _, engine := range entity.SearchEngines() {
		t.Run(engine.Name, func(t *testing.T) {
			store := portmocks.NewMockPreferenceStore(t)
			chrome := portmocks.NewMockBrowserChrome(t)

			store.EXPECT().Get().Return(entity.DefaultPreferences()).Once()
			chrome.EXPECT().SetHomeButtonVisible(true).Return().Once()
			store.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p entity.Preferences) bool {
				return p.SearchEngineIndex == engine.Index && p.SearchEngineURL == engine.URL
			})).Return(nil).Once()

			uc := NewApplySettingsUseCase(store, chrome)
			form := FormFromPreferences(entity.DefaultPreferences())
			form.SearchEngineIndex = engine.Index

			out, err := uc.Apply(context.Background(), form)
			require.NoError(t, err)
			assert.True(t, out.Persisted)
			assert.True(t, out.Preferences.SearchEngineConsistent())
		})
	}
}

func TestApplySettings_BuildsPreferencesFromForm(t *testing.T) {
	store := portmocks.NewMockPreferenceStore(t)
	chrome := portmocks.NewMockBrowserChrome(t)

	var saved entity.Preferences
	store.EXPECT().Get().Return(entity.DefaultPreferences()).Once()
	chrome.EXPECT().SetHomeButtonVisible(false).Return().Once()
	store.EXPECT().Save(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, p entity.Preferences) error {
		saved = p
		return nil
	}).Once()

	uc := NewApplySettingsUseCase(store, chrome)
	_, err := uc.Apply(context.Background(), SettingsForm{
		Homepage:                "  https://start.example  ",
		ShowHomeButton:          false,
		UseHardwareAcceleration: false,
		AdBlockEnabled:          false,
		AmnesiaMode:             true,
		SearchEngineIndex:       2,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://start.example", saved.Homepage)
	assert.False(t, saved.ShowHomeButton)
	assert.False(t, saved.UseHardwareAcceleration)
	assert.False(t, saved.AdBlockEnabled)
	assert.True(t, saved.AmnesiaMode)
	assert.Equal(t, "https://www.bing.com/search?q=", saved.SearchEngineURL)
}

func TestApplySettings_EmptyHomepageFallsBackToDefault(t *testing.T) {
	store := portmocks.NewMockPreferenceStore(t)

	store.EXPECT().Get().Return(entity.DefaultPreferences()).Once()
	store.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p entity.Preferences) bool {
		return p.Homepage == entity.DefaultHomepage
	})).Return(nil).Once()

	uc := NewApplySettingsUseCase(store, nil)
	form := FormFromPreferences(entity.DefaultPreferences())
	form.Homepage = " "

	_, err := uc.Apply(context.Background(), form)
	require.NoError(t, err)
}

func TestApplySettings_UnknownEngineWritesNothing(t *testing.T) {
	for _, index := range []int{-1, 4, 42} {
		store := portmocks.NewMockPreferenceStore(t)
		chrome := portmocks.NewMockBrowserChrome(t)
		store.EXPECT().Get().Return(entity.DefaultPreferences()).Once()

		uc := NewApplySettingsUseCase(store, chrome)
		form := FormFromPreferences(entity.DefaultPreferences())
		form.SearchEngineIndex = index

		out, err := uc.Apply(context.Background(), form)

		require.ErrorIs(t, err, entity.ErrUnknownSearchEngine)
		assert.Nil(t, out)
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		chrome.AssertNotCalled(t, "SetHomeButtonVisible", mock.Anything)
	}
}

func TestApplySettings_SaveFailureIsSwallowed(t *testing.T) {
	store := portmocks.NewMockPreferenceStore(t)
	chrome := portmocks.NewMockBrowserChrome(t)

	store.EXPECT().Get().Return(entity.DefaultPreferences()).Once()
	chrome.EXPECT().SetHomeButtonVisible(true).Return().Once()
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("read-only file system")).Once()

	uc := NewApplySettingsUseCase(store, chrome)
	out, err := uc.Apply(context.Background(), FormFromPreferences(entity.DefaultPreferences()))

	require.NoError(t, err)
	assert.False(t, out.Persisted)
}

func TestFormFromPreferences_RoundTrip(t *testing.T) {
	prefs := entity.DefaultPreferences()
	prefs.AmnesiaMode = true
	require.NoError(t, prefs.SelectSearchEngine(3))

	form := FormFromPreferences(prefs)

	assert.Equal(t, prefs.Homepage, form.Homepage)
	assert.True(t, form.AmnesiaMode)
	assert.Equal(t, 3, form.SearchEngineIndex)
}
