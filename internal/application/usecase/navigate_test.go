package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/burrow/internal/application/port"
	portmocks "github.com/bnema/burrow/internal/application/port/mocks"
	"github.com/bnema/burrow/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubSurfaceProvider struct {
	surface port.RenderingSurface
}

func (p stubSurfaceProvider) ActiveSurface() (port.RenderingSurface, bool) {
	return p.surface, p.surface != nil
}

func newNavigateFixture(t *testing.T, prefs entity.Preferences) (*NavigateUseCase, *portmocks.MockRenderingSurface) {
	t.Helper()
	store := portmocks.NewMockPreferenceStore(t)
	store.EXPECT().Get().Return(prefs).Maybe()
	surface := portmocks.NewMockRenderingSurface(t)
	return NewNavigateUseCase(stubSurfaceProvider{surface: surface}, store), surface
}

func TestNavigate_NoActiveTabIsNoop(t *testing.T) {
	store := portmocks.NewMockPreferenceStore(t)
	uc := NewNavigateUseCase(stubSurfaceProvider{}, store)
	ctx := context.Background()

	require.NoError(t, uc.Back(ctx))
	require.NoError(t, uc.Forward(ctx))
	require.NoError(t, uc.Reload(ctx))
	require.NoError(t, uc.Home(ctx))

	loaded, err := uc.Submit(ctx, "example.com")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestNavigate_BackAndForwardRespectHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("back allowed", func(t *testing.T) {
		uc, surface := newNavigateFixture(t, entity.DefaultPreferences())
		surface.EXPECT().CanGoBack().Return(true).Once()
		surface.EXPECT().GoBack(mock.Anything).Return(nil).Once()
		require.NoError(t, uc.Back(ctx))
	})

	t.Run("back refused", func(t *testing.T) {
		uc, surface := newNavigateFixture(t, entity.DefaultPreferences())
		surface.EXPECT().CanGoBack().Return(false).Once()
		require.NoError(t, uc.Back(ctx))
		surface.AssertNotCalled(t, "GoBack", mock.Anything)
	})

	t.Run("forward allowed", func(t *testing.T) {
		uc, surface := newNavigateFixture(t, entity.DefaultPreferences())
		surface.EXPECT().CanGoForward().Return(true).Once()
		surface.EXPECT().GoForward(mock.Anything).Return(nil).Once()
		require.NoError(t, uc.Forward(ctx))
	})

	t.Run("forward refused", func(t *testing.T) {
		uc, surface := newNavigateFixture(t, entity.DefaultPreferences())
		surface.EXPECT().CanGoForward().Return(false).Once()
		require.NoError(t, uc.Forward(ctx))
		surface.AssertNotCalled(t, "GoForward", mock.Anything)
	})
}

func TestNavigate_ReloadAndHome(t *testing.T) {
	ctx := context.Background()
	prefs := entity.DefaultPreferences()
	prefs.Homepage = "https://start.example"

	uc, surface := newNavigateFixture(t, prefs)
	surface.EXPECT().Reload(mock.Anything).Return(nil).Once()
	surface.EXPECT().LoadURI(mock.Anything, "https://start.example").Return(nil).Once()

	require.NoError(t, uc.Reload(ctx))
	require.NoError(t, uc.Home(ctx))
}

func TestNavigate_Submit(t *testing.T) {
	tests := []struct {
		name   string
		engine int
		input  string
		want   string
	}{
		{name: "domain gets https", engine: 0, input: "example.com", want: "https://example.com"},
		{name: "phrase is searched", engine: 0, input: "hello world", want: "https://duckduckgo.com/?q=hello+world"},
		{name: "full url unchanged", engine: 0, input: "https://foo.bar/x", want: "https://foo.bar/x"},
		{name: "single word is searched", engine: 0, input: "bing", want: "https://duckduckgo.com/?q=bing"},
		{name: "input is trimmed", engine: 0, input: "  example.com  ", want: "https://example.com"},
		{name: "google template", engine: 1, input: "golang", want: "https://www.google.com/search?q=golang"},
		{name: "brave template escapes", engine: 3, input: "a&b", want: "https://search.brave.com/search?q=a%26b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := entity.DefaultPreferences()
			require.NoError(t, prefs.SelectSearchEngine(tt.engine))

			uc, surface := newNavigateFixture(t, prefs)
			surface.EXPECT().LoadURI(mock.Anything, tt.want).Return(nil).Once()

			loaded, err := uc.Submit(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, loaded)
		})
	}
}

func TestNavigate_SubmitIgnoresBlankInput(t *testing.T) {
	uc, surface := newNavigateFixture(t, entity.DefaultPreferences())

	loaded, err := uc.Submit(context.Background(), "   ")

	require.NoError(t, err)
	assert.Empty(t, loaded)
	surface.AssertNotCalled(t, "LoadURI", mock.Anything, mock.Anything)
}

func TestNavigate_SubmitWrapsLoadErrors(t *testing.T) {
	uc, surface := newNavigateFixture(t, entity.DefaultPreferences())
	surface.EXPECT().LoadURI(mock.Anything, "https://example.com").Return(port.ErrSurfaceDestroyed).Once()

	_, err := uc.Submit(context.Background(), "example.com")

	require.Error(t, err)
	assert.True(t, errors.Is(err, port.ErrSurfaceDestroyed))
}
