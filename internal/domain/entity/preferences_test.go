package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()

	assert.Equal(t, "https://duckduckgo.com", p.Homepage)
	assert.True(t, p.UseHardwareAcceleration)
	assert.True(t, p.AdBlockEnabled)
	assert.False(t, p.AmnesiaMode)
	assert.True(t, p.ShowHomeButton)
	assert.Equal(t, "https://duckduckgo.com/?q=", p.SearchEngineURL)
	assert.Equal(t, 0, p.SearchEngineIndex)
	assert.True(t, p.SearchEngineConsistent())
}

func TestSelectSearchEngine_KeepsIndexAndURLTogether(t *testing.T) {
	want := map[int]string{
		0: "https://duckduckgo.com/?q=",
		1: "https://www.google.com/search?q=",
		2: "https://www.bing.com/search?q=",
		3: "https://search.brave.com/search?q=",
	}

	for index, url := range want {
		p := DefaultPreferences()
		require.NoError(t, p.SelectSearchEngine(index))
		assert.Equal(t, index, p.SearchEngineIndex)
		assert.Equal(t, url, p.SearchEngineURL)
		assert.True(t, p.SearchEngineConsistent())
	}
}

func TestSelectSearchEngine_RejectsUnknownIndex(t *testing.T) {
	for _, index := range []int{-1, 4, 99} {
		p := DefaultPreferences()
		err := p.SelectSearchEngine(index)
		require.ErrorIs(t, err, ErrUnknownSearchEngine)
		assert.Equal(t, DefaultPreferences(), p)
	}
}

func TestSearchEngine_FallsBackToDefault(t *testing.T) {
	p := Preferences{SearchEngineIndex: 12}
	assert.Equal(t, "DuckDuckGo", p.SearchEngine().Name)
	assert.False(t, p.SearchEngineConsistent())
}

func TestSearchEngines_ReturnsCopy(t *testing.T) {
	engines := SearchEngines()
	require.Len(t, engines, 4)
	engines[0].URL = "mutated"

	assert.Equal(t, "https://duckduckgo.com/?q=", SearchEngines()[0].URL)
	for i, e := range SearchEngines() {
		assert.Equal(t, i, e.Index)
	}
}
