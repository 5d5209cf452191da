package entity

import (
	"errors"
	"fmt"
)

// ErrUnknownSearchEngine is returned for an index outside the search engine list.
var ErrUnknownSearchEngine = errors.New("unknown search engine")

// SearchEngine is one entry of the closed search engine list.
// URL is a prefix: the escaped query is appended to it.
type SearchEngine struct {
	Index int
	Name  string
	URL   string
}

var searchEngines = [...]SearchEngine{
	{Index: 0, Name: "DuckDuckGo", URL: "https://duckduckgo.com/?q="},
	{Index: 1, Name: "Google", URL: "https://www.google.com/search?q="},
	{Index: 2, Name: "Bing", URL: "https://www.bing.com/search?q="},
	{Index: 3, Name: "Brave", URL: "https://search.brave.com/search?q="},
}

// DefaultSearchEngine is DuckDuckGo.
const DefaultSearchEngine = 0

// SearchEngines returns the supported engines in index order.
func SearchEngines() []SearchEngine {
	out := make([]SearchEngine, len(searchEngines))
	copy(out, searchEngines[:])
	return out
}

// SearchEngineByIndex looks an engine up by its dropdown index.
func SearchEngineByIndex(index int) (SearchEngine, error) {
	if index < 0 || index >= len(searchEngines) {
		return SearchEngine{}, fmt.Errorf("%w: index %d", ErrUnknownSearchEngine, index)
	}
	return searchEngines[index], nil
}

// Preferences is the user preference document persisted as settings.json.
type Preferences struct {
	Homepage                string `json:"homepage" mapstructure:"homepage" jsonschema:"description=Page loaded by new tabs and the home button,format=uri"`
	UseHardwareAcceleration bool   `json:"use_hw_accel" mapstructure:"use_hw_accel" jsonschema:"description=GPU compositing and WebGL for new tabs"`
	AdBlockEnabled          bool   `json:"enable_adblock" mapstructure:"enable_adblock" jsonschema:"description=Hide common ad elements in new tabs"`
	AmnesiaMode             bool   `json:"amnesia_mode" mapstructure:"amnesia_mode" jsonschema:"description=Open every new tab in an ephemeral context"`
	ShowHomeButton          bool   `json:"show_home_button" mapstructure:"show_home_button" jsonschema:"description=Show the home button in the toolbar"`
	SearchEngineURL         string `json:"search_engine_url" mapstructure:"search_engine_url" jsonschema:"description=Derived from search_engine_index"`
	SearchEngineIndex       int    `json:"search_engine_index" mapstructure:"search_engine_index" jsonschema:"enum=0,enum=1,enum=2,enum=3,description=0 DuckDuckGo / 1 Google / 2 Bing / 3 Brave"`
}

// DefaultHomepage is loaded when no homepage is configured.
const DefaultHomepage = "https://duckduckgo.com"

// DefaultPreferences returns the built-in preference document.
func DefaultPreferences() Preferences {
	p := Preferences{
		Homepage:                DefaultHomepage,
		UseHardwareAcceleration: true,
		AdBlockEnabled:          true,
		AmnesiaMode:             false,
		ShowHomeButton:          true,
	}
	p.SetSearchEngine(searchEngines[DefaultSearchEngine])
	return p
}

// SetSearchEngine updates index and URL together.
func (p *Preferences) SetSearchEngine(engine SearchEngine) {
	p.SearchEngineIndex = engine.Index
	p.SearchEngineURL = engine.URL
}

// SelectSearchEngine resolves index through the engine list and applies it.
func (p *Preferences) SelectSearchEngine(index int) error {
	engine, err := SearchEngineByIndex(index)
	if err != nil {
		return err
	}
	p.SetSearchEngine(engine)
	return nil
}

// SearchEngine returns the engine selected by SearchEngineIndex.
func (p Preferences) SearchEngine() SearchEngine {
	engine, err := SearchEngineByIndex(p.SearchEngineIndex)
	if err != nil {
		return searchEngines[DefaultSearchEngine]
	}
	return engine
}

// SearchEngineConsistent reports whether the URL matches the selected index.
func (p Preferences) SearchEngineConsistent() bool {
	engine, err := SearchEngineByIndex(p.SearchEngineIndex)
	return err == nil && engine.URL == p.SearchEngineURL
}
