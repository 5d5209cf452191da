package url

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const ddg = "https://duckduckgo.com/?q="

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare domain gets https", input: "example.com", want: "https://example.com"},
		{name: "whitespace is a search", input: "hello world", want: ddg + "hello+world"},
		{name: "scheme passes through", input: "https://foo.bar/x", want: "https://foo.bar/x"},
		{name: "no dot is a search", input: "bing", want: ddg + "bing"},
		{name: "http kept as is", input: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "dotted query with space", input: "what is go.dev", want: ddg + "what+is+go.dev"},
		{name: "surrounding whitespace trimmed", input: "  example.com  ", want: "https://example.com"},
		{name: "empty input", input: "   ", want: ""},
		{name: "query is escaped", input: "c++ & go", want: ddg + "c%2B%2B+%26+go"},
		{name: "domain with path", input: "go.dev/doc", want: "https://go.dev/doc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.input, ddg))
		})
	}
}

func TestResolve_UsesGivenSearchPrefix(t *testing.T) {
	got := Resolve("golang", "https://www.google.com/search?q=")
	assert.Equal(t, "https://www.google.com/search?q=golang", got)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, KindURL, Classify("file:///tmp/a.html"))
	assert.Equal(t, KindSearch, Classify("bing"))
	assert.Equal(t, KindSearch, Classify("a.b c"))
	assert.Equal(t, KindSearch, Classify("tab\tseparated.com"))
	assert.Equal(t, KindDomain, Classify("example.com"))
	assert.Equal(t, "domain", KindDomain.String())
}

func TestResolve_AlwaysProducesSomething(t *testing.T) {
	inputs := []string{"x", "..", "://", "a b c", strings.Repeat("z", 300)}
	for _, in := range inputs {
		assert.NotEmpty(t, Resolve(in, ddg), in)
	}
}

func TestIsWebURL(t *testing.T) {
	assert.True(t, IsWebURL("https://example.com/a"))
	assert.True(t, IsWebURL("http://example.com"))
	assert.False(t, IsWebURL("about:blank"))
	assert.False(t, IsWebURL("file:///etc/hosts"))
	assert.False(t, IsWebURL(""))
}
