// Package url classifies address bar input into something the engine can load.
package url

import (
	neturl "net/url"
	"strings"
	"unicode"
)

// Kind is the outcome of address bar classification.
type Kind int

const (
	// KindURL is input that already carries a scheme.
	KindURL Kind = iota
	// KindSearch is input sent to the search engine.
	KindSearch
	// KindDomain is a bare host that gets a secure scheme.
	KindDomain
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindURL:
		return "url"
	case KindSearch:
		return "search"
	case KindDomain:
		return "domain"
	default:
		return "unknown"
	}
}

const (
	schemeSeparator = "://"
	secureScheme    = "https://"
)

// Classify decides how input is treated:
//
//	"https://foo.bar/x" → KindURL
//	"hello world"       → KindSearch (whitespace)
//	"bing"              → KindSearch (no dot)
//	"example.com"       → KindDomain
func Classify(input string) Kind {
	switch {
	case strings.Contains(input, schemeSeparator):
		return KindURL
	case !strings.Contains(input, ".") || strings.IndexFunc(input, unicode.IsSpace) >= 0:
		return KindSearch
	default:
		return KindDomain
	}
}

// Resolve turns trimmed address bar input into a loadable URL.
// searchPrefix is the engine URL the escaped query is appended to.
// Empty input resolves to "".
func Resolve(input, searchPrefix string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	switch Classify(input) {
	case KindURL:
		return input
	case KindSearch:
		return SearchURL(searchPrefix, input)
	default:
		return secureScheme + input
	}
}

// SearchURL appends the query-escaped query to the engine prefix.
func SearchURL(prefix, query string) string {
	return prefix + neturl.QueryEscape(query)
}

// IsWebURL reports whether uri is an http(s) address worth recording.
func IsWebURL(uri string) bool {
	u, err := neturl.Parse(uri)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
