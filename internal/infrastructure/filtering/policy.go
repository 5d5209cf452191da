// Package filtering hides common advertisement elements with a user stylesheet.
package filtering

import "strings"

// DefaultSelectors are the element selectors hidden when ad blocking is on.
var DefaultSelectors = []string{
	"iframe[src*='ads']",
	"div[class*='ad-']",
	"div[id*='google_ads']",
	".adsbygoogle",
	".ad-banner",
}

const hideDeclaration = " { display: none !important; }"

// Policy renders a fixed selector list into a stylesheet.
// It implements port.ContentFilter.
type Policy struct {
	selectors  []string
	stylesheet string
}

// NewPolicy creates a policy over DefaultSelectors.
func NewPolicy() *Policy {
	return NewPolicyWithSelectors(DefaultSelectors)
}

// NewPolicyWithSelectors creates a policy over selectors. Blank entries are dropped.
func NewPolicyWithSelectors(selectors []string) *Policy {
	kept := make([]string, 0, len(selectors))
	for _, s := range selectors {
		if s = strings.TrimSpace(s); s != "" {
			kept = append(kept, s)
		}
	}

	p := &Policy{selectors: kept}
	if len(kept) > 0 {
		p.stylesheet = strings.Join(kept, ", ") + hideDeclaration
	}
	return p
}

// Stylesheet returns the CSS injected into every frame of a new tab.
func (p *Policy) Stylesheet() string {
	return p.stylesheet
}

// Selectors returns a copy of the hidden selectors.
func (p *Policy) Selectors() []string {
	out := make([]string, len(p.selectors))
	copy(out, p.selectors)
	return out
}
