package port_test

import (
	"testing"

	"github.com/bnema/burrow/internal/application/port"
	"github.com/stretchr/testify/assert"
)

func TestPersistentContextOptions_EffectiveCookiePolicy(t *testing.T) {
	tests := []struct {
		name     string
		policy   port.CookiePolicy
		expected port.CookiePolicy
	}{
		{name: "empty defaults to no third party", policy: "", expected: port.CookiePolicyNoThirdParty},
		{name: "unknown defaults to no third party", policy: "sometimes", expected: port.CookiePolicyNoThirdParty},
		{name: "always kept", policy: port.CookiePolicyAlways, expected: port.CookiePolicyAlways},
		{name: "never kept", policy: port.CookiePolicyNever, expected: port.CookiePolicyNever},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := port.PersistentContextOptions{CookiePolicy: tt.policy}
			assert.Equal(t, tt.expected, opts.EffectiveCookiePolicy())
		})
	}
}

func TestContextKind_String(t *testing.T) {
	assert.Equal(t, "persistent", port.ContextPersistent.String())
	assert.Equal(t, "ephemeral", port.ContextEphemeral.String())
	assert.Equal(t, "unknown", port.ContextKind(9).String())
}
