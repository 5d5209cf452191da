package webkit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/burrow/internal/application/port"
	"github.com/bnema/burrow/internal/logging"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/rs/zerolog"
)

const (
	dataDirPerm     = 0o700
	cookiesFileName = "cookies.sqlite"
)

// browsingContext is a network session: on-disk for the persistent
// context, in memory for ephemeral ones.
type browsingContext struct {
	kind     port.ContextKind
	session  *webkit.NetworkSession
	released bool
	logger   zerolog.Logger
}

var _ port.BrowsingContext = (*browsingContext)(nil)

func (c *browsingContext) Kind() port.ContextKind {
	return c.kind
}

// Release drops the session of an ephemeral context. The persistent
// context lives for the whole process and ignores it.
func (c *browsingContext) Release() {
	if c.kind == port.ContextPersistent || c.released {
		return
	}
	c.released = true
	c.session = nil
	c.logger.Debug().Msg("ephemeral context released")
}

func newPersistentContext(ctx context.Context, opts port.PersistentContextOptions) (*browsingContext, error) {
	log := logging.FromContext(ctx).With().Str("component", "webkit-context").Logger()

	if opts.DataDir == "" {
		return nil, fmt.Errorf("data directory cannot be empty")
	}
	if opts.CacheDir == "" {
		return nil, fmt.Errorf("cache directory cannot be empty")
	}
	for _, dir := range []string{opts.DataDir, opts.CacheDir} {
		if err := os.MkdirAll(dir, dataDirPerm); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	session := webkit.NewNetworkSession(opts.DataDir, opts.CacheDir)
	if session == nil {
		return nil, fmt.Errorf("failed to create persistent network session")
	}
	if session.IsEphemeral() {
		return nil, fmt.Errorf("created session is ephemeral despite providing data directories")
	}

	cookieManager := session.CookieManager()
	if cookieManager == nil {
		return nil, fmt.Errorf("failed to get cookie manager from network session")
	}
	cookiePath := filepath.Join(opts.DataDir, cookiesFileName)
	cookieManager.SetPersistentStorage(cookiePath, webkit.CookiePersistentStorageSqlite)
	cookieManager.SetAcceptPolicy(cookieAcceptPolicy(opts.EffectiveCookiePolicy()))

	session.SetPersistentCredentialStorageEnabled(true)

	log.Info().
		Str("data_dir", opts.DataDir).
		Str("cache_dir", opts.CacheDir).
		Str("cookie_policy", string(opts.EffectiveCookiePolicy())).
		Msg("persistent context created")

	return &browsingContext{
		kind:    port.ContextPersistent,
		session: session,
		logger:  log,
	}, nil
}

func newEphemeralContext(ctx context.Context) (*browsingContext, error) {
	log := logging.FromContext(ctx).With().Str("component", "webkit-context").Logger()

	session := webkit.NewNetworkSessionEphemeral()
	if session == nil {
		return nil, fmt.Errorf("failed to create ephemeral network session")
	}

	log.Debug().Msg("ephemeral context created")
	return &browsingContext{
		kind:    port.ContextEphemeral,
		session: session,
		logger:  log,
	}, nil
}

func cookieAcceptPolicy(policy port.CookiePolicy) webkit.CookieAcceptPolicy {
	switch policy {
	case port.CookiePolicyAlways:
		return webkit.CookiePolicyAcceptAlways
	case port.CookiePolicyNever:
		return webkit.CookiePolicyAcceptNever
	default:
		return webkit.CookiePolicyAcceptNoThirdParty
	}
}
