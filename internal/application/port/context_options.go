package port

// CookiePolicy controls cookie acceptance for the persistent context.
type CookiePolicy string

const (
	CookiePolicyAlways       CookiePolicy = "always"
	CookiePolicyNoThirdParty CookiePolicy = "no_third_party"
	CookiePolicyNever        CookiePolicy = "never"
)

// PersistentContextOptions locates the on-disk state of the persistent context.
type PersistentContextOptions struct {
	// DataDir holds cookies and website data.
	DataDir string

	// CacheDir holds the HTTP cache.
	CacheDir string

	// CookiePolicy controls cookie acceptance. Empty means no third party.
	CookiePolicy CookiePolicy
}

// EffectiveCookiePolicy returns the configured policy or the no-third-party default.
func (o PersistentContextOptions) EffectiveCookiePolicy() CookiePolicy {
	switch o.CookiePolicy {
	case CookiePolicyAlways, CookiePolicyNever, CookiePolicyNoThirdParty:
		return o.CookiePolicy
	default:
		return CookiePolicyNoThirdParty
	}
}
