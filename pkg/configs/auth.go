package configs

import "github.com/spf13/viper"

// AuthConfig controls request authentication. Identity headers injected by an
// oauth2-proxy style gateway are trusted; a dev-mode query fallback exists for
// local debugging.
type AuthConfig struct {
	Enabled       bool     `mapstructure:"enabled"`
	SkipPaths     []string `mapstructure:"skip_paths"`      // path prefixes exempt from auth
	DevAllowQuery bool     `mapstructure:"dev_allow_query"` // allow ?user= in dev setups
}

func (c *AuthConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("auth.enabled", true)
	v.SetDefault("auth.dev_allow_query", true)
	v.SetDefault("auth.skip_paths", []string{
		"/metrics",
		"/debug/pprof",
		"/api/v1/health",
		"/share",
	})
}
