package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays Config fields from environment variables according to
// the `env` tags on Config. Unset variables leave the current values alone.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
