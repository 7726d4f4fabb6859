package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "PLANTVISION_"

// parseEnv overlays PLANTVISION_* variables. Unset variables leave the
// current value alone. A nil environ reads the process environment.
func parseEnv(cfg *Config, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix, Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
