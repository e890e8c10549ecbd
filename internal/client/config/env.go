package config

import (
	"os"
	"time"
)

// Environment variables recognized by parseEnv.
const (
	EnvServerBaseURL  = "BOOKNEST_SERVER_URL"
	EnvRequestTimeout = "BOOKNEST_REQUEST_TIMEOUT"
)

// parseEnv overlays Config with values from the environment. Unset or empty
// variables leave the current value alone; a malformed timeout is ignored.
func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvServerBaseURL); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv(EnvRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
