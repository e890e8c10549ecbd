// Package config loads runtime configuration for the BookNest CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv): BOOKNEST_SERVER_URL and
//     BOOKNEST_REQUEST_TIMEOUT.
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://localhost:5000",
//	  "request_timeout": "10s"
//	}
//
// Primary API
//
//   - type Config                     — holds ServerBaseURL and RequestTimeout
//   - func LoadConfig() *Config       — builds Config by layering all sources
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
