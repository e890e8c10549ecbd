package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv(t *testing.T) {
	t.Run("overrides from environment", func(t *testing.T) {
		t.Setenv(EnvServerBaseURL, "http://env.example:7000")
		t.Setenv(EnvRequestTimeout, "25s")

		cfg := &Config{ServerBaseURL: "http://defaults:1234", RequestTimeout: 42 * time.Second}
		parseEnv(cfg)

		assert.Equal(t, "http://env.example:7000", cfg.ServerBaseURL)
		assert.Equal(t, 25*time.Second, cfg.RequestTimeout)
	})

	t.Run("empty environment leaves values", func(t *testing.T) {
		t.Setenv(EnvServerBaseURL, "")
		t.Setenv(EnvRequestTimeout, "")

		cfg := &Config{ServerBaseURL: "http://defaults:1234", RequestTimeout: 42 * time.Second}
		parseEnv(cfg)

		assert.Equal(t, "http://defaults:1234", cfg.ServerBaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("malformed timeout is ignored", func(t *testing.T) {
		t.Setenv(EnvRequestTimeout, "not-a-duration")

		cfg := &Config{RequestTimeout: 42 * time.Second}
		parseEnv(cfg)

		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})
}
