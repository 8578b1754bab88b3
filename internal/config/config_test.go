package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:        "5000",
			JWTSecret:   "secure-secret-at-least-32-chars-long!!",
			AdminSecret: "admin-secret",
			DBPassword:  "secure-password",
			DBSSLMode:   "require",
			Env:         "development",
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"valid development config", func(c *Config) {}, false},
		{"missing port", func(c *Config) { c.Port = "" }, true},
		{"missing jwt secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"short secret allowed in development", func(c *Config) { c.JWTSecret = "short" }, false},
		{"default secret rejected in production", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "your-secret-key-change-in-production"
		}, true},
		{"short secret rejected in production", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "short"
		}, true},
		{"missing admin secret rejected in production", func(c *Config) {
			c.Env = "production"
			c.AdminSecret = ""
		}, true},
		{"weak db password rejected in prod", func(c *Config) {
			c.Env = "prod"
			c.DBPassword = "password"
		}, true},
		{"valid production config", func(c *Config) { c.Env = "production" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
