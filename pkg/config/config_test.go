package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, 24, cfg.SessionHours)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, "admin@luxehaven.com", cfg.AdminEmail)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL_HOURS", "8")
	t.Setenv("COOKIE_SECURE", "false")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 8, cfg.SessionHours)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, "hunter2", cfg.AdminPassword)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "soon")
	t.Setenv("COOKIE_SECURE", "yep")

	cfg := Load()

	assert.Equal(t, 24, cfg.SessionHours)
	assert.True(t, cfg.CookieSecure)
}
