package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "DIRECTIONS_API_KEY", "ROUTE_TIMEOUT", "REFRESH_SCHEDULE", "REGION"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.DirectionsKey)
	assert.Equal(t, "IN", cfg.Region)
	assert.Equal(t, 15*time.Second, cfg.RouteTimeout)
	assert.Equal(t, "@every 30s", cfg.RefreshSchedule)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ROUTE_TIMEOUT", "3s")
	t.Setenv("FETCH_TIMEOUT", "soon")
	t.Setenv("BACKEND_URL", "http://traffic.local")

	cfg := FromEnv()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.RouteTimeout)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "http://traffic.local", cfg.BackendURL)
}
