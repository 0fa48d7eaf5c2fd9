package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hapkiduki/shipping-console/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "shipping-console", cfg.App.Name)
	assert.True(t, cfg.App.IsDevelopment())
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "admin", cfg.Auth.Username)
	assert.Equal(t, 8*time.Hour, cfg.Auth.SessionTTL)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.True(t, cfg.Submitter.BreakerEnabled)
	assert.EqualValues(t, 5, cfg.Submitter.BreakerFailureThreshold)

	policy, err := cfg.Shipment.Policy()
	require.NoError(t, err)
	assert.Equal(t, entity.DimensionPolicyRetain, policy)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SCS_SERVER_PORT", "9090")
	t.Setenv("SCS_LOG_LEVEL", "debug")
	t.Setenv("SCS_SHIPMENT_DIMENSION_POLICY", "clear")
	t.Setenv("SCS_AUTH_SESSION_TTL", "15m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 15*time.Minute, cfg.Auth.SessionTTL)

	policy, err := cfg.Shipment.Policy()
	require.NoError(t, err)
	assert.Equal(t, entity.DimensionPolicyClear, policy)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	yaml := []byte("server:\n  port: 7070\nrate_limit:\n  enabled: false\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoad_InvalidDimensionPolicy(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SCS_SHIPMENT_DIMENSION_POLICY", "sometimes")

	_, err := Load()
	assert.ErrorIs(t, err, entity.ErrInvalidDimensionPolicy)
}

func TestConfig_Validate(t *testing.T) {
	base := Config{
		Server:    ServerConfig{Port: 8080, MaxRequestSize: 1 << 20},
		Auth:      AuthConfig{Username: "u", Password: "p", SessionTTL: time.Hour},
		RateLimit: RateLimitConfig{Enabled: true, RequestsPerSecond: 10, Burst: 20},
	}
	require.NoError(t, base.Validate())

	badPort := base
	badPort.Server.Port = 0
	assert.Error(t, badPort.Validate())

	noPassword := base
	noPassword.Auth.Password = ""
	assert.Error(t, noPassword.Validate())

	noBodySize := base
	noBodySize.Server.MaxRequestSize = 0
	assert.Error(t, noBodySize.Validate())

	noRate := base
	noRate.RateLimit.RequestsPerSecond = 0
	assert.Error(t, noRate.Validate())

	noBurst := base
	noBurst.RateLimit.Burst = -1
	assert.Error(t, noBurst.Validate())

	disabled := noBurst
	disabled.RateLimit.Enabled = false
	assert.NoError(t, disabled.Validate(), "limits of a disabled rate limiter are not used")

	badProxy := base
	badProxy.Server.TrustedProxies = []string{"10.0.0.0/33"}
	assert.Error(t, badProxy.Validate())
}

func TestLoad_RejectsNonPositiveLimits(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{"max request size", "SCS_SERVER_MAX_REQUEST_SIZE", "0"},
		{"requests per second", "SCS_RATE_LIMIT_REQUESTS_PER_SECOND", "0"},
		{"burst", "SCS_RATE_LIMIT_BURST", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.env, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestServerConfig_TrustedProxyPrefixes(t *testing.T) {
	s := ServerConfig{TrustedProxies: []string{"10.0.0.0/8", " 192.168.1.5 ", "", "::ffff:172.16.0.1"}}

	got, err := s.TrustedProxyPrefixes()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "10.0.0.0/8", got[0].String())
	assert.Equal(t, "192.168.1.5/32", got[1].String())
	assert.Equal(t, "172.16.0.1/32", got[2].String())

	_, err = ServerConfig{TrustedProxies: []string{"proxy.local"}}.TrustedProxyPrefixes()
	assert.Error(t, err)
}

func TestLoad_TrustedProxiesDefaultToNone(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	got, err := cfg.Server.TrustedProxyPrefixes()
	require.NoError(t, err)
	assert.Empty(t, got)
}
