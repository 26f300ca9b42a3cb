package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_defaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRY", "")
	t.Setenv("EMAIL_PROVIDER", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("SES_INSECURE_SKIP_VERIFY", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultDBUrl, cfg.DBUrl)
	assert.Equal(t, defaultJWTExpiry, cfg.JWTExpiry)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Nil(t, cfg.CORSAllowedOrigins)
}

func TestLoad_fromEnvironment(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://db/happenly")
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY", "2h")
	t.Setenv("EMAIL_PROVIDER", " SES ")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:8081,https://happenly.app")
	t.Setenv("SES_INSECURE_SKIP_VERIFY", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://db/happenly", cfg.DBUrl)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "ses", cfg.Email.Provider)
	assert.True(t, cfg.Email.SESInsecureSkipVerify)
	assert.Equal(t, []string{"http://localhost:8081", "https://happenly.app"}, cfg.CORSAllowedOrigins)
}

func TestLoad_invalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad jwt expiry", map[string]string{"JWT_EXPIRY": "tomorrow"}},
		{"zero jwt expiry", map[string]string{"JWT_EXPIRY": "0s"}},
		{"negative jwt expiry", map[string]string{"JWT_EXPIRY": "-1h"}},
		{"bad ses flag", map[string]string{"SES_INSECURE_SKIP_VERIFY": "maybe"}},
		{"missing secret in production", map[string]string{"GO_ENV": "production", "JWT_SECRET": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GO_ENV", "test")
			t.Setenv("JWT_SECRET", "x")
			t.Setenv("JWT_EXPIRY", "")
			t.Setenv("SES_INSECURE_SKIP_VERIFY", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
		})
	}
}
