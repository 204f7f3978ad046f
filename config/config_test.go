package config_test

import (
	"testing"
	"time"

	"github.com/Flaque/filet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dayflow-backend/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.EnvLocal, cfg.Env)
	assert.Equal(t, 3001, cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.False(t, cfg.SeedDemo)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.False(t, cfg.SMTP.Enabled())
	assert.True(t, cfg.UsingFallbackSecret())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("SEED_DEMO", "true")
	t.Setenv("SMTP_HOST", "smtp.co.com")
	t.Setenv("SMTP_FROM", "hr@co.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.EnvProd, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.False(t, cfg.UsingFallbackSecret())
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.True(t, cfg.SeedDemo)
	assert.Equal(t, "smtp.co.com", cfg.SMTP.Host)
	assert.Equal(t, "hr@co.com", cfg.SMTP.From)
	assert.True(t, cfg.SMTP.Enabled())
}

func TestLoad_File(t *testing.T) {
	configContent := `
---
env: "development"
port: 4000
jwt:
  secret: from-file
smtp:
  host: mail.co.com
  port: 2525
`
	filet.File(t, "dayflow.yaml", configContent)
	defer filet.CleanUp(t)

	t.Setenv("CONFIG_PATH", "dayflow.yaml")
	t.Setenv("PORT", "5000")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.EnvDev, cfg.Env)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, "mail.co.com", cfg.SMTP.Host)
	assert.Equal(t, 2525, cfg.SMTP.Port)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", "./invalid/path.yaml")
		_, err := config.Load()
		assert.EqualError(t, err, "config file does not exist: ./invalid/path.yaml")
	})

	t.Run("bad yaml", func(t *testing.T) {
		tmpFile := filet.TmpFile(t, "", "::::bad_yaml")
		defer filet.CleanUp(t)

		t.Setenv("CONFIG_PATH", tmpFile.Name())
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("bad ttl", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", "")
		t.Setenv("TOKEN_TTL", "soon")
		assert.Panics(t, func() { config.MustLoad() })
	})
}
