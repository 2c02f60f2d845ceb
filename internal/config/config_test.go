package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
api:
  environment: test
  port: "9000"
  base_url: localhost:9000
  allowed_cors_domains:
    - http://localhost:3000
  jwt_signing_key: secret
gin:
  mode: test
postgres:
  host: localhost
  user: postgres
  password: postgres
  db: activities
ledger:
  max_concurrency: 4
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "test", conf.API.Environment)
	assert.Equal(t, "9000", conf.API.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, 24*time.Hour, conf.API.JWTTTL)
	assert.Equal(t, "test", conf.Gin.Mode)
	assert.Equal(t, "5432", conf.Postgres.Port)
	assert.Equal(t, "disable", conf.Postgres.SSLMode)
	assert.Equal(t, 4, conf.Ledger.MaxConcurrency)
	assert.True(t, conf.Metrics.Enabled)
	assert.NoError(t, conf.Validate(""))
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("APP_API_PORT", "7000")
	t.Setenv("APP_LEDGER_MAX_CONCURRENCY", "2")

	conf, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "7000", conf.API.Port)
	assert.Equal(t, 2, conf.Ledger.MaxConcurrency)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestAppConfig_Validate(t *testing.T) {
	conf, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	conf.Postgres.Host = ""
	assert.EqualError(t, conf.Validate(""), "postgres.host is required")
	assert.NoError(t, conf.Validate("postgres://localhost/activities"))

	conf.API.JWTSigningKey = ""
	assert.EqualError(t, conf.Validate("postgres://localhost/activities"), "api.jwt_signing_key is required")
}
