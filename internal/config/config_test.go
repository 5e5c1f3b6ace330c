package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigToml = `
[development]
environment = "development"
host = "localhost"
port = 8080
log_level = "trace"
log_to_stdout = true
postgres_host = "localhost"
postgres_port = "5432"
postgres_db_name = "fitplan_dev"
redis_host = "localhost"
redis_port = "6379"
prometheus_metrics_host = "localhost"
prometheus_metrics_port = "2112"
evaluate_rate_limit_allowed_per_min = 30
plan_cache_size_megabytes = 10

[production]
environment = "production"
host = ""
port = 9000
log_level = "debug"
logs_path = "/var/log/fitplan/service.log"
sentry_enabled = true
postgres_host = "db"
postgres_port = "5432"
postgres_db_name = "fitplan"
redis_host = "redis"
redis_port = "6379"
prometheus_metrics_host = ""
prometheus_metrics_port = "2112"
evaluate_rate_limit_allowed_per_min = 60
plan_cache_size_megabytes = 50
`

func TestLoad(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(testConfigToml), 0o600))

	devCfg, err := Load("dev", configPath)
	require.NoError(t, err)
	assert.Equal(t, "development", devCfg.Environment)
	assert.Equal(t, 8080, devCfg.Port)
	assert.Equal(t, "fitplan_dev", devCfg.PostgresDBName)
	assert.True(t, devCfg.LogToStdout)
	assert.False(t, devCfg.SentryEnabled)
	assert.Equal(t, 30, devCfg.EvaluateRateLimitAllowedPerMin)

	prodCfg, err := Load("production", configPath)
	require.NoError(t, err)
	assert.Equal(t, "production", prodCfg.Environment)
	assert.Equal(t, 9000, prodCfg.Port)
	assert.Equal(t, "/var/log/fitplan/service.log", prodCfg.LogsPath)
	assert.True(t, prodCfg.SentryEnabled)
	assert.Equal(t, 50, prodCfg.PlanCacheSizeMegabytes)
}

func TestLoad_UnknownEnv(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(testConfigToml), 0o600))

	cfg, err := Load("staging", configPath)
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "unknown env")
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load("dev", filepath.Join(t.TempDir(), "nope.toml"))
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "read config file")
}
