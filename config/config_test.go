package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  serviceName: favorites
  log:
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 3s
postgres:
  master:
    host: db
    port: "5432"
  database: favorites
session:
  hashKey: 0123456789abcdef0123456789abcdef
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(body), 0o600))

	return dir
}

func TestLoadWithEnv_FileAndEnvOverride(t *testing.T) {
	dir := writeConfig(t, testYAML)
	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("POSTGRES_MASTER_HOST", "replica.local")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "replica.local", cfg.Postgres.Master.Host)
	assert.Equal(t, "favorites", cfg.Postgres.Database)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Postgres: &PostgresConfig{},
		Session:  &SessionConfig{HashKey: "0123456789abcdef0123456789abcdef"},
	}

	require.NoError(t, cfg.applyDefaults())
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultSessionName, cfg.Session.Name)
	assert.Equal(t, defaultSessionMaxAge, cfg.Session.MaxAge)
	assert.NotNil(t, cfg.Auth)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestApplyDefaults_RejectsShortSessionKey(t *testing.T) {
	cfg := &Config{
		Postgres: &PostgresConfig{},
		Session:  &SessionConfig{HashKey: "short"},
	}

	assert.Error(t, cfg.applyDefaults())
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "r0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "r1")

	replicas := buildReplicasFromEnv()
	require.Len(t, replicas, 1)
	assert.Equal(t, ConnectionConfig{Host: "r0", Port: "5433", UserName: "reader"}, replicas[0])
}
