package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `api:
  environment: "test"
  base_url: "localhost:5000"
  port: "5000"
  jwt_signing_key: "test-key"
  allowed_cors_domains: "http://localhost:3000"

gin:
  mode: "test"

console:
  enabled: false

postgres:
  host: "localhost"
  port: "5432"
  user: "postgres"
  password: "postgres"
  db_name: "pos_test"
  ssl_mode: "disable"
`

func writeTestConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		conf, err := Load(writeTestConfig(t))

		require.NoError(t, err)
		assert.Equal(t, "test", conf.API.Environment)
		assert.Equal(t, "5000", conf.API.Port)
		assert.False(t, conf.Console.Enabled)
		assert.Equal(t, "pos_test", conf.Postgres.DBName)
	})

	t.Run("Error - missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))

		assert.Error(t, err)
	})
}

func TestPostgresConfig_DSN(t *testing.T) {
	conf := &PostgresConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "secret",
		DBName:   "pos_db",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=pos_db sslmode=disable",
		conf.DSN(),
	)
}
