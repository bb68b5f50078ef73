package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "STORE_URL", "STORE_TIMEOUT", "DEFAULT_USER_ID", "CORS_ALLOW_ORIGINS", "RATE_LIMIT_PER_SECOND"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "http://localhost:8080", cfg.Store.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Store.Timeout)
	assert.Equal(t, 3, cfg.Store.BreakerMaxFailures)
	assert.Equal(t, "current-user-id", cfg.Server.DefaultUserID)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, 20, cfg.Security.RateLimitPerSecond)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/cards.db")
	t.Setenv("STORE_URL", "http://store.internal:9000/")
	t.Setenv("STORE_TIMEOUT", "2s")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("CACHE_DISABLED", "true")

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/cards.db", cfg.Database.DSN())
	assert.Equal(t, "http://store.internal:9000", cfg.Store.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Store.Timeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSAllowOrigins)
	assert.True(t, cfg.Cache.Disabled)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_SECOND", "lots")
	t.Setenv("STORE_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 20, cfg.Security.RateLimitPerSecond)
	assert.Equal(t, 10*time.Second, cfg.Store.Timeout)
}

func TestValidate(t *testing.T) {
	cfg := Load()
	cfg.Database.Driver = "mysql"
	assert.ErrorContains(t, cfg.Validate(), "unsupported DB_DRIVER")

	cfg = Load()
	cfg.Server.DefaultUserID = ""
	assert.Error(t, cfg.Validate())

	cfg = Load()
	cfg.Security.RateLimitPerSecond = 0
	assert.Error(t, cfg.Validate())
}

func TestDatabaseConfig_PostgresDSN(t *testing.T) {
	cfg := DatabaseConfig{Driver: DriverPostgres, Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", cfg.DSN())
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CREDIT_TRACKER_TEST_VALUE=from-file\n"), 0o600))
	t.Setenv("CREDIT_TRACKER_TEST_VALUE", "")
	os.Unsetenv("CREDIT_TRACKER_TEST_VALUE")

	err := LoadEnvFiles(filepath.Join(dir, "missing.env"), path)

	require.NoError(t, err)
	assert.Equal(t, "from-file", os.Getenv("CREDIT_TRACKER_TEST_VALUE"))
}
