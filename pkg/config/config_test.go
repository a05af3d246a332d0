package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "testuser")
	t.Setenv("DB_PASSWORD", "testpass")
	t.Setenv("DB_NAME", "testdb")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 192.168.0.0/16")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, "testuser", cfg.DBUser)
	assert.Equal(t, "testpass", cfg.DBPassword)
	assert.Equal(t, "testdb", cfg.DBName)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.Equal(t, "cache.internal:6380", cfg.RedisAddr())
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, []string{"10.0.0.1", "192.168.0.0/16"}, cfg.TrustedProxies)
	assert.Equal(t, "testuser:testpass@tcp(db.internal:3306)/testdb?charset=utf8mb4&parseTime=True&loc=Local", cfg.DSN())
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "DB_DRIVER", "DB_HOST", "DB_PORT", "DB_DSN", "JWT_SECRET", "JWT_TTL", "BCRYPT_COST", "DB_MAX_OPEN_CONNS", "TRUSTED_PROXIES"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.ServerPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.Empty(t, cfg.TrustedProxies)
	assert.Contains(t, cfg.DSN(), "host=localhost")
	assert.Contains(t, cfg.DSN(), "sslmode=disable")
}

func TestLoadConfig_UnsupportedDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	_, err := Load()
	assert.Error(t, err)
}

func TestDSN_Override(t *testing.T) {
	cfg := &Config{DBDriver: "postgres", DBDSN: "postgres://u:p@h/db"}
	assert.Equal(t, "postgres://u:p@h/db", cfg.DSN())
}

func TestValidateSecret(t *testing.T) {
	assert.ErrorIs(t, (&Config{}).ValidateSecret(), ErrInsecureJWTSecret)
	assert.ErrorIs(t, (&Config{JWTSecret: DefaultJWTSecret}).ValidateSecret(), ErrInsecureJWTSecret)
	assert.NoError(t, (&Config{JWTSecret: "s3cret"}).ValidateSecret())
}
