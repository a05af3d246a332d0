package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultJWTSecret is the placeholder shipped in the defaults. The server refuses to start with it.
const DefaultJWTSecret = "your-secret-key-change-in-production"

var ErrInsecureJWTSecret = errors.New("JWT_SECRET must be set in environment variables")

type Config struct {
	// Server
	ServerPort string
	GinMode    string

	// Database
	DBDriver          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	DBDSN             string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Auth
	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	// HTTP
	LogLevel        string
	CORSOrigins     []string
	TrustedProxies  []string
	RateLimit       int
	RateLimitWindow time.Duration

	// Seeded administrator
	AdminUsername    string
	AdminPassword    string
	AdminEmail       string
	AdminDisplayName string
}

var defaults = map[string]interface{}{
	"server_port": "3001",
	"gin_mode":    "release",

	"db_driver":            "postgres",
	"db_host":              "localhost",
	"db_port":              "5432",
	"db_user":              "postgres",
	"db_password":          "postgres",
	"db_name":              "sakura_community",
	"db_sslmode":           "disable",
	"db_dsn":               "",
	"db_max_open_conns":    10,
	"db_max_idle_conns":    5,
	"db_conn_max_lifetime": "30m",

	"redis_host":     "localhost",
	"redis_port":     "6379",
	"redis_password": "",
	"redis_db":       0,

	"jwt_secret":  DefaultJWTSecret,
	"jwt_ttl":     "24h",
	"bcrypt_cost": 10,

	"log_level":         "info",
	"cors_origins":      "http://localhost:3000,http://127.0.0.1:3000",
	"trusted_proxies":   "",
	"rate_limit":        20,
	"rate_limit_window": "1m",

	"admin_username":     "admin",
	"admin_password":     "",
	"admin_email":        "admin@sakura.local",
	"admin_display_name": "Administrator",
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	config := &Config{
		ServerPort: v.GetString("server_port"),
		GinMode:    v.GetString("gin_mode"),

		DBDriver:          strings.ToLower(v.GetString("db_driver")),
		DBHost:            v.GetString("db_host"),
		DBPort:            v.GetString("db_port"),
		DBUser:            v.GetString("db_user"),
		DBPassword:        v.GetString("db_password"),
		DBName:            v.GetString("db_name"),
		DBSSLMode:         v.GetString("db_sslmode"),
		DBDSN:             v.GetString("db_dsn"),
		DBMaxOpenConns:    v.GetInt("db_max_open_conns"),
		DBMaxIdleConns:    v.GetInt("db_max_idle_conns"),
		DBConnMaxLifetime: v.GetDuration("db_conn_max_lifetime"),

		RedisHost:     v.GetString("redis_host"),
		RedisPort:     v.GetString("redis_port"),
		RedisPassword: v.GetString("redis_password"),
		RedisDB:       v.GetInt("redis_db"),

		JWTSecret:  v.GetString("jwt_secret"),
		JWTTTL:     v.GetDuration("jwt_ttl"),
		BcryptCost: v.GetInt("bcrypt_cost"),

		LogLevel:        strings.ToLower(v.GetString("log_level")),
		CORSOrigins:     splitList(v.GetString("cors_origins")),
		TrustedProxies:  splitList(v.GetString("trusted_proxies")),
		RateLimit:       v.GetInt("rate_limit"),
		RateLimitWindow: v.GetDuration("rate_limit_window"),

		AdminUsername:    v.GetString("admin_username"),
		AdminPassword:    v.GetString("admin_password"),
		AdminEmail:       v.GetString("admin_email"),
		AdminDisplayName: v.GetString("admin_display_name"),
	}

	switch config.DBDriver {
	case "postgres", "mysql":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", config.DBDriver)
	}

	return config, nil
}

// ValidateSecret rejects an empty or placeholder signing secret.
func (c *Config) ValidateSecret() error {
	if c.JWTSecret == "" || c.JWTSecret == DefaultJWTSecret {
		return ErrInsecureJWTSecret
	}
	return nil
}

// DSN returns DB_DSN when set, otherwise a driver specific connection string.
func (c *Config) DSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}

	if c.DBDriver == "mysql" {
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.DBUser,
			c.DBPassword,
			c.DBHost,
			c.DBPort,
			c.DBName,
		)
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
	)
}

func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
