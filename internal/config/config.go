package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Auth      AuthConfig
	Extractor ExtractorConfig
	CORS      CORSConfig
	Log       LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection pool settings.
type DBConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpen         int           `mapstructure:"max_open"`
	MaxIdle         int           `mapstructure:"max_idle"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// AuthConfig holds settings for validating bearer tokens issued by the
// external identity provider.
type AuthConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// ExtractorConfig holds settings for the document extraction provider.
// The API credential is deliberately absent: it is supplied by the caller
// on every request and never held server-side.
type ExtractorConfig struct {
	Model       string `mapstructure:"model"`
	Endpoint    string `mapstructure:"endpoint"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the TRIPFOLIO_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TRIPFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "tripfolio")
	v.SetDefault("db.password", "tripfolio_secret")
	v.SetDefault("db.name", "tripfolio_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 10)
	v.SetDefault("db.max_idle", 5)
	v.SetDefault("db.conn_max_idle_time", "5m")

	// Auth defaults
	v.SetDefault("auth.secret", "change-me-in-production")
	v.SetDefault("auth.issuer", "tripfolio")

	// Extractor defaults
	v.SetDefault("extractor.model", "claude-sonnet-4-20250514")
	v.SetDefault("extractor.endpoint", "")
	v.SetDefault("extractor.timeout_secs", 120)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "TRIPFOLIO_SERVER_PORT",
		"server.read_timeout":    "TRIPFOLIO_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "TRIPFOLIO_SERVER_WRITE_TIMEOUT",
		"server.environment":     "TRIPFOLIO_SERVER_ENVIRONMENT",
		"db.host":                "TRIPFOLIO_DB_HOST",
		"db.port":                "TRIPFOLIO_DB_PORT",
		"db.user":                "TRIPFOLIO_DB_USER",
		"db.password":            "TRIPFOLIO_DB_PASSWORD",
		"db.name":                "TRIPFOLIO_DB_NAME",
		"db.sslmode":             "TRIPFOLIO_DB_SSLMODE",
		"db.max_open":            "TRIPFOLIO_DB_MAX_OPEN",
		"db.max_idle":            "TRIPFOLIO_DB_MAX_IDLE",
		"db.conn_max_idle_time":  "TRIPFOLIO_DB_CONN_MAX_IDLE_TIME",
		"auth.secret":            "TRIPFOLIO_AUTH_SECRET",
		"auth.issuer":            "TRIPFOLIO_AUTH_ISSUER",
		"extractor.model":        "TRIPFOLIO_EXTRACTOR_MODEL",
		"extractor.endpoint":     "TRIPFOLIO_EXTRACTOR_ENDPOINT",
		"extractor.timeout_secs": "TRIPFOLIO_EXTRACTOR_TIMEOUT_SECS",
		"cors.allowed_origins":   "TRIPFOLIO_CORS_ALLOWED_ORIGINS",
		"log.level":              "TRIPFOLIO_LOG_LEVEL",
		"log.format":             "TRIPFOLIO_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if TRIPFOLIO_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("TRIPFOLIO_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:            v.GetString("db.host"),
		Port:            v.GetInt("db.port"),
		User:            v.GetString("db.user"),
		Password:        v.GetString("db.password"),
		Name:            v.GetString("db.name"),
		SSLMode:         v.GetString("db.sslmode"),
		MaxOpen:         v.GetInt("db.max_open"),
		MaxIdle:         v.GetInt("db.max_idle"),
		ConnMaxIdleTime: v.GetDuration("db.conn_max_idle_time"),
	}
	cfg.Auth = AuthConfig{
		Secret: v.GetString("auth.secret"),
		Issuer: v.GetString("auth.issuer"),
	}
	cfg.Extractor = ExtractorConfig{
		Model:       v.GetString("extractor.model"),
		Endpoint:    v.GetString("extractor.endpoint"),
		TimeoutSecs: v.GetInt("extractor.timeout_secs"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}
