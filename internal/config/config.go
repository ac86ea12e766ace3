package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DatabaseConfig holds database connection settings.
// Driver selects the backend: "sqlite" (default, Path is the database file) or "postgres".
type DatabaseConfig struct {
	Driver             string `yaml:"driver"`
	Path               string `yaml:"path"`
	Host               string `yaml:"host"`
	Port               string `yaml:"port"`
	User               string `yaml:"user"`
	Password           string `yaml:"password"`
	Name               string `yaml:"name"`
	SSLMode            string `yaml:"sslmode"`
	MaxOpenConns       int    `yaml:"max_open_conns"`
	MaxIdleConns       int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeSec int    `yaml:"conn_max_lifetime_sec"`
}

// MinIOConfig holds object storage settings for MinIO.
// An empty Endpoint disables archiving of submitted texts.
type MinIOConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// AuthConfig holds session token and password hashing settings.
type AuthConfig struct {
	// Secret signs session tokens. A random secret is generated at startup when empty.
	Secret      string `yaml:"secret"`
	TokenTTLMin int    `yaml:"token_ttl_min"`
	CookieName  string `yaml:"cookie_name"`
	BcryptCost  int    `yaml:"bcrypt_cost"`
}

// DictionaryConfig holds extraction and ownership settings.
type DictionaryConfig struct {
	EnforceOwnership bool `yaml:"enforce_ownership"`
	MaxTextBytes     int  `yaml:"max_text_bytes"`
	FetchTimeoutSec  int  `yaml:"fetch_timeout_sec"`
	PageSize         int  `yaml:"page_size"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables, optionally on top of a YAML file.
type AppConfig struct {
	AppHost    string           `yaml:"app_host"`
	Port       string           `yaml:"port"`
	Timezone   string           `yaml:"timezone"`
	LogLevel   string           `yaml:"log_level"`
	Database   DatabaseConfig   `yaml:"database"`
	MinIO      MinIOConfig      `yaml:"minio"`
	Auth       AuthConfig       `yaml:"auth"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
}

// Defaults returns the configuration used when neither a file nor the environment sets a value.
func Defaults() *AppConfig {
	return &AppConfig{
		AppHost:  "localhost:8080",
		Port:     "8080",
		Timezone: "UTC",
		LogLevel: "info",
		Database: DatabaseConfig{
			Driver:             "sqlite",
			Path:               "dictionary.db",
			Port:               "5432",
			SSLMode:            "disable",
			MaxOpenConns:       10,
			MaxIdleConns:       5,
			ConnMaxLifetimeSec: 300,
		},
		Auth: AuthConfig{
			TokenTTLMin: 60 * 24,
			CookieName:  "session",
			BcryptCost:  10,
		},
		Dictionary: DictionaryConfig{
			MaxTextBytes:    1 << 20,
			FetchTimeoutSec: 15,
			PageSize:        100,
		},
	}
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// When CONFIG_FILE points to a YAML file its values replace the defaults; environment variables still win.
func Load() (*AppConfig, error) {
	base := Defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		var err error
		if base, err = LoadFile(path); err != nil {
			return nil, err
		}
	}
	return fromEnv(base), nil
}

// LoadFile reads a YAML configuration file on top of Defaults.
func LoadFile(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

func fromEnv(b *AppConfig) *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", b.AppHost),
		Port:     getEnv("PORT", b.Port),
		Timezone: getEnv("APP_TIMEZONE", b.Timezone),
		LogLevel: getEnv("LOG_LEVEL", b.LogLevel),
		Database: DatabaseConfig{
			Driver:             getEnv("DB_DRIVER", b.Database.Driver),
			Path:               getEnv("DB_PATH", b.Database.Path),
			Host:               getEnv("DB_HOST", b.Database.Host),
			Port:               getEnv("DB_PORT", b.Database.Port),
			User:               getEnv("DB_USER", b.Database.User),
			Password:           getEnv("DB_PASSWORD", b.Database.Password),
			Name:               getEnv("DB_NAME", b.Database.Name),
			SSLMode:            getEnv("DB_SSLMODE", b.Database.SSLMode),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", b.Database.MaxOpenConns),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", b.Database.MaxIdleConns),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", b.Database.ConnMaxLifetimeSec),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", b.MinIO.Endpoint),
			AccessKey: getEnv("MINIO_ACCESS_KEY", b.MinIO.AccessKey),
			SecretKey: getEnv("MINIO_SECRET_KEY", b.MinIO.SecretKey),
			Bucket:    getEnv("MINIO_BUCKET", b.MinIO.Bucket),
			UseSSL:    getEnvBool("MINIO_USE_SSL", b.MinIO.UseSSL),
		},
		Auth: AuthConfig{
			Secret:      getEnv("AUTH_SECRET", b.Auth.Secret),
			TokenTTLMin: getEnvInt("AUTH_TOKEN_TTL_MIN", b.Auth.TokenTTLMin),
			CookieName:  getEnv("AUTH_COOKIE_NAME", b.Auth.CookieName),
			BcryptCost:  getEnvInt("AUTH_BCRYPT_COST", b.Auth.BcryptCost),
		},
		Dictionary: DictionaryConfig{
			EnforceOwnership: getEnvBool("DICT_ENFORCE_OWNERSHIP", b.Dictionary.EnforceOwnership),
			MaxTextBytes:     getEnvInt("DICT_MAX_TEXT_BYTES", b.Dictionary.MaxTextBytes),
			FetchTimeoutSec:  getEnvInt("DICT_FETCH_TIMEOUT_SEC", b.Dictionary.FetchTimeoutSec),
			PageSize:         getEnvInt("DICT_PAGE_SIZE", b.Dictionary.PageSize),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
