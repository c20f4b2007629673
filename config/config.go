package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers understood by the application
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Document store configuration
	StoreDriver   string
	MongoURI      string
	MongoDatabase string

	// SQL store configuration (postgres / sqlite drivers)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Session configuration. An empty RedisURL keeps notifications in memory.
	RedisURL      string
	SessionCookie string
	SessionTTL    time.Duration
	CookieSecure  bool

	// Upload configuration. Without S3Bucket images are kept in LocalAssetDir.
	StagingDir    string
	S3Bucket      string
	S3Region      string
	AssetBaseURL  string
	LocalAssetDir string

	// HTTP configuration
	AllowedOrigins []string
}

// LoadConfig creates a new Config instance with values from the environment.
// A .env file in the working directory (or ENV_FILE) is applied first when present;
// variables already set in the process environment win.
func LoadConfig() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	} else if err == nil {
		log.Printf("[Config] Loaded environment from %s", envFile)
	}

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "3000"),
		ServerHost: getEnv("SERVER_HOST", ""),

		StoreDriver:   strings.ToLower(getEnv("STORE_DRIVER", DriverSQLite)),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "cooking_blog"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: readSecretOrEnv("db_password", "DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "cooking_blog"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "data/cooking_blog.db"),

		RedisURL:      readSecretOrEnv("redis_url", "REDIS_URL"),
		SessionCookie: getEnv("SESSION_COOKIE", "cooking_blog_sid"),
		SessionTTL:    getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		CookieSecure:  getEnvAsBool("COOKIE_SECURE", false),

		StagingDir:    getEnv("STAGING_DIR", filepath.Join(os.TempDir(), "cooking-blog-uploads")),
		S3Bucket:      getEnv("S3_BUCKET_NAME", ""),
		S3Region:      getEnv("AWS_REGION", ""),
		AssetBaseURL:  strings.TrimRight(getEnv("ASSET_BASE_URL", ""), "/"),
		LocalAssetDir: getEnv("LOCAL_ASSET_DIR", filepath.Join("data", "uploads")),

		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "")),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// PostgresDSN builds the connection string for the postgres driver
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("[Config] Ignoring invalid %s=%q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}

func getEnvAsBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return b
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// readSecretOrEnv prefers a Docker secret file and falls back to the environment
func readSecretOrEnv(secret, envVar string) string {
	if v := readSecret(secret); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv(envVar))
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
