package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Upstream UpstreamConfig
	Cache    CacheConfig
	JWT      JWTConfig
	Admin    AdminConfig
}

// UpstreamConfig holds the Syncorp HRIS API configuration.
// Token and ActorEmpID are sent as X-JWT-TOKEN / X-EMP-ID on every
// upstream request.
type UpstreamConfig struct {
	BaseURL    string
	Token      string
	ActorEmpID string
	Timeout    time.Duration
}

// CacheConfig holds snapshot and reference-data cache settings
type CacheConfig struct {
	ReferenceTTL time.Duration // employee / dropdown catalog refresh period
	SnapshotTTL  time.Duration // per-domain record snapshot lifetime
	PollInterval time.Duration // live attendance poll period
}

// JWTConfig holds gateway session token configuration
type JWTConfig struct {
	Secret          string
	AccessTokenMins int
}

// AdminConfig holds the bootstrap admin account.
// PasswordHash is a bcrypt hash; plaintext is never configured.
type AdminConfig struct {
	Username     string
	PasswordHash string
	EmpID        string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	baseURL := strings.TrimRight(getEnv("SYNCORP_BASE_URL", ""), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("SYNCORP_BASE_URL is required")
	}

	config := &Config{
		AppMode: appMode,
		Port:    getEnv("PORT", "3000"),
		Upstream: UpstreamConfig{
			BaseURL:    baseURL,
			Token:      getEnv("SYNCORP_TOKEN", ""),
			ActorEmpID: getEnv("SYNCORP_EMP_ID", ""),
			Timeout:    getDuration("SYNCORP_TIMEOUT_SECONDS", 10) * time.Second,
		},
		Cache: CacheConfig{
			ReferenceTTL: getDuration("REFERENCE_TTL_MINUTES", 10) * time.Minute,
			SnapshotTTL:  getDuration("SNAPSHOT_TTL_SECONDS", 60) * time.Second,
			PollInterval: getDuration("POLL_INTERVAL_SECONDS", 5) * time.Second,
		},
		JWT:   loadJWTConfig(appMode),
		Admin: loadAdminConfig(),
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	accessMins, _ := strconv.Atoi(getEnv("ACCESS_TOKEN_MINUTES", "60"))

	return JWTConfig{
		Secret:          getEnv(prefix+"JWT_SECRET", "default_secret"),
		AccessTokenMins: accessMins,
	}
}

// loadAdminConfig loads the bootstrap admin account
func loadAdminConfig() AdminConfig {
	return AdminConfig{
		Username:     getEnv("ADMIN_USERNAME", "admin"),
		PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		EmpID:        getEnv("ADMIN_EMP_ID", ""),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration reads an integer environment variable as a count of time units
func getDuration(key string, defaultValue int) time.Duration {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil || v < 1 {
		v = defaultValue
	}
	return time.Duration(v)
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://admin.syncorp.megaxsolutions.com"
	}
	return origins
}
