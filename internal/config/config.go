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

// Store drivers
const (
	StoreMySQL  = "mysql"
	StoreMemory = "memory"
)

// Config holds all configuration for the application
type Config struct {
	AppMode        string
	Port           string
	StoreDriver    string
	SeedSampleData bool
	Database       DatabaseConfig
	JWT            JWTConfig
	Cache          CacheConfig
	Digest         DigestConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds bearer token configuration
type JWTConfig struct {
	Secret          string
	AccessTokenMins int
}

// CacheConfig holds claim read cache configuration. Size 0 disables the cache.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DigestConfig holds the claims digest schedule. An empty spec disables it.
type DigestConfig struct {
	Spec string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	storeDriver := strings.ToLower(strings.TrimSpace(getEnv("STORE_DRIVER", StoreMemory)))
	if storeDriver != StoreMySQL && storeDriver != StoreMemory {
		return nil, fmt.Errorf("invalid STORE_DRIVER: '%s' (must be '%s' or '%s')", storeDriver, StoreMySQL, StoreMemory)
	}

	cache, err := loadCacheConfig()
	if err != nil {
		return nil, err
	}

	seed, err := strconv.ParseBool(getEnv("SEED_SAMPLE_DATA", strconv.FormatBool(appMode == "dev")))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_SAMPLE_DATA: %w", err)
	}

	config := &Config{
		AppMode:        appMode,
		Port:           getEnv("PORT", "3000"),
		StoreDriver:    storeDriver,
		SeedSampleData: seed,
		Database:       loadDatabaseConfig(appMode),
		JWT:            loadJWTConfig(appMode),
		Cache:          cache,
		Digest:         DigestConfig{Spec: strings.TrimSpace(os.Getenv("DIGEST_CRON"))},
	}

	if config.IsProd() && config.JWT.Secret == defaultJWTSecret {
		return nil, fmt.Errorf("PROD_JWT_SECRET must be set in prod mode")
	}

	log.Printf("✅ Configuration loaded successfully [MODE: %s, STORE: %s]", appMode, storeDriver)
	return config, nil
}

func modePrefix(mode string) string {
	if mode == "prod" {
		return "PROD_"
	}
	return "DEV_"
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := modePrefix(mode)

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "healthclaim"),
	}
}

const defaultJWTSecret = "default_secret"

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) JWTConfig {
	accessMins, err := strconv.Atoi(getEnv("ACCESS_TOKEN_MINUTES", "60"))
	if err != nil || accessMins <= 0 {
		accessMins = 60
	}

	return JWTConfig{
		Secret:          getEnv(modePrefix(mode)+"JWT_SECRET", defaultJWTSecret),
		AccessTokenMins: accessMins,
	}
}

// loadCacheConfig loads the claim cache settings
func loadCacheConfig() (CacheConfig, error) {
	size, err := strconv.Atoi(getEnv("CLAIM_CACHE_SIZE", "512"))
	if err != nil || size < 0 {
		return CacheConfig{}, fmt.Errorf("invalid CLAIM_CACHE_SIZE: '%s'", os.Getenv("CLAIM_CACHE_SIZE"))
	}
	ttl, err := strconv.Atoi(getEnv("CLAIM_CACHE_TTL_SECONDS", "60"))
	if err != nil || ttl <= 0 {
		return CacheConfig{}, fmt.Errorf("invalid CLAIM_CACHE_TTL_SECONDS: '%s'", os.Getenv("CLAIM_CACHE_TTL_SECONDS"))
	}
	return CacheConfig{Size: size, TTL: time.Duration(ttl) * time.Second}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// UsesDatabase reports whether claims are stored in MySQL
func (c *Config) UsesDatabase() bool {
	return c.StoreDriver == StoreMySQL
}

// AccessTokenTTL returns the bearer token lifetime
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.JWT.AccessTokenMins) * time.Minute
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "http://localhost:5173"
	}
	return origins
}
