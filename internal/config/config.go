package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. It is built once at
// startup and injected into services; business logic never reads the
// environment directly.
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Storage  StorageConfig
	Demand   DemandConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret        string
	ExpiryMinutes int
}

// CookieConfig holds cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// StorageConfig holds file storage configuration
type StorageConfig struct {
	UploadDir     string
	MaxFileSize   int64
	PublicBaseURL string
}

// DemandConfig holds the contact-demand relay configuration
type DemandConfig struct {
	Endpoint string
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

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3001"),
		Database: loadDatabaseConfig(appMode),
		JWT:      loadJWTConfig(appMode),
		Cookie:   loadCookieConfig(appMode),
		Storage:  loadStorageConfig(),
		Demand:   DemandConfig{Endpoint: getEnv("DEMAND_ENDPOINT", "")},
	}

	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "capuchinhos_docs"),
	}
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	// Short-lived tokens: expiry forces re-login, there is no refresh flow
	expiry, _ := strconv.Atoi(getEnv("JWT_EXPIRES_MINUTES", "3"))

	return JWTConfig{
		Secret:        getEnv(prefix+"JWT_SECRET", "secret_key"),
		ExpiryMinutes: expiry,
	}
}

// loadCookieConfig loads cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	secure, _ := strconv.ParseBool(getEnv(prefix+"COOKIE_SECURE", "false"))

	return CookieConfig{
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "lax"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

// loadStorageConfig loads file storage config
func loadStorageConfig() StorageConfig {
	uploadDir := getEnv("UPLOAD_DIR", "")
	if uploadDir == "" {
		wd, _ := os.Getwd()
		uploadDir = wd + string(os.PathSeparator) + "uploads"
	}

	maxSize, err := strconv.ParseInt(getEnv("MAX_FILE_SIZE", ""), 10, 64)
	if err != nil || maxSize <= 0 {
		maxSize = 10 * 1024 * 1024 // 10 MiB
	}

	baseURL := getEnv("PUBLIC_BASE_URL", "")
	if baseURL == "" {
		baseURL = "http://localhost:" + getEnv("PORT", "3001")
	}

	return StorageConfig{
		UploadDir:     uploadDir,
		MaxFileSize:   maxSize,
		PublicBaseURL: strings.TrimRight(baseURL, "/"),
	}
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

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://capuchinhosmaraba.org"
	}
	return origins
}
