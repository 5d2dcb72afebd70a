package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Admin      AdminConfig
	CORS       CORSConfig
	S3         S3Config
	Cloudinary CloudinaryConfig
	Upload     UploadConfig
	Redis      RedisConfig
	Checkout   CheckoutConfig
	Scheduler  SchedulerConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

// DatabaseConfig describes the remote menu store. When neither URL nor Host is
// set the store is considered unconfigured and reads use the fallback menu.
type DatabaseConfig struct {
	URL         string
	Host        string
	Port        string
	User        string
	Password    string
	DBName      string
	SSLMode     string
	SeedOnEmpty bool
}

type AdminConfig struct {
	Username      string
	Password      string
	SessionSecret string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// S3Config points at an S3-compatible bucket (Cloudflare R2 in production).
type S3Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	PublicURL       string
}

type CloudinaryConfig struct {
	URL    string
	Folder string
}

type UploadConfig struct {
	DefaultBackend string
	MaxFileSize    int64
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type CheckoutConfig struct {
	WhatsAppPhone string
	Currency      string
}

type SchedulerConfig struct {
	StoreProbeSpec string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			URL:         getEnv("DATABASE_URL", ""),
			Host:        getEnv("DB_HOST", ""),
			Port:        getEnv("DB_PORT", "5432"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", ""),
			DBName:      getEnv("DB_NAME", "creme"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			SeedOnEmpty: parseBool(getEnv("DB_SEED_ON_EMPTY", "false")),
		},
		Admin: AdminConfig{
			Username:      getEnv("ADMIN_USERNAME", "admin"),
			Password:      getEnv("ADMIN_PASSWORD", "392766"),
			SessionSecret: getEnv("ADMIN_SESSION_SECRET", "change-me-admin-session-secret"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		},
		S3: S3Config{
			Endpoint:        getEnv("R2_ENDPOINT", ""),
			Region:          getEnv("R2_REGION", "auto"),
			Bucket:          getEnv("R2_BUCKET_NAME", ""),
			AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
			PublicURL:       getEnv("R2_PUBLIC_URL", ""),
		},
		Cloudinary: CloudinaryConfig{
			URL:    getEnv("CLOUDINARY_URL", ""),
			Folder: getEnv("CLOUDINARY_FOLDER", "images"),
		},
		Upload: UploadConfig{
			DefaultBackend: getEnv("UPLOAD_DEFAULT_BACKEND", "images"),
			MaxFileSize:    parseInt64(getEnv("UPLOAD_MAX_FILE_SIZE", "10485760"), 10<<20),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       int(parseInt64(getEnv("REDIS_DB", "0"), 0)),
		},
		Checkout: CheckoutConfig{
			WhatsAppPhone: getEnv("WHATSAPP_PHONE", "60123456789"),
			Currency:      getEnv("CHECKOUT_CURRENCY", "RM"),
		},
		Scheduler: SchedulerConfig{
			StoreProbeSpec: getEnv("STORE_PROBE_SCHEDULE", "@every 1m"),
		},
	}

	return config, nil
}

// Configured reports whether a remote store has been configured at all.
func (c *DatabaseConfig) Configured() bool {
	return c.URL != "" || c.Host != ""
}

// DSN returns a key=value connection string. DATABASE_URL wins over the
// discrete fields and is converted with lib/pq's URL parser.
func (c *DatabaseConfig) DSN() (string, error) {
	if c.URL != "" {
		if !strings.HasPrefix(c.URL, "postgres://") && !strings.HasPrefix(c.URL, "postgresql://") {
			return c.URL, nil
		}
		dsn, err := pq.ParseURL(c.URL)
		if err != nil {
			return "", fmt.Errorf("invalid DATABASE_URL: %w", err)
		}
		return dsn, nil
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	), nil
}

func (c *RedisConfig) Configured() bool {
	return c.Host != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		log.Printf("Invalid boolean %s, using false", s)
		return false
	}
	return b
}

func parseInt64(s string, fallback int64) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		log.Printf("Invalid integer %s, using default %d", s, fallback)
		return fallback
	}
	return n
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
