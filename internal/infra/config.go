package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv string
	Port   string

	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	// StorageDriver selects the blob backend: vercel, s3 or filesystem.
	StorageDriver    string
	BlobToken        string
	BlobBaseURL      string
	SourceHostSuffix string

	S3AccessKey     string
	S3SecretKey     string
	S3Bucket        string
	S3Endpoint      string
	S3Region        string
	S3PublicBaseURL string

	StoragePath    string
	StorageBaseURL string

	GenerateMaxAttempts int
	GenerateBaseDelay   time.Duration
	GenerateRatePerMin  int
	HTTPReadTimeout     time.Duration
	HTTPWriteTimeout    time.Duration
	HTTPIdleTimeout     time.Duration
	RateLimitPerMin     int
	DefaultLocale       string
	AllowedOrigins      []string
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. The Gemini key is the only hard requirement; the
// filesystem storage driver keeps local development token-free.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8080"),

		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-3-pro-image-preview"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),

		StorageDriver:    getEnv("STORAGE_DRIVER", "vercel"),
		BlobToken:        os.Getenv("BLOB_READ_WRITE_TOKEN"),
		BlobBaseURL:      getEnv("BLOB_BASE_URL", "https://blob.vercel-storage.com"),
		SourceHostSuffix: getEnv("SOURCE_HOST_SUFFIX", "public.blob.vercel-storage.com"),

		S3AccessKey:     os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:     os.Getenv("S3_SECRET_KEY"),
		S3Bucket:        os.Getenv("S3_BUCKET"),
		S3Endpoint:      os.Getenv("S3_ENDPOINT"),
		S3Region:        getEnv("S3_REGION", "auto"),
		S3PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),

		StoragePath:    getEnv("STORAGE_PATH", "./data/blobs"),
		StorageBaseURL: getEnv("STORAGE_BASE_URL", "http://localhost:8080/static"),

		GenerateMaxAttempts: getEnvInt("GENERATE_MAX_ATTEMPTS", 3),
		GenerateBaseDelay:   time.Millisecond * time.Duration(getEnvInt("GENERATE_BASE_DELAY_MS", 250)),
		GenerateRatePerMin:  getEnvInt("GENERATE_RATE_PER_MINUTE", 10),
		HTTPReadTimeout:     time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 30)),
		HTTPWriteTimeout:    time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 180)),
		HTTPIdleTimeout:     time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:     getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		DefaultLocale:       getEnv("DEFAULT_LOCALE", "ja"),
		AllowedOrigins:      splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	switch cfg.StorageDriver {
	case "vercel":
		if cfg.BlobToken == "" {
			return nil, fmt.Errorf("BLOB_READ_WRITE_TOKEN is required for the vercel storage driver")
		}
	case "s3":
		if cfg.S3AccessKey == "" || cfg.S3SecretKey == "" || cfg.S3Bucket == "" || cfg.S3Endpoint == "" {
			return nil, fmt.Errorf("S3_ACCESS_KEY, S3_SECRET_KEY, S3_BUCKET and S3_ENDPOINT are required for the s3 storage driver")
		}
	case "filesystem":
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	// Production must never fall back to development-grade behavior.
	if cfg.AppEnv == "production" && cfg.StorageDriver == "filesystem" {
		return nil, fmt.Errorf("the filesystem storage driver is not allowed in production")
	}

	return cfg, nil
}

// Production reports whether debug detail must be withheld from responses.
func (c *Config) Production() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitCSV(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
