package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig holds process-wide settings read from the environment.
type AppConfig struct {
	Port               string
	Env                string
	JWTSecret          string
	JWTExpiry          time.Duration
	CORSOrigins        []string
	ItemsPerPage       int
	CatalogCacheTTL    time.Duration
	CatalogUpstreamURL string
	CloudinaryName     string
	CloudinaryKey      string
	CloudinarySecret   string
}

var App = Load()

// Load reads AppConfig from the environment, falling back to development defaults.
func Load() AppConfig {
	return AppConfig{
		Port:               getEnv("PORT", "5000"),
		Env:                getEnv("APP_ENV", "development"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTExpiry:          getDuration("JWT_EXPIRY", 24*time.Hour),
		CORSOrigins:        splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001")),
		ItemsPerPage:       getInt("ITEMS_PER_PAGE", 9),
		CatalogCacheTTL:    getDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		CatalogUpstreamURL: os.Getenv("CATALOG_UPSTREAM_URL"),
		CloudinaryName:     os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryKey:      os.Getenv("CLOUDINARY_API_KEY"),
		CloudinarySecret:   os.Getenv("CLOUDINARY_API_SECRET"),
	}
}

// IsProduction reports whether APP_ENV is "production".
func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n < 1 {
		return defaultValue
	}
	return n
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
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
