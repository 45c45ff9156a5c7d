package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment. It is
// loaded once in main and passed down explicitly.
type Config struct {
	Environment       string
	Port              string
	MongoURI          string
	MongoDB           string
	JWTSecret         string
	UploadDir         string
	LogLevel          string
	ReconcileInterval time.Duration
}

// Load reads .env if present, then the environment. MONGO_URI wins when set;
// otherwise the URI is assembled from the discrete MONGO_* parts.
func Load() (Config, error) {
	godotenv.Load()

	cfg := Config{
		Environment: os.Getenv("ENVIRONMENT"),
		Port:        getenv("PORT", "5000"),
		MongoDB:     getenv("MONGO_DB", "personal_management"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		UploadDir:   getenv("UPLOAD_DIR", "uploads"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
	}

	cfg.MongoURI = os.Getenv("MONGO_URI")
	if cfg.MongoURI == "" {
		cfg.MongoURI = mongoURIFromParts(
			os.Getenv("MONGO_USER"),
			os.Getenv("MONGO_PASSWORD"),
			getenv("MONGO_HOST", "localhost"),
			getenv("MONGO_PORT", "27017"),
			cfg.MongoDB,
		)
	}

	interval := getenv("RECONCILE_INTERVAL", "10m")
	d, err := time.ParseDuration(interval)
	if err != nil {
		return Config{}, fmt.Errorf("invalid RECONCILE_INTERVAL %q: %w", interval, err)
	}
	cfg.ReconcileInterval = d

	return cfg, nil
}

func mongoURIFromParts(user, password, host, port, db string) string {
	if user != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s",
			url.QueryEscape(user), url.QueryEscape(password), host, port, db)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s", host, port, db)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
