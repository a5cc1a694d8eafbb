package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	Port        string
	DatabaseURL string

	JWTSecret string
	JWTExpiry time.Duration

	ImageUploadURL string
	ImageAPIKey    string

	CORSOrigin  string
	MaxBodySize int64
}

// Load reads the environment (after a best-effort .env load). JWT_SECRET is
// the only hard requirement; the process refuses to start without it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:            os.Getenv("APP_ENV"),
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		ImageUploadURL: getEnv("IMG_UPLOAD_URL", "https://api.imgbb.com/1/upload"),
		ImageAPIKey:    os.Getenv("IMG_API_KEY"),
		CORSOrigin:     getEnv("CORS_ORIGIN", "*"),
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = dsnFromParts()
	}

	cfg.JWTExpiry = 24 * time.Hour
	if raw := os.Getenv("JWT_EXPIRES_IN"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, errors.New("JWT_EXPIRES_IN must be a duration like 24h")
		}
		cfg.JWTExpiry = d
	}

	cfg.MaxBodySize = 10 << 20
	if raw := os.Getenv("MAX_FILE_SIZE"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return nil, errors.New("MAX_FILE_SIZE must be a positive byte count")
		}
		cfg.MaxBodySize = n
	}

	return cfg, nil
}

func dsnFromParts() string {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	pass := getEnv("DB_PASSWORD", "postgres")
	name := getEnv("DB_NAME", "sayadalsamak")
	ssl := getEnv("DB_SSLMODE", "disable")
	return "host=" + host + " user=" + user + " password=" + pass + " dbname=" + name + " port=" + port + " sslmode=" + ssl
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
