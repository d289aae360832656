// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		User     string `json:"user"`
		Password string `json:"password"`
		Name     string `json:"name"`
		SSLMode  string `json:"sslmode"`
	} `json:"database"`
	Mongo struct {
		URI      string `json:"uri"`
		Database string `json:"database"`
	} `json:"mongo"`
	JWT struct {
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"jwt"`
	Server struct {
		Port         string        `json:"port"`
		ReadTimeout  time.Duration `json:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout"`
	}
	Razorpay struct {
		KeyID     string `json:"key_id"`
		KeySecret string `json:"key_secret"`
	} `json:"razorpay"`
	Cloudinary struct {
		URL string `json:"url"`
	} `json:"cloudinary"`
	Sendgrid struct {
		APIKey string `json:"api_key"`
		From   string `json:"from"`
	} `json:"sendgrid"`
	SMTP map[string]SMTPConfig `json:"smtp"`
	Twilio struct {
		AccountSID string `json:"account_sid"`
		AuthToken  string `json:"auth_token"`
		From       string `json:"from"`
	} `json:"twilio"`
	BaseURL string `json:"base_url"`
}

// SMTPConfig holds one SMTP provider entry, keyed by provider name.
type SMTPConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	From     string `json:"from"`
}

func Load() *Config {
	// Best effort: local dev keeps secrets in a .env file
	_ = godotenv.Load()

	cfg := &Config{}

	// Database configuration
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "createbharat")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")

	// MongoDB holds resume blobs in GridFS
	cfg.Mongo.URI = getEnv("MONGO_URI", "mongodb://localhost:27017")
	cfg.Mongo.Database = getEnv("MONGO_DB", "createbharat")

	// JWT configuration
	cfg.JWT.Secret = getEnv("JWT_SECRET", "your-secret-key")
	cfg.JWT.ExpiryPeriod = getEnvDuration("JWT_EXPIRE", 7*24*time.Hour)

	// Payments
	cfg.Razorpay.KeyID = getEnv("RAZORPAY_KEY_ID", "")
	cfg.Razorpay.KeySecret = getEnv("RAZORPAY_KEY_SECRET", "")

	// Media storage
	cfg.Cloudinary.URL = getEnv("CLOUDINARY_URL", "")

	// Email providers
	cfg.Sendgrid.APIKey = getEnv("SENDGRID_API_KEY", "")
	cfg.Sendgrid.From = getEnv("SENDGRID_FROM", "")
	cfg.SMTP = map[string]SMTPConfig{}
	if host := getEnv("SMTP_HOST", ""); host != "" {
		cfg.SMTP["smtp"] = SMTPConfig{
			Host:     host,
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
		}
	}

	// SMS gateway
	cfg.Twilio.AccountSID = getEnv("TWILIO_ACCOUNT_SID", "")
	cfg.Twilio.AuthToken = getEnv("TWILIO_AUTH_TOKEN", "")
	cfg.Twilio.From = getEnv("TWILIO_FROM", "")

	// Server configuration
	cfg.Server.Port = getEnv("PORT", "8080")
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 30

	cfg.BaseURL = getEnv("BASE_URL", "http://localhost:8080")

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
