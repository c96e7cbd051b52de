package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort   string
	AppEnv    string
	AppSecret string // signs session cookies and reset tokens
	BaseURL   string // used in reset-link e-mails

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	PictureDir string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		AppPort:   get("APP_PORT", "8080"),
		AppEnv:    get("APP_ENV", "dev"),
		AppSecret: get("APP_SECRET", "dev-secret"),
		BaseURL:   get("BASE_URL", "http://localhost:8080"),

		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASSWORD", "postgres"),
		DBName:     get("DB_NAME", "teachertrek"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),

		PictureDir: get("PICTURE_DIR", "static/profile_pics"),

		SMTPHost: get("SMTP_HOST", ""),
		SMTPPort: get("SMTP_PORT", "587"),
		SMTPUser: get("SMTP_USER", ""),
		SMTPPass: get("SMTP_PASS", ""),
		MailFrom: get("MAIL_FROM", "noreply@teachertrek.local"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
