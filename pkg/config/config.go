package config

import "os"

type Config struct {
	Port        string
	Env         string
	PostgresURL string
	BaseURL     string
	SMTPAddr    string
	SMTPFrom    string
	NatsURL     string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		PostgresURL: getEnv("POSTGRES_CONN_STR", ""),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		SMTPAddr:    getEnv("SMTP_ADDR", ""),
		SMTPFrom:    getEnv("SMTP_FROM", "do_not_reply@example.com"),
		NatsURL:     getEnv("NATS_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
