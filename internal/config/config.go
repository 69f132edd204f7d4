package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	SiteURL        string
	TrustedProxies []string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbParams   string

	AuthBaseURL   string
	AuthJWTSecret string

	PaymentBaseURL string
	PaymentAPIKey  string

	ActivationPollAttempts int
	ActivationPollInterval time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		SiteURL:        getEnv("SITE_URL", "http://localhost:3000"),
		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),

		DbHost:     getEnv("MYSQL_HOST", "db"),
		DbPort:     getEnv("MYSQL_PORT", "3306"),
		DbUser:     getEnv("MYSQL_USER", "taskflow"),
		DbPassword: getEnv("MYSQL_PASSWORD", "taskflow"),
		DbName:     getEnv("MYSQL_DATABASE", "taskflow"),
		DbParams:   getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),

		AuthBaseURL:   getEnv("AUTH_BASE_URL", "http://localhost:9999"),
		AuthJWTSecret: getEnv("AUTH_JWT_SECRET", ""),

		PaymentBaseURL: getEnv("PAYMENT_BASE_URL", "http://localhost:9998"),
		PaymentAPIKey:  getEnv("PAYMENT_API_KEY", ""),

		ActivationPollAttempts: getEnvInt("ACTIVATION_POLL_ATTEMPTS", 15),
		ActivationPollInterval: getEnvDuration("ACTIVATION_POLL_INTERVAL", 2*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
