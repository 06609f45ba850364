package config

import "os"

type Config struct {
	Port          string
	GinMode       string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
	LogLevel      string
	CORSOrigins   []string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		DatabaseURL:   getEnv("DATABASE_URL", "host=localhost port=5432 user=postgres dbname=gamehub sslmode=disable"),
		RedisAddr:     getEnv("REDIS_URL", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     getEnv("JWT_SECRET", "change-me-in-production"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   []string{getEnv("CORS_ORIGIN", "http://localhost:3000")},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
