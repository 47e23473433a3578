package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	JWTSecret     string
	TokenTTLHours int
	ServerPort    string
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "educa"),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		TokenTTLHours: getEnvInt("TOKEN_TTL_HOURS", 72),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		AdminName:     getEnv("ADMIN_NAME", "Platform Admin"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@educa.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}, nil
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
