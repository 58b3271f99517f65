package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	APIPort string

	JWTKey     []byte
	TokenExp   time.Duration
	BcryptCost int

	MongoURL string
	DBName   string
}

// Load reads the environment (optionally seeded from a .env file) and
// returns the process configuration. Every value has an insecure
// development default; production deployments must override at least
// JWT_SECRET and MONGO_URL.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return &Config{
		APIPort:    getEnv("API_PORT", "8080"),
		JWTKey:     []byte(getEnv("JWT_SECRET", "badgecv-secret-key-change-in-production")),
		TokenExp:   time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		BcryptCost: getEnvAsInt("BCRYPT_COST", bcrypt.DefaultCost),
		MongoURL:   getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:     getEnv("DB_NAME", "badgecv"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
