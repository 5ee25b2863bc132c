package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	JWTSecret   string
	MongoURI    string
	DBName      string
	SkipAuth    bool
	Environment string
	FSPath      string // Physical directory for uploaded import files

	// DefaultProvider is assigned to imported stock records that name no
	// provider, or one the catalogue does not know.
	DefaultProvider string

	// StagedPriceTTLDays bounds how long staged prices and uploaded import
	// files survive before the cleanup job removes them.
	StagedPriceTTLDays int
	CleanupSchedule    string

	// TransformScript is an optional tengo script applied to every
	// full-import row before validation. Empty disables the hook.
	TransformScript string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		JWTSecret:          getEnv("JWT_SECRET", "secret"),
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:             getEnv("DB_NAME", "go-catalogue"),
		SkipAuth:           getEnv("SKIP_AUTH", "false") == "true",
		Environment:        getEnv("ENVIRONMENT", "development"),
		FSPath:             getEnv("FS_PATH", "./uploads"),
		DefaultProvider:    getEnv("DEFAULT_PROVIDER", "Mediaset"),
		StagedPriceTTLDays: getEnvInt("STAGED_PRICE_TTL_DAYS", 7),
		CleanupSchedule:    getEnv("CLEANUP_SCHEDULE", "0 3 * * *"),
		TransformScript:    getEnv("TRANSFORM_SCRIPT", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
