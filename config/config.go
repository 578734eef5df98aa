package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBPath         string
	BackgroundsDir string
	PhotosDir      string
	LegacyConfig   string

	// Customer number generation: "formatted" (PREFIX-YYYYMMDD-XXXX) or
	// "sequential". One strategy per deployment, never mixed.
	NumberMode   string
	NumberPrefix string

	JWTSecret string
	JWTTTL    time.Duration

	OperatorUser     string
	OperatorPassword string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		Port:             getEnv("PORT", "3001"),
		DBPath:           getEnv("DB_PATH", "kiosk.db"),
		BackgroundsDir:   getEnv("BACKGROUNDS_DIR", "backgrounds"),
		PhotosDir:        getEnv("PHOTOS_DIR", "photos"),
		LegacyConfig:     getEnv("LEGACY_CONFIG", "settings.conf"),
		NumberMode:       getEnv("ORDER_NUMBER_MODE", "formatted"),
		NumberPrefix:     getEnv("ORDER_NUMBER_PREFIX", "GS"),
		JWTSecret:        getEnv("JWT_SECRET", "changeme"),
		JWTTTL:           24 * time.Hour,
		OperatorUser:     getEnv("OPERATOR_USER", "operator"),
		OperatorPassword: getEnv("OPERATOR_PASSWORD", "greenscreen"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
