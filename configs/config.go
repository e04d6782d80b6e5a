package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// first staff account, seeded once
	StaffEmail    string
	StaffPassword string

	// optional integrations
	AMQPURL        string
	HealthProbeURL string
	HealthInterval time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		DBSource:       getEnv("DB_SOURCE", "pizzapalace.db"),
		Port:           getEnv("PORT", "8000"),
		JWTSecret:      getEnv("JWT_SECRET", "changeme"),
		JWTTTL:         time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		StaffEmail:     getEnv("STAFF_EMAIL", ""),
		StaffPassword:  getEnv("STAFF_PASSWORD", ""),
		AMQPURL:        getEnv("AMQP_URL", ""),
		HealthProbeURL: getEnv("HEALTH_PROBE_URL", ""),
		HealthInterval: time.Duration(getEnvInt("HEALTH_INTERVAL_SECONDS", 30)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
