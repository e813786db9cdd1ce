package utils

import (
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2/log"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// HTTP server
	AppPort            string `yaml:"APP_PORT"`
	TimeZone           string `yaml:"TIME_ZONE"`
	RateLimitPerSecond int    `yaml:"RATE_LIMIT_PER_SECOND"`

	// Session cookie
	JWTSecret       string `yaml:"JWT_SECRET"`
	SessionTTLHours int    `yaml:"SESSION_TTL_HOURS"`
	CookieSecure    bool   `yaml:"COOKIE_SECURE"`

	// Best day sequence: "day_of_month" or "calendar_date"
	DayMatch string `yaml:"DAY_MATCH"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		DBHost:             "localhost",
		DBPort:             "5432",
		AppPort:            "8080",
		TimeZone:           "UTC",
		RateLimitPerSecond: 10,
		SessionTTLHours:    168,
		DayMatch:           "day_of_month",
	}
}

func LoadConfig() {
	if err := LoadConfigFrom("config.yaml"); err != nil {
		log.Warnf("using default configuration: %v", err)
	}
}

// LoadConfigFrom replaces the active configuration with the defaults overlaid
// by the YAML file at path. On error the defaults stay active.
func LoadConfigFrom(path string) error {
	config = defaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	loaded := defaultConfig()
	if err := yaml.Unmarshal(file, &loaded); err != nil {
		return err
	}
	config = loaded

	os.Setenv("JWT_SECRET", config.JWTSecret)
	return nil
}

func getBoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "APP_PORT":
		return config.AppPort
	case "TIME_ZONE":
		return config.TimeZone
	case "RATE_LIMIT_PER_SECOND":
		return strconv.Itoa(config.RateLimitPerSecond)
	case "JWT_SECRET":
		return config.JWTSecret
	case "SESSION_TTL_HOURS":
		return strconv.Itoa(config.SessionTTLHours)
	case "COOKIE_SECURE":
		return getBoolString(config.CookieSecure)
	case "DAY_MATCH":
		return config.DayMatch
	default:
		return ""
	}
}

// GetConfigInt reads an integer key, returning fallback when the value is
// missing or not a positive number.
func GetConfigInt(key string, fallback int) int {
	n, err := strconv.Atoi(GetConfig(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
