package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort   string // Port the loopback server listens on
	DBPath    string // Path to the sqlite database file
	JWTSecret string // Secret for signing session tokens
	RedisAddr string // Redis server address (empty disables the cache)
	RedisPass string // Redis password
	RedisDB   int    // Redis database number
	IsProd    bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	cfg := &Config{
		AppPort:   os.Getenv("APP_PORT"),
		DBPath:    os.Getenv("DB_PATH"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisPass: os.Getenv("REDIS_PASS"),
		RedisDB:   redisDB,
		IsProd:    os.Getenv("IS_PROD") == "true",
	}
	// Defaults for a local app run with no environment at all
	if cfg.AppPort == "" {
		cfg.AppPort = "7700"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "todos.db"
	}
	return cfg
}
