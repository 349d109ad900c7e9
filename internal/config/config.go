package config

import (
	"os"
)

// Config holds everything the API reads from the environment.
type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Upload   UploadConfig
}

type ServerConfig struct {
	AppEnv string
	Port   string
}

type PostgresConfig struct {
	URL string
}

type UploadConfig struct {
	Dir string
}

// Load reads the config from environment variables, applying defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv: getEnv("APP_ENV", "dev"),
			Port:   getEnv("APP_PORT", "8080"),
		},
		Postgres: PostgresConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Upload: UploadConfig{
			Dir: getEnv("UPLOAD_DIR", "uploads"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
