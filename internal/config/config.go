package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration, loaded from environment
// variables with an optional .env file on top.
type Config struct {
	ServerAddr   string `envconfig:"SERVER_ADDR" default:":8080"`
	DBPath       string `envconfig:"DB_PATH" default:"./adboard.db"`
	OTLPEndpoint string `envconfig:"OTLP_ENDPOINT" default:"localhost:4317"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"debug"`
	BcryptCost   int    `envconfig:"BCRYPT_COST" default:"0"`
}

// Load reads the configuration. A missing .env file is not an error.
func Load(envFilePath string) (*Config, error) {
	if _, err := os.Stat(envFilePath); err == nil {
		if err := godotenv.Load(envFilePath); err != nil {
			log.Printf("Warning: could not load %s: %v", envFilePath, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}
