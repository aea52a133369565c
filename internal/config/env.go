package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultGeneratorModel = "gpt-4o"
	DefaultPort           = "8080"
	DefaultEndpoint       = "http://localhost:8080"
)

// loads server configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) (*Config, error) {
	apiBaseURL := strings.TrimRight(getenv("API_BASE_URL"), "/")
	frontendURL := getenv("FRONTEND_URL")
	model := getenv("GENERATOR_MODEL")
	port := getenv("PORT")
	environment := getenv("ENVIRONMENT")

	if apiBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL environment variable is required")
	}

	if frontendURL == "" {
		return nil, fmt.Errorf("FRONTEND_URL environment variable is required")
	}

	if model == "" {
		model = DefaultGeneratorModel
	}

	if port == "" {
		port = DefaultPort
	}

	if environment == "" {
		environment = "development"
	}

	return &Config{
		APIBaseURL:     apiBaseURL,
		FrontendURL:    frontendURL,
		GeneratorModel: model,
		Port:           port,
		Environment:    environment,
	}, nil
}
