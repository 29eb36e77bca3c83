package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort           string
	MongoURI             string
	MongoDatabase        string
	PropertiesCollection string
	Environment          string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		MongoURI:             getEnv("MONGODB_URI", ""),
		MongoDatabase:        getEnv("MONGODB_DB_NAME", "ghargpt"),
		PropertiesCollection: getEnv("MONGODB_COLLECTION_PROPERTIES", "properties"),
		Environment:          getEnv("ENVIRONMENT", "development"),
	}

	if config.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is not set")
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
