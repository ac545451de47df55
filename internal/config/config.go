package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ProjectID        string
	Port             string
	LogLevel         string
	APIKey           string
	APIKeySecretName string
	SignInEndpoint   string
}

const defaultSignInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

func New() *Config {
	// Local development only; the file is absent on Cloud Run.
	_ = godotenv.Load()

	return &Config{
		ProjectID:        os.Getenv("PROJECTID"),
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOGLEVEL", "info"),
		APIKey:           os.Getenv("APIKEY"),
		APIKeySecretName: os.Getenv("APIKEYSECRETNAME"),
		SignInEndpoint:   getEnv("SIGNINENDPOINT", defaultSignInEndpoint),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
