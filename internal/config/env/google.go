package env

import (
	"errors"
	"os"

	"sponsor_backend/internal/config"
)

const (
	googleClientIDEnvName = "GOOGLE_CLIENT_ID"
)

type googleConfig struct {
	clientID string
}

func NewGoogleConfig() (config.GoogleConfig, error) {
	clientID := os.Getenv(googleClientIDEnvName)
	if len(clientID) == 0 {
		return nil, errors.New("google client id not found")
	}

	return &googleConfig{
		clientID: clientID,
	}, nil
}

func (cfg *googleConfig) ClientID() string {
	return cfg.clientID
}
