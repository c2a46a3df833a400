package env

import (
	"fmt"
	"os"
	"time"

	"sponsor_backend/internal/config"
)

const (
	sessionTokenKeyEnvName      = "SESSION_TOKEN_SECRET"
	sessionTokenDurationEnvName = "SESSION_TOKEN_DURATION"

	defaultSessionTokenDuration = time.Hour
)

type jwtConfig struct {
	sessionTokenSecretKey string
	sessionTokenDuration  time.Duration
}

func NewJWTConfig() (config.JWTConfig, error) {
	secretKey := os.Getenv(sessionTokenKeyEnvName)
	if len(secretKey) == 0 {
		return nil, fmt.Errorf("session token secret key not found")
	}

	sessionTokenDuration := defaultSessionTokenDuration
	if raw := os.Getenv(sessionTokenDurationEnvName); len(raw) > 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid session token duration: %w", err)
		}
		sessionTokenDuration = parsed
	}

	return &jwtConfig{
		sessionTokenSecretKey: secretKey,
		sessionTokenDuration:  sessionTokenDuration,
	}, nil
}

func (j *jwtConfig) SessionTokenSecretKey() []byte {
	return []byte(j.sessionTokenSecretKey)
}

func (j *jwtConfig) SessionTokenDuration() time.Duration {
	return j.sessionTokenDuration
}
