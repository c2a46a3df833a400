package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
	MaxConns() int32
}

type JWTConfig interface {
	SessionTokenSecretKey() []byte
	SessionTokenDuration() time.Duration
}

type GoogleConfig interface {
	ClientID() string
}

type AppConfig interface {
	Env() string
	IsProduction() bool
	AdminEmails() []string
	AllowedOrigin() string
}
