package env

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"sponsor_backend/internal/config"
)

const (
	dsnEnvName      = "PG_DSN"
	maxConnsEnvName = "PG_MAX_CONNS"

	defaultMaxConns = 10
)

type pgConfig struct {
	dsn      string
	maxConns int32
}

func NewPGConfig() (config.PGConfig, error) {
	dsn := os.Getenv(dsnEnvName)
	if len(dsn) == 0 {
		return nil, errors.New("pg dsn not found")
	}

	maxConns := int32(defaultMaxConns)
	if raw := os.Getenv(maxConnsEnvName); len(raw) > 0 {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid pg max conns: %q", raw)
		}
		maxConns = int32(parsed)
	}

	return &pgConfig{
		dsn:      dsn,
		maxConns: maxConns,
	}, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}

func (cfg *pgConfig) MaxConns() int32 {
	return cfg.maxConns
}
