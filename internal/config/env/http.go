package env

import (
	"net"
	"os"

	"sponsor_backend/internal/config"
)

const (
	hostEnvName = "HTTP_HOST"
	portEnvName = "HTTP_PORT"

	defaultPort = "8000"
)

type httpConfig struct {
	host string
	port string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	host := os.Getenv(hostEnvName)

	port := os.Getenv(portEnvName)
	if len(port) == 0 {
		port = defaultPort
	}

	return &httpConfig{
		host: host,
		port: port,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}
