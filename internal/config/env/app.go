package env

import (
	"os"
	"strings"

	"sponsor_backend/internal/config"
)

const (
	appEnvName           = "APP_ENV"
	adminEmailsEnvName   = "ADMIN_EMAILS"
	allowedOriginEnvName = "ALLOWED_ORIGIN"

	envProduction  = "production"
	envDevelopment = "development"

	defaultAllowedOrigin = "*"
)

type appConfig struct {
	env           string
	adminEmails   []string
	allowedOrigin string
}

func NewAppConfig() (config.AppConfig, error) {
	appEnv := os.Getenv(appEnvName)
	if len(appEnv) == 0 {
		appEnv = envDevelopment
	}

	// Список email администраторов через запятую, сравнение строгое
	var adminEmails []string
	for _, email := range strings.Split(os.Getenv(adminEmailsEnvName), ",") {
		email = strings.TrimSpace(email)
		if len(email) > 0 {
			adminEmails = append(adminEmails, email)
		}
	}

	allowedOrigin := os.Getenv(allowedOriginEnvName)
	if len(allowedOrigin) == 0 {
		allowedOrigin = defaultAllowedOrigin
	}

	return &appConfig{
		env:           appEnv,
		adminEmails:   adminEmails,
		allowedOrigin: allowedOrigin,
	}, nil
}

func (cfg *appConfig) Env() string {
	return cfg.env
}

func (cfg *appConfig) IsProduction() bool {
	return cfg.env == envProduction
}

func (cfg *appConfig) AdminEmails() []string {
	return cfg.adminEmails
}

func (cfg *appConfig) AllowedOrigin() string {
	return cfg.allowedOrigin
}
