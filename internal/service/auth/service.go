package auth

import (
	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"sponsor_backend/internal/config"
	"sponsor_backend/internal/repository"
	"sponsor_backend/internal/service"
)

type serv struct {
	txManager   trm.Manager
	sponsorRepo repository.SponsorRepository
	verifier    service.GoogleVerifier
	jwtConfig   config.JWTConfig
	adminEmails []string
}

func NewService(
	txManager trm.Manager,
	sponsorRepo repository.SponsorRepository,
	verifier service.GoogleVerifier,
	jwtConfig config.JWTConfig,
	adminEmails []string,
) service.AuthService {
	return &serv{
		txManager:   txManager,
		sponsorRepo: sponsorRepo,
		verifier:    verifier,
		jwtConfig:   jwtConfig,
		adminEmails: adminEmails,
	}
}

// isAdmin - строгое сравнение email со списком администраторов
func (s *serv) isAdmin(email string) bool {
	for _, adminEmail := range s.adminEmails {
		if email == adminEmail {
			return true
		}
	}
	return false
}
