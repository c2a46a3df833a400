package sponsor

import (
	"context"
	"fmt"

	"sponsor_backend/internal/model"
	"sponsor_backend/internal/repository"
	"sponsor_backend/internal/service"
)

type serv struct {
	sponsorRepo repository.SponsorRepository
}

func NewService(sponsorRepo repository.SponsorRepository) service.SponsorService {
	return &serv{
		sponsorRepo: sponsorRepo,
	}
}

// Create - создает спонсора вручную, без привязки к Google аккаунту.
// Уникальность email обеспечивает только ограничение в БД
func (s *serv) Create(ctx context.Context, sponsor *model.Sponsor) (int, error) {
	if len(sponsor.Name) == 0 {
		return 0, fmt.Errorf("%w: name is required", model.ErrInvalidInput)
	}
	if len(sponsor.Email) == 0 {
		return 0, fmt.Errorf("%w: email is required", model.ErrInvalidInput)
	}

	return s.sponsorRepo.CreateSponsor(ctx, sponsor)
}
