package family

import (
	"context"
	"fmt"

	"sponsor_backend/internal/model"
	"sponsor_backend/internal/repository"
	"sponsor_backend/internal/service"
)

type serv struct {
	familyRepo repository.FamilyMemberRepository
}

func NewService(familyRepo repository.FamilyMemberRepository) service.FamilyService {
	return &serv{
		familyRepo: familyRepo,
	}
}

// Create - создает члена семьи для спонсора.
// Запись разрешена владельцу указанного sponsor_id или администратору
func (s *serv) Create(ctx context.Context, claims *model.SessionClaims, member *model.FamilyMember) (int, error) {
	if member.SponsorID <= 0 {
		return 0, fmt.Errorf("%w: sponsor_id is required", model.ErrInvalidInput)
	}
	if len(member.Name) == 0 {
		return 0, fmt.Errorf("%w: name is required", model.ErrInvalidInput)
	}

	if claims.SponsorID != member.SponsorID && !claims.IsAdmin {
		return 0, fmt.Errorf("%w: sponsor id mismatch", model.ErrForbidden)
	}

	return s.familyRepo.CreateFamilyMember(ctx, member)
}
