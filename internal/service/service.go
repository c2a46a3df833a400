package service

import (
	"context"

	"sponsor_backend/internal/model"
)

type AuthService interface {
	Login(ctx context.Context, googleToken string) (*model.AuthData, error)
}

type SponsorService interface {
	Create(ctx context.Context, sponsor *model.Sponsor) (id int, err error)
}

type FamilyService interface {
	Create(ctx context.Context, claims *model.SessionClaims, member *model.FamilyMember) (id int, err error)
}

type ReportService interface {
	Sponsors(ctx context.Context) ([]model.SponsorReport, error)
	FamilyMembers(ctx context.Context) ([]model.FamilyMemberReport, error)
	Search(ctx context.Context, query string) ([]model.SearchResult, error)
}

type SchemaService interface {
	EnsureDatabase(ctx context.Context) error
	CreateSponsorsTable(ctx context.Context) error
	CreateFamilyMembersTable(ctx context.Context) error
}

// GoogleVerifier - проверка внешнего Google ID токена
type GoogleVerifier interface {
	Verify(ctx context.Context, token string) (*model.GoogleProfile, error)
}
