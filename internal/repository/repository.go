package repository

import (
	"context"

	"sponsor_backend/internal/model"
)

type SponsorRepository interface {
	CreateSponsor(ctx context.Context, sponsor *model.Sponsor) (id int, err error)
	UpsertByGoogleID(ctx context.Context, sponsor *model.Sponsor) error
	GetIDByGoogleID(ctx context.Context, googleID string) (int, error)
}

type FamilyMemberRepository interface {
	CreateFamilyMember(ctx context.Context, member *model.FamilyMember) (id int, err error)
}

type ReportRepository interface {
	SponsorReports(ctx context.Context) ([]model.SponsorReport, error)
	FamilyMemberReports(ctx context.Context) ([]model.FamilyMemberReport, error)
	Search(ctx context.Context, query string, limit uint64) ([]model.SearchResult, error)
}

type SchemaRepository interface {
	EnsureDatabase(ctx context.Context) error
	CreateSponsorsTable(ctx context.Context) error
	CreateFamilyMembersTable(ctx context.Context) error
}
