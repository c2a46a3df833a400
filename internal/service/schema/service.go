package schema

import (
	"context"

	"sponsor_backend/internal/repository"
	"sponsor_backend/internal/service"
)

type serv struct {
	schemaRepo repository.SchemaRepository
}

func NewService(schemaRepo repository.SchemaRepository) service.SchemaService {
	return &serv{
		schemaRepo: schemaRepo,
	}
}

func (s *serv) EnsureDatabase(ctx context.Context) error {
	return s.schemaRepo.EnsureDatabase(ctx)
}

func (s *serv) CreateSponsorsTable(ctx context.Context) error {
	return s.schemaRepo.CreateSponsorsTable(ctx)
}

func (s *serv) CreateFamilyMembersTable(ctx context.Context) error {
	return s.schemaRepo.CreateFamilyMembersTable(ctx)
}
