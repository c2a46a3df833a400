package report

import (
	"context"
	"fmt"

	"sponsor_backend/internal/model"
	"sponsor_backend/internal/repository"
	"sponsor_backend/internal/service"
)

const (
	minQueryLen = 2
	searchLimit = 50
)

type serv struct {
	reportRepo repository.ReportRepository
}

func NewService(reportRepo repository.ReportRepository) service.ReportService {
	return &serv{
		reportRepo: reportRepo,
	}
}

func (s *serv) Sponsors(ctx context.Context) ([]model.SponsorReport, error) {
	return s.reportRepo.SponsorReports(ctx)
}

func (s *serv) FamilyMembers(ctx context.Context) ([]model.FamilyMemberReport, error) {
	return s.reportRepo.FamilyMemberReports(ctx)
}

// Search - кросс-табличный поиск по имени и email.
// Запросы короче двух символов отклоняются до обращения к БД
func (s *serv) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	if len(query) < minQueryLen {
		return nil, fmt.Errorf("%w: query must be at least %d characters", model.ErrInvalidInput, minQueryLen)
	}

	return s.reportRepo.Search(ctx, query, searchLimit)
}
