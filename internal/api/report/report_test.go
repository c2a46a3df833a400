package report

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "sponsor_backend/internal/api/dto/report"
	"sponsor_backend/internal/model"
	reportServ "sponsor_backend/internal/service/report"
)

type stubReportRepo struct {
	searchCalls   []string
	searchResults []model.SearchResult
}

func (r *stubReportRepo) SponsorReports(_ context.Context) ([]model.SponsorReport, error) {
	return []model.SponsorReport{
		{ID: 1, Name: "Alice", Email: "alice@example.com", FamilyCount: 2, FamilyNames: "Bob, Carol"},
	}, nil
}

func (r *stubReportRepo) FamilyMemberReports(_ context.Context) ([]model.FamilyMemberReport, error) {
	return nil, nil
}

func (r *stubReportRepo) Search(_ context.Context, query string, _ uint64) ([]model.SearchResult, error) {
	r.searchCalls = append(r.searchCalls, query)
	return r.searchResults, nil
}

func newTestHandler(repo *stubReportRepo) *Handler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewHandler(HandlerDeps{
		Serv: reportServ.NewService(repo),
		Log:  logger,
	})
}

func TestSearchQueryTooShort(t *testing.T) {
	repo := &stubReportRepo{}
	h := newTestHandler(repo)

	req := httptest.NewRequest("GET", "/admin/search?query=a", nil)
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// Короткий запрос не должен дойти до БД
	assert.Empty(t, repo.searchCalls)
}

func TestSearchMissingQuery(t *testing.T) {
	repo := &stubReportRepo{}
	h := newTestHandler(repo)

	req := httptest.NewRequest("GET", "/admin/search", nil)
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.searchCalls)
}

func TestSearchTagsResultsByType(t *testing.T) {
	repo := &stubReportRepo{searchResults: []model.SearchResult{
		{Type: model.SearchTypeSponsor, ID: 1, Name: "Alice", Email: "alice@example.com"},
		{Type: model.SearchTypeFamilyMember, ID: 3, Name: "Alan", Email: "alan@example.com"},
	}}
	h := newTestHandler(repo)

	req := httptest.NewRequest("GET", "/admin/search?query=al", nil)
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []string{"al"}, repo.searchCalls)

	var rows []dto.SearchRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "sponsor", rows[0].Type)
	assert.Equal(t, "family_member", rows[1].Type)
}

func TestSponsorsReport(t *testing.T) {
	h := newTestHandler(&stubReportRepo{})

	req := httptest.NewRequest("GET", "/admin/sponsors", nil)
	rec := httptest.NewRecorder()
	h.Sponsors(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var rows []dto.SponsorRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].FamilyCount)
	assert.Equal(t, "Bob, Carol", rows[0].FamilyNames)
}
