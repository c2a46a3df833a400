package family

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sponsor_backend/internal/api/middleware"
	"sponsor_backend/internal/model"
	familyServ "sponsor_backend/internal/service/family"
)

type stubFamilyRepo struct {
	created []*model.FamilyMember
}

func (r *stubFamilyRepo) CreateFamilyMember(_ context.Context, member *model.FamilyMember) (int, error) {
	r.created = append(r.created, member)
	return len(r.created), nil
}

func newTestHandler(repo *stubFamilyRepo) *Handler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewHandler(HandlerDeps{
		Serv: familyServ.NewService(repo),
		Log:  logger,
	})
}

func doCreate(h *Handler, claims *model.SessionClaims, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/family-members", strings.NewReader(body))
	req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	return rec
}

func TestCreateOwnFamilyMember(t *testing.T) {
	repo := &stubFamilyRepo{}
	h := newTestHandler(repo)

	claims := &model.SessionClaims{SponsorID: 5}
	rec := doCreate(h, claims, `{"sponsor_id":5,"name":"Bob","email":"bob@example.com","date_of_birth":"2010-04-01"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"memberId":1`)
	require.Len(t, repo.created, 1)
	assert.Equal(t, 5, repo.created[0].SponsorID)
	assert.Equal(t, "Bob", repo.created[0].Name)
}

func TestCreateOwnershipMismatch(t *testing.T) {
	repo := &stubFamilyRepo{}
	h := newTestHandler(repo)

	claims := &model.SessionClaims{SponsorID: 5, IsAdmin: false}
	rec := doCreate(h, claims, `{"sponsor_id":6,"name":"Bob","date_of_birth":"2010-04-01"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, repo.created)
}

func TestCreateAdminOverridesOwnership(t *testing.T) {
	repo := &stubFamilyRepo{}
	h := newTestHandler(repo)

	claims := &model.SessionClaims{SponsorID: 5, IsAdmin: true}
	rec := doCreate(h, claims, `{"sponsor_id":6,"name":"Bob","date_of_birth":"2010-04-01"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, repo.created, 1)
	assert.Equal(t, 6, repo.created[0].SponsorID)
}

func TestCreateInvalidDateOfBirth(t *testing.T) {
	repo := &stubFamilyRepo{}
	h := newTestHandler(repo)

	claims := &model.SessionClaims{SponsorID: 5}
	rec := doCreate(h, claims, `{"sponsor_id":5,"name":"Bob","date_of_birth":"01-04-2010"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.created)
}

func TestCreateMissingName(t *testing.T) {
	repo := &stubFamilyRepo{}
	h := newTestHandler(repo)

	claims := &model.SessionClaims{SponsorID: 5}
	rec := doCreate(h, claims, `{"sponsor_id":5,"date_of_birth":"2010-04-01"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.created)
}
