package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sponsor_backend/internal/model"
	"sponsor_backend/pkg/token"
)

var testSecret = []byte("test-secret")

func testMiddleware() *AuthMiddleware {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewAuthMiddleware(testSecret, logger)
}

func sessionTokenFor(t *testing.T, sponsor *model.Sponsor, ttl time.Duration) string {
	t.Helper()
	tokenStr, err := token.GenerateSessionToken(sponsor, testSecret, ttl)
	require.NoError(t, err)
	return tokenStr
}

func TestRequireSessionNoHeader(t *testing.T) {
	handler := testMiddleware().RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/api/protected", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireSessionMalformedHeader(t *testing.T) {
	handler := testMiddleware().RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/api/protected", nil)
	req.Header.Set("Authorization", "Basic abc")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireSessionInvalidToken(t *testing.T) {
	handler := testMiddleware().RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireSessionExpiredToken(t *testing.T) {
	tokenStr := sessionTokenFor(t, &model.Sponsor{ID: 1, GoogleID: "g1"}, -time.Minute)

	handler := testMiddleware().RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireSessionValidToken(t *testing.T) {
	tokenStr := sessionTokenFor(t, &model.Sponsor{
		ID:       7,
		GoogleID: "g7",
		Email:    "alice@example.com",
	}, time.Hour)

	var gotClaims *model.SessionClaims
	handler := testMiddleware().RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		gotClaims = claims
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, gotClaims.SponsorID)
	assert.Equal(t, "g7", gotClaims.Subject)
	assert.Equal(t, "alice@example.com", gotClaims.Email)
}

func TestRequireAdminNonAdmin(t *testing.T) {
	tokenStr := sessionTokenFor(t, &model.Sponsor{ID: 7, GoogleID: "g7", IsAdmin: false}, time.Hour)

	handler := testMiddleware().RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/admin/sponsors", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin access required")
}

func TestRequireAdminAllowed(t *testing.T) {
	tokenStr := sessionTokenFor(t, &model.Sponsor{ID: 1, GoogleID: "g1", IsAdmin: true}, time.Hour)

	handler := testMiddleware().RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/admin/sponsors", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
