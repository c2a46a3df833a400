package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sponsor_backend/internal/model"
	"sponsor_backend/pkg/token"
)

type stubVerifier struct {
	profile *model.GoogleProfile
	err     error
}

func (v *stubVerifier) Verify(_ context.Context, _ string) (*model.GoogleProfile, error) {
	return v.profile, v.err
}

type stubSponsorRepo struct {
	byGoogleID map[string]*model.Sponsor
	nextID     int
}

func newStubSponsorRepo() *stubSponsorRepo {
	return &stubSponsorRepo{byGoogleID: map[string]*model.Sponsor{}}
}

func (r *stubSponsorRepo) CreateSponsor(_ context.Context, _ *model.Sponsor) (int, error) {
	return 0, errors.New("not used")
}

func (r *stubSponsorRepo) UpsertByGoogleID(_ context.Context, sponsor *model.Sponsor) error {
	if existing, ok := r.byGoogleID[sponsor.GoogleID]; ok {
		existing.Name = sponsor.Name
		existing.AvatarURL = sponsor.AvatarURL
		existing.IsAdmin = sponsor.IsAdmin
		return nil
	}
	r.nextID++
	stored := *sponsor
	stored.ID = r.nextID
	r.byGoogleID[sponsor.GoogleID] = &stored
	return nil
}

func (r *stubSponsorRepo) GetIDByGoogleID(_ context.Context, googleID string) (int, error) {
	sponsor, ok := r.byGoogleID[googleID]
	if !ok {
		return 0, errors.New("not found")
	}
	return sponsor.ID, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type jwtConfigStub struct{}

func (jwtConfigStub) SessionTokenSecretKey() []byte       { return []byte("test-secret") }
func (jwtConfigStub) SessionTokenDuration() time.Duration { return time.Hour }

func newTestService(verifier *stubVerifier, repo *stubSponsorRepo, adminEmails []string) *serv {
	return &serv{
		txManager:   passthroughTxManager{},
		sponsorRepo: repo,
		verifier:    verifier,
		jwtConfig:   jwtConfigStub{},
		adminEmails: adminEmails,
	}
}

func TestLoginEmptyToken(t *testing.T) {
	s := newTestService(&stubVerifier{}, newStubSponsorRepo(), nil)

	_, err := s.Login(context.Background(), "")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestLoginVerificationFailure(t *testing.T) {
	s := newTestService(&stubVerifier{err: errors.New("bad audience")}, newStubSponsorRepo(), nil)

	_, err := s.Login(context.Background(), "some-google-token")
	assert.ErrorIs(t, err, model.ErrAuthenticationFailed)
}

func TestLoginCreatesSponsorAndMintsToken(t *testing.T) {
	verifier := &stubVerifier{profile: &model.GoogleProfile{
		GoogleID:  "sub-1",
		Email:     "alice@example.com",
		Name:      "Alice",
		AvatarURL: "https://example.com/a.png",
	}}
	s := newTestService(verifier, newStubSponsorRepo(), nil)

	data, err := s.Login(context.Background(), "some-google-token")
	require.NoError(t, err)
	require.NotNil(t, data.Sponsor)

	assert.Equal(t, 1, data.Sponsor.ID)
	assert.False(t, data.Sponsor.IsAdmin)

	claims, err := token.VerifySessionToken(data.Token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, "sub-1", claims.Subject)
	assert.Equal(t, 1, claims.SponsorID)
	assert.False(t, claims.IsAdmin)
}

func TestLoginSecondCallReturnsSameSponsorID(t *testing.T) {
	repo := newStubSponsorRepo()
	verifier := &stubVerifier{profile: &model.GoogleProfile{
		GoogleID: "sub-1",
		Email:    "alice@example.com",
		Name:     "Alice",
	}}
	s := newTestService(verifier, repo, nil)

	first, err := s.Login(context.Background(), "some-google-token")
	require.NoError(t, err)

	// Повторный вход обновляет запись, а не создает новую
	verifier.profile.Name = "Alice Renamed"
	second, err := s.Login(context.Background(), "some-google-token")
	require.NoError(t, err)

	assert.Equal(t, first.Sponsor.ID, second.Sponsor.ID)
	assert.Len(t, repo.byGoogleID, 1)
	assert.Equal(t, "Alice Renamed", repo.byGoogleID["sub-1"].Name)
}

func TestLoginAdminAllowList(t *testing.T) {
	verifier := &stubVerifier{profile: &model.GoogleProfile{
		GoogleID: "sub-2",
		Email:    "root@example.com",
	}}
	s := newTestService(verifier, newStubSponsorRepo(), []string{"root@example.com"})

	data, err := s.Login(context.Background(), "some-google-token")
	require.NoError(t, err)
	assert.True(t, data.Sponsor.IsAdmin)

	claims, err := token.VerifySessionToken(data.Token, []byte("test-secret"))
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}

func TestLoginAdminAllowListIsCaseSensitive(t *testing.T) {
	verifier := &stubVerifier{profile: &model.GoogleProfile{
		GoogleID: "sub-3",
		Email:    "Root@example.com",
	}}
	s := newTestService(verifier, newStubSponsorRepo(), []string{"root@example.com"})

	data, err := s.Login(context.Background(), "some-google-token")
	require.NoError(t, err)
	assert.False(t, data.Sponsor.IsAdmin)
}
