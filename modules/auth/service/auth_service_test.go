package service_test

import (
	"context"
	"testing"
	"time"

	"vetcare-api/core/config"
	"vetcare-api/core/errors"
	"vetcare-api/modules/auth/dto"
	"vetcare-api/modules/auth/entity"
	"vetcare-api/modules/auth/repository"
	"vetcare-api/modules/auth/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeBlacklist struct {
	jtis []string
}

func (f *fakeBlacklist) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	f.jtis = append(f.jtis, jti)
	return nil
}

type fakeOnboarding struct {
	seen map[string]bool
}

func (f *fakeOnboarding) SetOnboardingSeen(ctx context.Context, userID string, seen bool) error {
	f.seen[userID] = seen
	return nil
}

func (f *fakeOnboarding) OnboardingSeen(ctx context.Context, userID string) (bool, error) {
	return f.seen[userID], nil
}

func hash(t *testing.T, password string) []byte {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func newAuthFixture(t *testing.T) (service.AuthServiceInterface, *fakeBlacklist, *fakeOnboarding) {
	t.Helper()
	config.Set(&config.Config{
		Auth: config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTL: 60},
	})

	users := repository.NewUserRepository([]entity.User{
		{ID: "1", Name: "Head Vet", Email: "head@vetcare.app", Role: entity.RoleHeadVet, PasswordHash: hash(t, "secret1")},
		{ID: "2", Name: "Assistant", Email: "assistant@vetcare.app", Role: entity.RoleAssistantVet, PasswordHash: hash(t, "secret2")},
		{ID: "6", Name: "Admin", Email: "admin@vetcare.app", Role: entity.RoleAdmin, PasswordHash: hash(t, "secret6")},
	})
	blacklist := &fakeBlacklist{}
	onboarding := &fakeOnboarding{seen: map[string]bool{}}
	return service.NewAuthService(users, blacklist, onboarding), blacklist, onboarding
}

func TestSignIn(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	t.Run("valid credentials", func(t *testing.T) {
		resp, appErr := svc.SignIn(context.Background(), &dto.SignInRequest{
			Email: "head@vetcare.app", Password: "secret1",
		})

		require.Nil(t, appErr)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "1", resp.User.ID)
		assert.True(t, resp.User.CanApprove)
	})

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		_, appErr := svc.SignIn(context.Background(), &dto.SignInRequest{
			Email: "Head@VetCare.App", Password: "secret1",
		})
		assert.Nil(t, appErr)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, appErr := svc.SignIn(context.Background(), &dto.SignInRequest{
			Email: "head@vetcare.app", Password: "nope",
		})

		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, appErr := svc.SignIn(context.Background(), &dto.SignInRequest{
			Email: "ghost@vetcare.app", Password: "secret1",
		})

		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
	})
}

func TestSignOutBlacklistsToken(t *testing.T) {
	svc, blacklist, _ := newAuthFixture(t)

	appErr := svc.SignOut(context.Background(), "jti-123", time.Now().Add(time.Hour))

	require.Nil(t, appErr)
	assert.Equal(t, []string{"jti-123"}, blacklist.jtis)
}

func TestListUsersAdminOnly(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	got, appErr := svc.ListUsers(context.Background(), entity.RoleAdmin)
	require.Nil(t, appErr)
	assert.Len(t, got, 3)

	_, appErr = svc.ListUsers(context.Background(), entity.RoleAssistantVet)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}

func TestListApprovers(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	got, appErr := svc.ListApprovers(context.Background())
	require.Nil(t, appErr)
	require.Len(t, got, 1)
	assert.Equal(t, string(entity.RoleHeadVet), got[0].Role)
}

func TestOnboardingRoundTrip(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	resp, appErr := svc.Onboarding(context.Background(), "1")
	require.Nil(t, appErr)
	assert.False(t, resp.Seen)

	require.Nil(t, svc.SetOnboarding(context.Background(), "1", true))

	resp, appErr = svc.Onboarding(context.Background(), "1")
	require.Nil(t, appErr)
	assert.True(t, resp.Seen)
}

func TestCanApprove(t *testing.T) {
	assert.True(t, entity.RoleHeadVet.CanApprove())
	assert.True(t, entity.RoleAdmin.CanApprove())
	assert.False(t, entity.RoleAssistantVet.CanApprove())
	assert.False(t, entity.RoleCaretakerA.CanApprove())
	assert.False(t, entity.RoleCaretakerB.CanApprove())
	assert.False(t, entity.RoleCaretakerC.CanApprove())
}
