package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms-backend/internal/domain"
	"hrms-backend/internal/usecase"
	"hrms-backend/pkg/auth"
)

func newAuthFixture(t *testing.T) (*MockSuperAdminRepo, *MockClientRepo, *MockHRRepo, domain.AuthUsecase, *auth.TokenManager) {
	t.Helper()
	superAdminRepo := new(MockSuperAdminRepo)
	clientRepo := new(MockClientRepo)
	hrRepo := new(MockHRRepo)
	tokens := auth.NewTokenManager("test-secret", 8)
	uc := usecase.NewAuthUsecase(superAdminRepo, clientRepo, hrRepo, tokens)
	return superAdminRepo, clientRepo, hrRepo, uc, tokens
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password, 4)
	require.NoError(t, err)
	return hash
}

func TestLoginHR(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return token and user on valid credentials", func(t *testing.T) {
		_, _, hrRepo, uc, tokens := newAuthFixture(t)
		hrRepo.On("GetByEmail", ctx, "jane@corp.com").Return(&domain.HR{
			ID:           "hr1",
			Name:         "Jane",
			Email:        "jane@corp.com",
			PasswordHash: hashOf(t, "s3cret"),
			Role:         domain.RoleRecruiter,
		}, nil)

		result, err := uc.LoginHR(ctx, "jane@corp.com", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "hr1", result.User.ID)
		assert.Equal(t, string(domain.RoleRecruiter), result.User.Role)

		claims, err := tokens.Parse(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "hr1", claims.Subject)
		assert.Equal(t, string(domain.RoleRecruiter), claims.Role)
	})

	t.Run("Should fail with identical message on wrong password", func(t *testing.T) {
		_, _, hrRepo, uc, _ := newAuthFixture(t)
		hrRepo.On("GetByEmail", ctx, "jane@corp.com").Return(&domain.HR{
			ID:           "hr1",
			PasswordHash: hashOf(t, "s3cret"),
			Role:         domain.RoleRecruiter,
		}, nil)

		_, err := uc.LoginHR(ctx, "jane@corp.com", "wrong")
		require.Error(t, err)
		assert.Equal(t, "Invalid credentials", err.Error())
	})

	t.Run("Should fail with identical message on unknown email", func(t *testing.T) {
		_, _, hrRepo, uc, _ := newAuthFixture(t)
		hrRepo.On("GetByEmail", ctx, "ghost@corp.com").Return(nil, domain.ErrNotFound)

		_, err := uc.LoginHR(ctx, "ghost@corp.com", "whatever")
		require.Error(t, err)
		assert.Equal(t, "Invalid credentials", err.Error())
	})

	t.Run("Should reject empty credentials without a lookup", func(t *testing.T) {
		_, _, hrRepo, uc, _ := newAuthFixture(t)

		_, err := uc.LoginHR(ctx, "", "")
		require.Error(t, err)
		hrRepo.AssertNotCalled(t, "GetByEmail")
	})
}

func TestLoginSuperAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("Should issue superadmin role claim", func(t *testing.T) {
		superAdminRepo, _, _, uc, tokens := newAuthFixture(t)
		superAdminRepo.On("GetByEmail", ctx, "super@admin.com").Return(&domain.SuperAdmin{
			ID:           "sa1",
			Email:        "super@admin.com",
			PasswordHash: hashOf(t, "superadmin123"),
		}, nil)

		result, err := uc.LoginSuperAdmin(ctx, "super@admin.com", "superadmin123")
		require.NoError(t, err)

		claims, err := tokens.Parse(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleClaimSuperAdmin, claims.Role)
	})
}

func TestLoginClient(t *testing.T) {
	ctx := context.Background()

	t.Run("Should issue client role claim", func(t *testing.T) {
		_, clientRepo, _, uc, tokens := newAuthFixture(t)
		clientRepo.On("GetByEmail", ctx, "acme@client.com").Return(&domain.Client{
			ID:           "c1",
			Name:         "Acme",
			Email:        "acme@client.com",
			PasswordHash: hashOf(t, "pass1234"),
		}, nil)

		result, err := uc.LoginClient(ctx, "acme@client.com", "pass1234")
		require.NoError(t, err)

		claims, err := tokens.Parse(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleClaimClient, claims.Role)
	})
}
