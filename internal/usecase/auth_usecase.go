package usecase

import (
	"context"
	"errors"

	"hrms-backend/internal/domain"
	"hrms-backend/pkg/apperror"
	"hrms-backend/pkg/auth"
	"hrms-backend/pkg/logger"
)

type authUsecase struct {
	superAdminRepo domain.SuperAdminRepository
	clientRepo     domain.ClientRepository
	hrRepo         domain.HRRepository
	tokens         *auth.TokenManager
}

func NewAuthUsecase(
	superAdminRepo domain.SuperAdminRepository,
	clientRepo domain.ClientRepository,
	hrRepo domain.HRRepository,
	tokens *auth.TokenManager,
) domain.AuthUsecase {
	return &authUsecase{
		superAdminRepo: superAdminRepo,
		clientRepo:     clientRepo,
		hrRepo:         hrRepo,
		tokens:         tokens,
	}
}

// invalidCredentials is deliberately identical for unknown email and wrong
// password, so login failures don't reveal which accounts exist.
var invalidCredentials = apperror.Unauthorized("Invalid credentials")

func (u *authUsecase) LoginSuperAdmin(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	if email == "" || password == "" {
		return nil, apperror.BadRequest("Email and password are required")
	}

	admin, err := u.superAdminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, loginLookupError(err)
	}
	if auth.ComparePassword(admin.PasswordHash, password) != nil {
		return nil, invalidCredentials
	}

	token, err := u.tokens.Generate(admin.ID, domain.RoleClaimSuperAdmin)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.LoginResult{
		AccessToken: token,
		User:        domain.AuthUser{ID: admin.ID, Email: admin.Email, Role: domain.RoleClaimSuperAdmin},
	}, nil
}

func (u *authUsecase) LoginHR(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	if email == "" || password == "" {
		return nil, apperror.BadRequest("Email and password are required")
	}

	hr, err := u.hrRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, loginLookupError(err)
	}
	if auth.ComparePassword(hr.PasswordHash, password) != nil {
		return nil, invalidCredentials
	}

	token, err := u.tokens.Generate(hr.ID, string(hr.Role))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.LoginResult{
		AccessToken: token,
		User:        domain.AuthUser{ID: hr.ID, Name: hr.Name, Email: hr.Email, Role: string(hr.Role)},
	}, nil
}

func (u *authUsecase) LoginClient(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	if email == "" || password == "" {
		return nil, apperror.BadRequest("Email and password are required")
	}

	client, err := u.clientRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, loginLookupError(err)
	}
	if auth.ComparePassword(client.PasswordHash, password) != nil {
		return nil, invalidCredentials
	}

	token, err := u.tokens.Generate(client.ID, domain.RoleClaimClient)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.LoginResult{
		AccessToken: token,
		User:        domain.AuthUser{ID: client.ID, Name: client.Name, Email: client.Email, Role: domain.RoleClaimClient},
	}, nil
}

func loginLookupError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return invalidCredentials
	}
	logger.Log.Error("login lookup failed", "error", err)
	return apperror.New(500, "Server error during login", err)
}

func (u *authUsecase) GetSuperAdmin(ctx context.Context, id string) (*domain.SuperAdmin, error) {
	admin, err := u.superAdminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	admin.PasswordHash = ""
	return admin, nil
}

func (u *authUsecase) GetHR(ctx context.Context, id string) (*domain.HR, error) {
	hr, err := u.hrRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	hr.PasswordHash = ""
	return hr, nil
}

func (u *authUsecase) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	client, err := u.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	client.PasswordHash = ""
	return client, nil
}
