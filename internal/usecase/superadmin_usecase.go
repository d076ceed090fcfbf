package usecase

import (
	"context"
	"errors"
	"time"

	"hrms-backend/internal/domain"
	"hrms-backend/pkg/apperror"
	"hrms-backend/pkg/auth"

	"github.com/google/uuid"
)

type superAdminUsecase struct {
	clientRepo    domain.ClientRepository
	hrRepo        domain.HRRepository
	candidateRepo domain.CandidateRepository
	bcryptCost    int
}

func NewSuperAdminUsecase(
	clientRepo domain.ClientRepository,
	hrRepo domain.HRRepository,
	candidateRepo domain.CandidateRepository,
	bcryptCost int,
) domain.SuperAdminUsecase {
	return &superAdminUsecase{
		clientRepo:    clientRepo,
		hrRepo:        hrRepo,
		candidateRepo: candidateRepo,
		bcryptCost:    bcryptCost,
	}
}

func (u *superAdminUsecase) Dashboard(ctx context.Context, caller *domain.SuperAdmin) (*domain.DashboardData, error) {
	clients, err := u.clientRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	hrs, err := u.hrRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	totalCandidates, err := u.candidateRepo.Count(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	stripClientHashes(clients)
	stripHRHashes(hrs)

	return &domain.DashboardData{
		SuperAdmin: domain.AuthUser{ID: caller.ID, Email: caller.Email},
		Stats: domain.DashboardStats{
			TotalClients:    len(clients),
			TotalHRs:        len(hrs),
			TotalCandidates: totalCandidates,
		},
		Clients: clients,
		HRs:     hrs,
	}, nil
}

func (u *superAdminUsecase) CreateHR(ctx context.Context, req domain.CreateHRRequest) (*domain.HR, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, apperror.BadRequest("Name, email and password are required")
	}
	role := req.Role
	if role == "" {
		role = domain.RoleRecruiter
	}
	if !role.Valid() {
		return nil, apperror.BadRequest("Role must be Manager or Recruiter")
	}

	hash, err := auth.HashPassword(req.Password, u.bcryptCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	hr := &domain.HR{
		ID:                uuid.NewString(),
		Name:              req.Name,
		Email:             req.Email,
		PasswordHash:      hash,
		Role:              role,
		AssignedClientIDs: []string{},
		CreatedAt:         time.Now(),
	}
	if err := u.hrRepo.Create(ctx, hr); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, apperror.Conflict("HR with this email already exists")
		}
		return nil, apperror.Internal(err)
	}

	hr.PasswordHash = ""
	return hr, nil
}

func (u *superAdminUsecase) CreateClient(ctx context.Context, req domain.CreateClientRequest) (*domain.Client, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, apperror.BadRequest("Name, email and password are required")
	}

	hash, err := auth.HashPassword(req.Password, u.bcryptCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	client := &domain.Client{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := u.clientRepo.Create(ctx, client); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, apperror.Conflict("Client with this email already exists")
		}
		return nil, apperror.Internal(err)
	}

	client.PasswordHash = ""
	return client, nil
}

func (u *superAdminUsecase) AssignClientToHR(ctx context.Context, hrID, clientID string) error {
	if hrID == "" || clientID == "" {
		return apperror.BadRequest("HR ID and Client ID are required")
	}

	if _, err := u.hrRepo.GetByID(ctx, hrID); err != nil {
		return notFoundOrInternal(err, "HR or Client not found")
	}
	if _, err := u.clientRepo.GetByID(ctx, clientID); err != nil {
		return notFoundOrInternal(err, "HR or Client not found")
	}

	if err := u.hrRepo.AssignClient(ctx, hrID, clientID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *superAdminUsecase) UpdateAccount(ctx context.Context, accountType, id string, patch domain.AccountPatch) (any, error) {
	switch accountType {
	case "hrs":
		return u.updateHR(ctx, id, patch)
	case "clients":
		return u.updateClient(ctx, id, patch)
	default:
		return nil, apperror.BadRequest("Unknown account type: " + accountType)
	}
}

func (u *superAdminUsecase) updateHR(ctx context.Context, id string, patch domain.AccountPatch) (*domain.HR, error) {
	hr, err := u.hrRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err, "User not found")
	}

	if patch.Name != nil {
		hr.Name = *patch.Name
	}
	if patch.Email != nil {
		hr.Email = *patch.Email
	}
	if patch.Role != nil {
		if !patch.Role.Valid() {
			return nil, apperror.BadRequest("Role must be Manager or Recruiter")
		}
		hr.Role = *patch.Role
	}
	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password, u.bcryptCost)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		hr.PasswordHash = hash
	}

	if err := u.hrRepo.Update(ctx, hr); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, apperror.Conflict("HR with this email already exists")
		}
		return nil, notFoundOrInternal(err, "User not found")
	}

	hr.PasswordHash = ""
	return hr, nil
}

func (u *superAdminUsecase) updateClient(ctx context.Context, id string, patch domain.AccountPatch) (*domain.Client, error) {
	client, err := u.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err, "User not found")
	}

	if patch.Name != nil {
		client.Name = *patch.Name
	}
	if patch.Email != nil {
		client.Email = *patch.Email
	}
	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password, u.bcryptCost)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		client.PasswordHash = hash
	}

	if err := u.clientRepo.Update(ctx, client); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, apperror.Conflict("Client with this email already exists")
		}
		return nil, notFoundOrInternal(err, "User not found")
	}

	client.PasswordHash = ""
	return client, nil
}

// DeleteAccount removes an HR or Client. Client deletion also prunes the id
// from every HR's assignment list (the repository does both atomically).
func (u *superAdminUsecase) DeleteAccount(ctx context.Context, accountType, id string) error {
	switch accountType {
	case "hrs":
		if err := u.hrRepo.Delete(ctx, id); err != nil {
			return notFoundOrInternal(err, "User not found")
		}
		return nil
	case "clients":
		if err := u.clientRepo.Delete(ctx, id); err != nil {
			return notFoundOrInternal(err, "User not found")
		}
		return nil
	default:
		return apperror.BadRequest("Unknown account type: " + accountType)
	}
}

func notFoundOrInternal(err error, message string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(message)
	}
	return apperror.Internal(err)
}

func stripClientHashes(clients []domain.Client) {
	for i := range clients {
		clients[i].PasswordHash = ""
	}
}

func stripHRHashes(hrs []domain.HR) {
	for i := range hrs {
		hrs[i].PasswordHash = ""
	}
}
