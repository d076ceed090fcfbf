package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// HRRole is the closed set of HR roles. Managers have unrestricted access to
// every client; Recruiters only see the clients on their assignment list.
type HRRole string

const (
	RoleManager   HRRole = "Manager"
	RoleRecruiter HRRole = "Recruiter"
)

func (r HRRole) Valid() bool {
	switch r {
	case RoleManager, RoleRecruiter:
		return true
	}
	return false
}

// Token role claims. HR tokens carry the HRRole value itself.
const (
	RoleClaimSuperAdmin = "superadmin"
	RoleClaimClient     = "client"
)

type SuperAdmin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type HR struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         HRRole    `json:"role"`
	// Meaningful only for Recruiters; Managers bypass assignment checks.
	AssignedClientIDs []string  `json:"assignedClientIds"`
	CreatedAt         time.Time `json:"createdAt"`
}

// CanAccessClient walks the assignment graph for Recruiters. Managers pass
// unconditionally.
func (h *HR) CanAccessClient(clientID string) bool {
	if h.Role == RoleManager {
		return true
	}
	for _, id := range h.AssignedClientIDs {
		if id == clientID {
			return true
		}
	}
	return false
}

type SuperAdminRepository interface {
	Create(ctx context.Context, admin *SuperAdmin) error
	GetByID(ctx context.Context, id string) (*SuperAdmin, error)
	GetByEmail(ctx context.Context, email string) (*SuperAdmin, error)
	Count(ctx context.Context) (int64, error)
}

type ClientRepository interface {
	Create(ctx context.Context, client *Client) error
	GetByID(ctx context.Context, id string) (*Client, error)
	GetByEmail(ctx context.Context, email string) (*Client, error)
	Fetch(ctx context.Context) ([]Client, error)
	FetchByIDs(ctx context.Context, ids []string) ([]Client, error)
	Update(ctx context.Context, client *Client) error
	// Delete removes the client and prunes it from every HR assignment
	// list in the same transaction.
	Delete(ctx context.Context, id string) error
}

type HRRepository interface {
	Create(ctx context.Context, hr *HR) error
	GetByID(ctx context.Context, id string) (*HR, error)
	GetByEmail(ctx context.Context, email string) (*HR, error)
	Fetch(ctx context.Context) ([]HR, error)
	FetchByRole(ctx context.Context, role HRRole) ([]HR, error)
	Update(ctx context.Context, hr *HR) error
	Delete(ctx context.Context, id string) error
	// AssignClient is an idempotent set-insert into the assignment graph.
	AssignClient(ctx context.Context, hrID, clientID string) error
}
