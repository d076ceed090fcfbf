package postgres

import (
	"context"
	"errors"
	"strings"

	"hrms-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type superAdminRepo struct {
	db *pgxpool.Pool
}

func NewSuperAdminRepository(db *pgxpool.Pool) domain.SuperAdminRepository {
	return &superAdminRepo{db: db}
}

func (r *superAdminRepo) Create(ctx context.Context, admin *domain.SuperAdmin) error {
	query := `INSERT INTO super_admins (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, admin.ID, strings.ToLower(admin.Email), admin.PasswordHash, admin.CreatedAt)
	return mapUniqueViolation(err)
}

func (r *superAdminRepo) GetByID(ctx context.Context, id string) (*domain.SuperAdmin, error) {
	query := `SELECT id, email, password_hash, created_at FROM super_admins WHERE id = $1`
	var admin domain.SuperAdmin
	err := r.db.QueryRow(ctx, query, id).Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *superAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.SuperAdmin, error) {
	query := `SELECT id, email, password_hash, created_at FROM super_admins WHERE email = $1`
	var admin domain.SuperAdmin
	err := r.db.QueryRow(ctx, query, strings.ToLower(email)).Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *superAdminRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM super_admins`).Scan(&total)
	return total, err
}
