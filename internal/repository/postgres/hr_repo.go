package postgres

import (
	"context"
	"errors"
	"strings"

	"hrms-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type hrRepo struct {
	db *pgxpool.Pool
}

func NewHRRepository(db *pgxpool.Pool) domain.HRRepository {
	return &hrRepo{db: db}
}

// selectHR aggregates the assignment graph edges into the record itself so
// callers always see a fully-populated assignment list.
const selectHR = `
	SELECT h.id, h.name, h.email, h.password_hash, h.role, h.created_at,
	       COALESCE(array_agg(a.client_id::text) FILTER (WHERE a.client_id IS NOT NULL), '{}') AS assigned
	FROM hrs h
	LEFT JOIN hr_client_assignments a ON a.hr_id = h.id`

func (r *hrRepo) Create(ctx context.Context, hr *domain.HR) error {
	query := `INSERT INTO hrs (id, name, email, password_hash, role, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, hr.ID, hr.Name, strings.ToLower(hr.Email), hr.PasswordHash, hr.Role, hr.CreatedAt)
	return mapUniqueViolation(err)
}

func (r *hrRepo) GetByID(ctx context.Context, id string) (*domain.HR, error) {
	query := selectHR + ` WHERE h.id = $1 GROUP BY h.id`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *hrRepo) GetByEmail(ctx context.Context, email string) (*domain.HR, error) {
	query := selectHR + ` WHERE h.email = $1 GROUP BY h.id`
	return r.scanOne(r.db.QueryRow(ctx, query, strings.ToLower(email)))
}

func (r *hrRepo) scanOne(row pgx.Row) (*domain.HR, error) {
	var hr domain.HR
	err := row.Scan(&hr.ID, &hr.Name, &hr.Email, &hr.PasswordHash, &hr.Role, &hr.CreatedAt, &hr.AssignedClientIDs)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &hr, nil
}

func (r *hrRepo) Fetch(ctx context.Context) ([]domain.HR, error) {
	query := selectHR + ` GROUP BY h.id ORDER BY h.created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *hrRepo) FetchByRole(ctx context.Context, role domain.HRRole) ([]domain.HR, error) {
	query := selectHR + ` WHERE h.role = $1 GROUP BY h.id ORDER BY h.created_at DESC`
	rows, err := r.db.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *hrRepo) scanMany(rows pgx.Rows) ([]domain.HR, error) {
	hrs := []domain.HR{}
	for rows.Next() {
		var hr domain.HR
		if err := rows.Scan(&hr.ID, &hr.Name, &hr.Email, &hr.PasswordHash, &hr.Role, &hr.CreatedAt, &hr.AssignedClientIDs); err != nil {
			return nil, err
		}
		hrs = append(hrs, hr)
	}
	return hrs, rows.Err()
}

func (r *hrRepo) Update(ctx context.Context, hr *domain.HR) error {
	query := `UPDATE hrs SET name = $2, email = $3, password_hash = $4, role = $5 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, hr.ID, hr.Name, strings.ToLower(hr.Email), hr.PasswordHash, hr.Role)
	if err != nil {
		return mapUniqueViolation(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *hrRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM hrs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AssignClient inserts an assignment edge. Re-assigning is a no-op, not an
// error: the primary key plus ON CONFLICT gives set semantics.
func (r *hrRepo) AssignClient(ctx context.Context, hrID, clientID string) error {
	query := `INSERT INTO hr_client_assignments (hr_id, client_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	_, err := r.db.Exec(ctx, query, hrID, clientID)
	return err
}
