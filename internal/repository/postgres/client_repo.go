package postgres

import (
	"context"
	"errors"
	"strings"

	"hrms-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type clientRepo struct {
	db *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) domain.ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) Create(ctx context.Context, client *domain.Client) error {
	query := `INSERT INTO clients (id, name, email, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, client.ID, client.Name, strings.ToLower(client.Email), client.PasswordHash, client.CreatedAt)
	return mapUniqueViolation(err)
}

func (r *clientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	query := `SELECT id, name, email, password_hash, created_at FROM clients WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *clientRepo) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	query := `SELECT id, name, email, password_hash, created_at FROM clients WHERE email = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, strings.ToLower(email)))
}

func (r *clientRepo) scanOne(row pgx.Row) (*domain.Client, error) {
	var client domain.Client
	err := row.Scan(&client.ID, &client.Name, &client.Email, &client.PasswordHash, &client.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) Fetch(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT id, name, email, password_hash, created_at FROM clients ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClients(rows)
}

func (r *clientRepo) FetchByIDs(ctx context.Context, ids []string) ([]domain.Client, error) {
	if len(ids) == 0 {
		return []domain.Client{}, nil
	}
	query := `SELECT id, name, email, password_hash, created_at FROM clients WHERE id = ANY($1) ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClients(rows)
}

func scanClients(rows pgx.Rows) ([]domain.Client, error) {
	clients := []domain.Client{}
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(&client.ID, &client.Name, &client.Email, &client.PasswordHash, &client.CreatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

func (r *clientRepo) Update(ctx context.Context, client *domain.Client) error {
	query := `UPDATE clients SET name = $2, email = $3, password_hash = $4 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, client.ID, client.Name, strings.ToLower(client.Email), client.PasswordHash)
	if err != nil {
		return mapUniqueViolation(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the client and prunes dangling assignment edges atomically,
// so a crash can never leave an HR pointing at a vanished client.
func (r *clientRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM hr_client_assignments WHERE client_id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
