package postgres

import (
	"context"
	"errors"

	"hrms-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, client_id, assigned_hr, title, department, location, employment_type, experience_level,
	salary_min, salary_max, description, deadline, status, created_at`

func (r *jobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	query := `INSERT INTO job_postings (` + jobColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.ClientID, job.AssignedHR, job.Title, job.Department, job.Location,
		job.EmploymentType, job.ExperienceLevel, job.Salary.Min, job.Salary.Max,
		job.Description, job.Deadline, job.Status, job.CreatedAt,
	)
	return err
}

func scanJob(row pgx.Row, job *domain.JobPosting) error {
	return row.Scan(
		&job.ID, &job.ClientID, &job.AssignedHR, &job.Title, &job.Department, &job.Location,
		&job.EmploymentType, &job.ExperienceLevel, &job.Salary.Min, &job.Salary.Max,
		&job.Description, &job.Deadline, &job.Status, &job.CreatedAt,
	)
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE id = $1`
	var job domain.JobPosting
	err := scanJob(r.db.QueryRow(ctx, query, id), &job)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) GetByTitleAndClient(ctx context.Context, title, clientID string) (*domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE title = $1 AND client_id = $2 LIMIT 1`
	var job domain.JobPosting
	err := scanJob(r.db.QueryRow(ctx, query, title, clientID), &job)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

const selectJobWithRelations = `
	SELECT j.id, j.client_id, j.assigned_hr, j.title, j.department, j.location, j.employment_type,
	       j.experience_level, j.salary_min, j.salary_max, j.description, j.deadline, j.status, j.created_at,
	       COALESCE(c.name, '') AS client_name, h.name, h.email
	FROM job_postings j
	LEFT JOIN clients c ON c.id = j.client_id
	LEFT JOIN hrs h ON h.id = j.assigned_hr`

func (r *jobRepo) fetchWithRelations(ctx context.Context, query string, args ...any) ([]domain.JobWithRelations, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.JobWithRelations{}
	for rows.Next() {
		var job domain.JobWithRelations
		if err := rows.Scan(
			&job.ID, &job.ClientID, &job.AssignedHR, &job.Title, &job.Department, &job.Location,
			&job.EmploymentType, &job.ExperienceLevel, &job.Salary.Min, &job.Salary.Max,
			&job.Description, &job.Deadline, &job.Status, &job.CreatedAt,
			&job.ClientName, &job.AssignedHRName, &job.AssignedHREmail,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) FetchAll(ctx context.Context) ([]domain.JobWithRelations, error) {
	return r.fetchWithRelations(ctx, selectJobWithRelations+` ORDER BY j.created_at DESC`)
}

func (r *jobRepo) FetchByClientIDs(ctx context.Context, clientIDs []string) ([]domain.JobWithRelations, error) {
	if len(clientIDs) == 0 {
		return []domain.JobWithRelations{}, nil
	}
	query := selectJobWithRelations + ` WHERE j.client_id = ANY($1) ORDER BY j.created_at DESC`
	return r.fetchWithRelations(ctx, query, clientIDs)
}

func (r *jobRepo) FetchOpenByClient(ctx context.Context, clientID string) ([]domain.JobSummary, error) {
	query := `SELECT id, title, location FROM job_postings WHERE client_id = $1 AND status = 'Open' ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.JobSummary{}
	for rows.Next() {
		var job domain.JobSummary
		if err := rows.Scan(&job.ID, &job.Title, &job.Location); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// FetchByClientWithCounts is the client dashboard query: each posting with a
// live candidate count and the assigned HR's public fields only.
func (r *jobRepo) FetchByClientWithCounts(ctx context.Context, clientID string) ([]domain.JobWithCandidateCount, error) {
	query := `
		SELECT j.id, j.client_id, j.assigned_hr, j.title, j.department, j.location, j.employment_type,
		       j.experience_level, j.salary_min, j.salary_max, j.description, j.deadline, j.status, j.created_at,
		       (SELECT COUNT(*) FROM candidates cd WHERE cd.job_id = j.id) AS candidate_count,
		       h.name, h.email
		FROM job_postings j
		LEFT JOIN hrs h ON h.id = j.assigned_hr
		WHERE j.client_id = $1
		ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.JobWithCandidateCount{}
	for rows.Next() {
		var job domain.JobWithCandidateCount
		if err := rows.Scan(
			&job.ID, &job.ClientID, &job.AssignedHR, &job.Title, &job.Department, &job.Location,
			&job.EmploymentType, &job.ExperienceLevel, &job.Salary.Min, &job.Salary.Max,
			&job.Description, &job.Deadline, &job.Status, &job.CreatedAt,
			&job.CandidateCount, &job.AssignedHRName, &job.AssignedHREmail,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	query := `UPDATE job_postings SET
		client_id = $2,
		assigned_hr = $3,
		title = $4,
		department = $5,
		location = $6,
		employment_type = $7,
		experience_level = $8,
		salary_min = $9,
		salary_max = $10,
		description = $11,
		deadline = $12,
		status = $13
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.ClientID, job.AssignedHR, job.Title, job.Department, job.Location,
		job.EmploymentType, job.ExperienceLevel, job.Salary.Min, job.Salary.Max,
		job.Description, job.Deadline, job.Status,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteCascade removes the posting and its candidates in one transaction.
// The two deletes are never visible half-applied.
func (r *jobRepo) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM candidates WHERE job_id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
