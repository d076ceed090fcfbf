package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"hrms-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

const candidateColumns = `id, job_id, client_id, name, email, phone, status, resume_url,
	total_experience, relevant_experience, current_ctc, expected_ctc,
	current_location, preferred_location, notice_period, current_company,
	source, remarks, created_at, updated_at`

func (r *candidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `INSERT INTO candidates (` + candidateColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.db.Exec(ctx, query,
		candidate.ID, candidate.JobID, candidate.ClientID, candidate.Name, strings.ToLower(candidate.Email),
		candidate.Phone, candidate.Status, candidate.ResumeURL,
		candidate.TotalExperience, candidate.RelevantExperience, candidate.CurrentCTC, candidate.ExpectedCTC,
		candidate.CurrentLocation, candidate.PreferredLocation, candidate.NoticePeriod, candidate.CurrentCompany,
		candidate.Source, candidate.Remarks, candidate.CreatedAt, candidate.UpdatedAt,
	)
	return err
}

func scanCandidate(row pgx.Row, c *domain.Candidate) error {
	return row.Scan(
		&c.ID, &c.JobID, &c.ClientID, &c.Name, &c.Email, &c.Phone, &c.Status, &c.ResumeURL,
		&c.TotalExperience, &c.RelevantExperience, &c.CurrentCTC, &c.ExpectedCTC,
		&c.CurrentLocation, &c.PreferredLocation, &c.NoticePeriod, &c.CurrentCompany,
		&c.Source, &c.Remarks, &c.CreatedAt, &c.UpdatedAt,
	)
}

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	var candidate domain.Candidate
	err := scanCandidate(r.db.QueryRow(ctx, query, id), &candidate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	activity, err := r.fetchActivity(ctx, id)
	if err != nil {
		return nil, err
	}
	candidate.Activity = activity
	return &candidate, nil
}

func (r *candidateRepo) fetchActivity(ctx context.Context, candidateID string) ([]domain.Activity, error) {
	query := `SELECT id, candidate_id, hr_id, activity_type, notes, created_at
	          FROM candidate_activities WHERE candidate_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activity := []domain.Activity{}
	for rows.Next() {
		var entry domain.Activity
		if err := rows.Scan(&entry.ID, &entry.CandidateID, &entry.HRID, &entry.ActivityType, &entry.Notes, &entry.CreatedAt); err != nil {
			return nil, err
		}
		activity = append(activity, entry)
	}
	return activity, rows.Err()
}

func (r *candidateRepo) FetchByJob(ctx context.Context, jobID string) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE job_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCandidates(rows)
}

func scanCandidates(rows pgx.Rows) ([]domain.Candidate, error) {
	candidates := []domain.Candidate{}
	for rows.Next() {
		var candidate domain.Candidate
		if err := scanCandidate(rows, &candidate); err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}
	return candidates, rows.Err()
}

func (r *candidateRepo) Update(ctx context.Context, candidate *domain.Candidate) error {
	query := `UPDATE candidates SET
		name = $2, email = $3, phone = $4, status = $5, resume_url = $6,
		total_experience = $7, relevant_experience = $8, current_ctc = $9, expected_ctc = $10,
		current_location = $11, preferred_location = $12, notice_period = $13, current_company = $14,
		source = $15, remarks = $16, updated_at = $17
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		candidate.ID, candidate.Name, strings.ToLower(candidate.Email), candidate.Phone, candidate.Status, candidate.ResumeURL,
		candidate.TotalExperience, candidate.RelevantExperience, candidate.CurrentCTC, candidate.ExpectedCTC,
		candidate.CurrentLocation, candidate.PreferredLocation, candidate.NoticePeriod, candidate.CurrentCompany,
		candidate.Source, candidate.Remarks, time.Now(),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) UpdateStatus(ctx context.Context, id string, status domain.CandidateStatus) error {
	result, err := r.db.Exec(ctx, `UPDATE candidates SET status = $2, updated_at = $3 WHERE id = $1`, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) UpdateRemarks(ctx context.Context, id string, remarks string) error {
	result, err := r.db.Exec(ctx, `UPDATE candidates SET remarks = $2, updated_at = $3 WHERE id = $1`, id, remarks, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const selectCandidateWithRefs = `
	SELECT cd.id, cd.job_id, cd.client_id, cd.name, cd.email, cd.phone, cd.status, cd.resume_url,
	       cd.total_experience, cd.relevant_experience, cd.current_ctc, cd.expected_ctc,
	       cd.current_location, cd.preferred_location, cd.notice_period, cd.current_company,
	       cd.source, cd.remarks, cd.created_at, cd.updated_at,
	       COALESCE(j.title, '') AS job_title, COALESCE(c.name, '') AS client_name
	FROM candidates cd
	LEFT JOIN job_postings j ON j.id = cd.job_id
	LEFT JOIN clients c ON c.id = cd.client_id`

func scanCandidatesWithRefs(rows pgx.Rows) ([]domain.CandidateWithRefs, error) {
	candidates := []domain.CandidateWithRefs{}
	for rows.Next() {
		var candidate domain.CandidateWithRefs
		if err := rows.Scan(
			&candidate.ID, &candidate.JobID, &candidate.ClientID, &candidate.Name, &candidate.Email,
			&candidate.Phone, &candidate.Status, &candidate.ResumeURL,
			&candidate.TotalExperience, &candidate.RelevantExperience, &candidate.CurrentCTC, &candidate.ExpectedCTC,
			&candidate.CurrentLocation, &candidate.PreferredLocation, &candidate.NoticePeriod, &candidate.CurrentCompany,
			&candidate.Source, &candidate.Remarks, &candidate.CreatedAt, &candidate.UpdatedAt,
			&candidate.JobTitle, &candidate.ClientName,
		); err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}
	return candidates, rows.Err()
}

func (r *candidateRepo) FetchPage(ctx context.Context, status domain.CandidateStatus, limit, offset int) ([]domain.CandidateWithRefs, int64, error) {
	where := ``
	countQuery := `SELECT COUNT(*) FROM candidates`
	args := []any{limit, offset}
	if status != "" {
		where = ` WHERE cd.status = $3`
		countQuery += ` WHERE status = $1`
	}

	rows, err := r.db.Query(ctx, selectCandidateWithRefs+where+` ORDER BY cd.created_at DESC LIMIT $1 OFFSET $2`,
		append(args, statusArgs(status)...)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	candidates, err := scanCandidatesWithRefs(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, statusArgs(status)...).Scan(&total); err != nil {
		return nil, 0, err
	}
	return candidates, total, nil
}

func statusArgs(status domain.CandidateStatus) []any {
	if status == "" {
		return nil
	}
	return []any{status}
}

func (r *candidateRepo) FetchPageByJob(ctx context.Context, jobID string, status domain.CandidateStatus, limit, offset int) ([]domain.CandidateWithRefs, int64, error) {
	where := ` WHERE cd.job_id = $3`
	countQuery := `SELECT COUNT(*) FROM candidates WHERE job_id = $1`
	args := []any{limit, offset, jobID}
	countArgs := []any{jobID}
	if status != "" {
		where += ` AND cd.status = $4`
		countQuery += ` AND status = $2`
		args = append(args, status)
		countArgs = append(countArgs, status)
	}

	rows, err := r.db.Query(ctx, selectCandidateWithRefs+where+` ORDER BY cd.created_at DESC LIMIT $1 OFFSET $2`, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	candidates, err := scanCandidatesWithRefs(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	return candidates, total, nil
}

// likePattern escapes LIKE metacharacters so the term matches literally.
func likePattern(term string) string {
	escaper := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + escaper.Replace(term) + "%"
}

func (r *candidateRepo) Search(ctx context.Context, term string) ([]domain.CandidateWithRefs, error) {
	query := selectCandidateWithRefs + ` WHERE cd.name ILIKE $1 OR cd.email ILIKE $1 ORDER BY cd.created_at DESC`
	rows, err := r.db.Query(ctx, query, likePattern(term))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCandidatesWithRefs(rows)
}

func (r *candidateRepo) SearchInJob(ctx context.Context, jobID, term string, status domain.CandidateStatus) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates
	          WHERE job_id = $1 AND (name ILIKE $2 OR email ILIKE $2)`
	args := []any{jobID, likePattern(term)}
	if status != "" {
		query += ` AND status = $3`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCandidates(rows)
}

func (r *candidateRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&total)
	return total, err
}

func (r *candidateRepo) AppendActivity(ctx context.Context, activity *domain.Activity) error {
	query := `INSERT INTO candidate_activities (id, candidate_id, hr_id, activity_type, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		activity.ID, activity.CandidateID, activity.HRID, activity.ActivityType, activity.Notes, activity.CreatedAt)
	return err
}
