package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied at boot and is idempotent. Candidate status carries no
// CHECK constraint: the write path still defaults to "Sourced", a value the
// product-facing enum does not list, and a constraint would reject it.
const schema = `
CREATE TABLE IF NOT EXISTS super_admins (
    id            UUID PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS clients (
    id            UUID PRIMARY KEY,
    name          TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS hrs (
    id            UUID PRIMARY KEY,
    name          TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'Recruiter' CHECK (role IN ('Manager', 'Recruiter')),
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS hr_client_assignments (
    hr_id     UUID NOT NULL REFERENCES hrs(id) ON DELETE CASCADE,
    client_id UUID NOT NULL,
    PRIMARY KEY (hr_id, client_id)
);

CREATE TABLE IF NOT EXISTS job_postings (
    id               UUID PRIMARY KEY,
    client_id        UUID NOT NULL,
    assigned_hr      UUID,
    title            TEXT NOT NULL,
    department       TEXT NOT NULL DEFAULT '',
    location         TEXT NOT NULL DEFAULT '',
    employment_type  TEXT NOT NULL DEFAULT 'Full-time'
                     CHECK (employment_type IN ('Full-time', 'Part-time', 'Contract', 'Internship')),
    experience_level TEXT NOT NULL DEFAULT '',
    salary_min       DOUBLE PRECISION,
    salary_max       DOUBLE PRECISION,
    description      TEXT NOT NULL DEFAULT '',
    deadline         TIMESTAMPTZ,
    status           TEXT NOT NULL DEFAULT 'Open'
                     CHECK (status IN ('Draft', 'Open', 'On Hold', 'Closed', 'Filled')),
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_job_postings_client ON job_postings(client_id);
CREATE INDEX IF NOT EXISTS idx_job_postings_assigned_hr ON job_postings(assigned_hr);

CREATE TABLE IF NOT EXISTS candidates (
    id                  UUID PRIMARY KEY,
    job_id              UUID NOT NULL,
    client_id           UUID NOT NULL,
    name                TEXT NOT NULL,
    email               TEXT NOT NULL,
    phone               TEXT NOT NULL DEFAULT '',
    status              TEXT NOT NULL DEFAULT 'L1 Selected',
    resume_url          TEXT NOT NULL DEFAULT '',
    total_experience    DOUBLE PRECISION NOT NULL DEFAULT 0,
    relevant_experience DOUBLE PRECISION NOT NULL DEFAULT 0,
    current_ctc         DOUBLE PRECISION NOT NULL DEFAULT 0,
    expected_ctc        DOUBLE PRECISION NOT NULL DEFAULT 0,
    current_location    TEXT NOT NULL DEFAULT '',
    preferred_location  TEXT NOT NULL DEFAULT '',
    notice_period       DOUBLE PRECISION NOT NULL DEFAULT 0,
    current_company     TEXT NOT NULL DEFAULT '',
    source              TEXT NOT NULL DEFAULT '',
    remarks             TEXT NOT NULL DEFAULT '',
    created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_candidates_job ON candidates(job_id);
CREATE INDEX IF NOT EXISTS idx_candidates_client ON candidates(client_id);

CREATE TABLE IF NOT EXISTS candidate_activities (
    id            UUID PRIMARY KEY,
    candidate_id  UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
    hr_id         UUID NOT NULL,
    activity_type TEXT NOT NULL,
    notes         TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_candidate_activities_candidate ON candidate_activities(candidate_id);
`

// Migrate applies the schema to the connected database.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
