package domain

import (
	"context"
	"time"
)

type JobStatus string

const (
	JobStatusDraft  JobStatus = "Draft"
	JobStatusOpen   JobStatus = "Open"
	JobStatusOnHold JobStatus = "On Hold"
	JobStatusClosed JobStatus = "Closed"
	JobStatusFilled JobStatus = "Filled"
)

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "Full-time"
	EmploymentPartTime   EmploymentType = "Part-time"
	EmploymentContract   EmploymentType = "Contract"
	EmploymentInternship EmploymentType = "Internship"
)

type Salary struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// JobPosting is owned by exactly one Client and optionally assigned to one HR.
type JobPosting struct {
	ID              string         `json:"id"`
	ClientID        string         `json:"clientId"`
	AssignedHR      *string        `json:"assignedHr"`
	Title           string         `json:"title"`
	Department      string         `json:"department"`
	Location        string         `json:"location"`
	EmploymentType  EmploymentType `json:"employmentType"`
	ExperienceLevel string         `json:"experienceLevel"`
	Salary          Salary         `json:"salary"`
	Description     string         `json:"description"`
	Deadline        *time.Time     `json:"deadline"`
	Status          JobStatus      `json:"status"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// JobWithRelations enriches a posting with the owning client's name and the
// assigned HR's public fields for the Manager job list.
type JobWithRelations struct {
	JobPosting
	ClientName      string  `json:"clientName"`
	AssignedHRName  *string `json:"assignedHrName"`
	AssignedHREmail *string `json:"assignedHrEmail"`
}

// JobWithCandidateCount is the Client-facing shape: a live candidate count
// plus the assigned HR stripped of password and assignment list.
type JobWithCandidateCount struct {
	JobPosting
	CandidateCount  int64   `json:"candidateCount"`
	AssignedHRName  *string `json:"assignedHrName"`
	AssignedHREmail *string `json:"assignedHrEmail"`
}

// JobSummary is the minimal shape returned when an HR browses a client's
// open roles.
type JobSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
}

// JobPatch carries a partial update; nil fields are left untouched.
type JobPatch struct {
	Title           *string         `json:"title"`
	Department      *string         `json:"department"`
	Location        *string         `json:"location"`
	EmploymentType  *EmploymentType `json:"employmentType"`
	ExperienceLevel *string         `json:"experienceLevel"`
	SalaryMin       *float64        `json:"salaryMin"`
	SalaryMax       *float64        `json:"salaryMax"`
	Description     *string         `json:"description"`
	Deadline        *time.Time      `json:"deadline"`
	Status          *JobStatus      `json:"status"`
	AssignedHR      *string         `json:"assignedHr"`
}

type JobRepository interface {
	Create(ctx context.Context, job *JobPosting) error
	GetByID(ctx context.Context, id string) (*JobPosting, error)
	// GetByTitleAndClient resolves the posting a candidate is created
	// against; candidate creation keys on (title, clientId), not job id.
	GetByTitleAndClient(ctx context.Context, title, clientID string) (*JobPosting, error)
	FetchAll(ctx context.Context) ([]JobWithRelations, error)
	FetchByClientIDs(ctx context.Context, clientIDs []string) ([]JobWithRelations, error)
	FetchOpenByClient(ctx context.Context, clientID string) ([]JobSummary, error)
	FetchByClientWithCounts(ctx context.Context, clientID string) ([]JobWithCandidateCount, error)
	Update(ctx context.Context, job *JobPosting) error
	// DeleteCascade removes the posting and every candidate referencing it
	// in one transaction.
	DeleteCascade(ctx context.Context, id string) error
}
