package domain

import (
	"context"
	"time"
)

type CandidateStatus string

const (
	CandidateL1Selected    CandidateStatus = "L1 Selected"
	CandidateL2Selected    CandidateStatus = "L2 Selected"
	CandidateFinalSelected CandidateStatus = "Final Selected"
	CandidateDocumentation CandidateStatus = "Documentation"
	CandidateOffered       CandidateStatus = "Offered"
	CandidateJoined        CandidateStatus = "Joined"
	CandidateArchive       CandidateStatus = "Archive"
)

// CandidateSourced is the default applied on creation. It is NOT part of the
// declared status set above; product has not reconciled the mismatch, so it
// is kept as a separate value rather than folded into the set.
const CandidateSourced CandidateStatus = "Sourced"

// Activity is an append-only log entry embedded in a candidate.
type Activity struct {
	ID           string    `json:"id"`
	CandidateID  string    `json:"-"`
	HRID         string    `json:"hrId"`
	ActivityType string    `json:"activityType"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Candidate belongs to exactly one JobPosting. ClientID is denormalized from
// the owning job and must always equal it; every scoping check downstream
// depends on that equality.
type Candidate struct {
	ID                 string          `json:"id"`
	JobID              string          `json:"jobId"`
	ClientID           string          `json:"clientId"`
	Name               string          `json:"name"`
	Email              string          `json:"email"`
	Phone              string          `json:"phone"`
	Status             CandidateStatus `json:"status"`
	ResumeURL          string          `json:"resumeUrl"`
	TotalExperience    float64         `json:"totalExperience"`
	RelevantExperience float64         `json:"relevantExperience"`
	CurrentCTC         float64         `json:"currentCtc"`
	ExpectedCTC        float64         `json:"expectedCtc"`
	CurrentLocation    string          `json:"currentLocation"`
	PreferredLocation  string          `json:"preferredLocation"`
	NoticePeriod       float64         `json:"noticePeriod"`
	CurrentCompany     string          `json:"currentCompany"`
	Source             string          `json:"source"`
	Remarks            string          `json:"remarks"`
	Activity           []Activity      `json:"activity"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// CandidateWithRefs adds the job title and client name for list views.
type CandidateWithRefs struct {
	Candidate
	JobTitle   string `json:"jobTitle"`
	ClientName string `json:"clientName"`
}

// CandidatePage is the pagination envelope shared by all paginated candidate
// listings.
type CandidatePage struct {
	Candidates      []CandidateWithRefs `json:"candidates"`
	TotalCandidates int64               `json:"totalCandidates"`
	CurrentPage     int                 `json:"currentPage"`
	TotalPages      int                 `json:"totalPages"`
}

// CandidatePatch carries a partial update; nil fields are left untouched.
type CandidatePatch struct {
	Name               *string          `json:"name"`
	Email              *string          `json:"email"`
	Phone              *string          `json:"phone"`
	Status             *CandidateStatus `json:"status"`
	ResumeURL          *string          `json:"resumeUrl"`
	TotalExperience    *float64         `json:"totalExperience"`
	RelevantExperience *float64         `json:"relevantExperience"`
	CurrentCTC         *float64         `json:"currentCtc"`
	ExpectedCTC        *float64         `json:"expectedCtc"`
	CurrentLocation    *string          `json:"currentLocation"`
	PreferredLocation  *string          `json:"preferredLocation"`
	NoticePeriod       *float64         `json:"noticePeriod"`
	CurrentCompany     *string          `json:"currentCompany"`
	Source             *string          `json:"source"`
	Remarks            *string          `json:"remarks"`
}

type CandidateRepository interface {
	Create(ctx context.Context, candidate *Candidate) error
	GetByID(ctx context.Context, id string) (*Candidate, error)
	FetchByJob(ctx context.Context, jobID string) ([]Candidate, error)
	Update(ctx context.Context, candidate *Candidate) error
	UpdateStatus(ctx context.Context, id string, status CandidateStatus) error
	UpdateRemarks(ctx context.Context, id string, remarks string) error
	// FetchPage lists all candidates newest first with an optional status
	// filter, enriched with job title and client name.
	FetchPage(ctx context.Context, status CandidateStatus, limit, offset int) ([]CandidateWithRefs, int64, error)
	FetchPageByJob(ctx context.Context, jobID string, status CandidateStatus, limit, offset int) ([]CandidateWithRefs, int64, error)
	// Search does case-insensitive substring matching on name OR email.
	Search(ctx context.Context, term string) ([]CandidateWithRefs, error)
	SearchInJob(ctx context.Context, jobID, term string, status CandidateStatus) ([]Candidate, error)
	Count(ctx context.Context) (int64, error)
	AppendActivity(ctx context.Context, activity *Activity) error
}
