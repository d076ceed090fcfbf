package domain

import "context"

// AuthUser is the public account shape returned at login and attached to the
// request context by the auth gates.
type AuthUser struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type LoginResult struct {
	AccessToken string   `json:"accessToken"`
	User        AuthUser `json:"user"`
}

type AuthUsecase interface {
	LoginSuperAdmin(ctx context.Context, email, password string) (*LoginResult, error)
	LoginHR(ctx context.Context, email, password string) (*LoginResult, error)
	LoginClient(ctx context.Context, email, password string) (*LoginResult, error)
	// Account resolution for the auth gates; password hash stripped.
	GetSuperAdmin(ctx context.Context, id string) (*SuperAdmin, error)
	GetHR(ctx context.Context, id string) (*HR, error)
	GetClient(ctx context.Context, id string) (*Client, error)
}

type DashboardData struct {
	SuperAdmin AuthUser       `json:"superadmin"`
	Stats      DashboardStats `json:"stats"`
	Clients    []Client       `json:"clients"`
	HRs        []HR           `json:"hrs"`
}

type DashboardStats struct {
	TotalClients    int   `json:"totalClients"`
	TotalHRs        int   `json:"totalHRs"`
	TotalCandidates int64 `json:"totalCandidates"`
}

type CreateHRRequest struct {
	Name     string `json:"name" binding:"required,valid_name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     HRRole `json:"role" binding:"omitempty,oneof=Manager Recruiter"`
}

type CreateClientRequest struct {
	Name     string `json:"name" binding:"required,valid_name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AccountPatch is the SuperAdmin partial account update; a non-nil Password
// is re-hashed before storage.
type AccountPatch struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *HRRole `json:"role"`
}

type SuperAdminUsecase interface {
	Dashboard(ctx context.Context, caller *SuperAdmin) (*DashboardData, error)
	CreateHR(ctx context.Context, req CreateHRRequest) (*HR, error)
	CreateClient(ctx context.Context, req CreateClientRequest) (*Client, error)
	AssignClientToHR(ctx context.Context, hrID, clientID string) error
	// accountType is the URL path segment: "hrs" or "clients".
	UpdateAccount(ctx context.Context, accountType, id string, patch AccountPatch) (any, error)
	DeleteAccount(ctx context.Context, accountType, id string) error
}

type CreateJobRequest struct {
	ClientID        string         `json:"clientId" binding:"required"`
	Title           string         `json:"title" binding:"required"`
	Department      string         `json:"department" binding:"required"`
	Location        string         `json:"location"`
	EmploymentType  EmploymentType `json:"employmentType" binding:"omitempty,oneof=Full-time Part-time Contract Internship"`
	ExperienceLevel string         `json:"experienceLevel" binding:"required"`
	SalaryMin       *float64       `json:"salaryMin"`
	SalaryMax       *float64       `json:"salaryMax"`
	Deadline        *string        `json:"deadline"`
	Description     string         `json:"description"`
	AssignedHR      string         `json:"assignedHr" binding:"required"`
}

type CreateCandidateRequest struct {
	FirstName          string          `json:"firstName" binding:"required,valid_name"`
	LastName           string          `json:"lastName" binding:"omitempty,valid_name"`
	Email              string          `json:"email" binding:"required,email"`
	Phone              string          `json:"phone" binding:"omitempty,valid_phone"`
	JobTitle           string          `json:"jobTitle" binding:"required"`
	ClientID           string          `json:"clientId" binding:"required"`
	TotalExperience    float64         `json:"totalExperience"`
	RelevantExperience float64         `json:"relevantExperience"`
	CurrentCTC         float64         `json:"currentCtc"`
	ExpectedCTC        float64         `json:"expectedCtc"`
	CurrentLocation    string          `json:"currentLocation"`
	PreferredLocation  string          `json:"preferredLocation"`
	NoticePeriod       float64         `json:"noticePeriod"`
	CurrentCompany     string          `json:"currentCompany"`
	Source             string          `json:"source"`
	Status             CandidateStatus `json:"status"`
	Remarks            string          `json:"remarks"`
	ResumeURL          string          `json:"-"`
}

type HRUsecase interface {
	// Client visibility
	AllClients(ctx context.Context) ([]Client, error)
	AssignedClients(ctx context.Context, caller *HR) ([]Client, error)
	AllHRs(ctx context.Context) ([]HR, error)
	AllRecruiters(ctx context.Context) ([]HR, error)
	AssignClientToRecruiter(ctx context.Context, recruiterID, clientID string) (string, error)

	// Jobs
	JobsByClient(ctx context.Context, caller *HR, clientID string) ([]JobSummary, error)
	AllJobs(ctx context.Context, caller *HR) ([]JobWithRelations, error)
	CreateJob(ctx context.Context, req CreateJobRequest) (*JobPosting, error)
	UpdateJob(ctx context.Context, jobID string, patch JobPatch) (*JobPosting, error)
	DeleteJob(ctx context.Context, jobID string) error

	// Candidates
	CreateCandidate(ctx context.Context, caller *HR, req CreateCandidateRequest) (*Candidate, error)
	UpdateCandidate(ctx context.Context, caller *HR, candidateID string, patch CandidatePatch) (*Candidate, error)
	UpdateCandidateStatus(ctx context.Context, caller *HR, candidateID string, status CandidateStatus) (*Candidate, error)
	AllCandidates(ctx context.Context, page, limit int, status CandidateStatus) (*CandidatePage, error)
	CandidatesByJob(ctx context.Context, caller *HR, jobID string, page, limit int, status CandidateStatus) (*CandidatePage, error)
	SearchCandidates(ctx context.Context, term string) ([]CandidateWithRefs, error)
	SearchCandidatesInJob(ctx context.Context, caller *HR, jobID, term string, status CandidateStatus) ([]Candidate, error)
}

type ClientUsecase interface {
	Jobs(ctx context.Context, caller *Client) ([]JobWithCandidateCount, error)
	CandidatesForJob(ctx context.Context, caller *Client, jobID string) ([]Candidate, error)
	UpdateCandidateStatus(ctx context.Context, caller *Client, candidateID string, status CandidateStatus) (*Candidate, error)
	UpdateCandidateRemarks(ctx context.Context, caller *Client, candidateID, remarks string) (*Candidate, error)
}

type ResumeUsecase interface {
	// ExtractText pulls plain text out of an uploaded resume file.
	ExtractText(path, mimeType string) (string, error)
}
