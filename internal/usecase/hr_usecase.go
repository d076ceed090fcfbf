package usecase

import (
	"context"
	"math"
	"strings"
	"time"

	"hrms-backend/internal/domain"
	"hrms-backend/pkg/apperror"

	"github.com/google/uuid"
)

type hrUsecase struct {
	clientRepo    domain.ClientRepository
	hrRepo        domain.HRRepository
	jobRepo       domain.JobRepository
	candidateRepo domain.CandidateRepository
}

func NewHRUsecase(
	clientRepo domain.ClientRepository,
	hrRepo domain.HRRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
) domain.HRUsecase {
	return &hrUsecase{
		clientRepo:    clientRepo,
		hrRepo:        hrRepo,
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
	}
}

// requireClientAccess walks the assignment graph. Managers pass for any
// client; Recruiters only for assigned ones. The switch is exhaustive over
// the closed role set.
func requireClientAccess(caller *domain.HR, clientID, message string) error {
	switch caller.Role {
	case domain.RoleManager:
		return nil
	case domain.RoleRecruiter:
		if caller.CanAccessClient(clientID) {
			return nil
		}
		return apperror.Forbidden(message)
	default:
		return apperror.Forbidden(message)
	}
}

func (u *hrUsecase) AllClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := u.clientRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	stripClientHashes(clients)
	return clients, nil
}

func (u *hrUsecase) AssignedClients(ctx context.Context, caller *domain.HR) ([]domain.Client, error) {
	clients, err := u.clientRepo.FetchByIDs(ctx, caller.AssignedClientIDs)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	stripClientHashes(clients)
	return clients, nil
}

func (u *hrUsecase) AllHRs(ctx context.Context) ([]domain.HR, error) {
	hrs, err := u.hrRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	stripHRHashes(hrs)
	return hrs, nil
}

func (u *hrUsecase) AllRecruiters(ctx context.Context) ([]domain.HR, error) {
	recruiters, err := u.hrRepo.FetchByRole(ctx, domain.RoleRecruiter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	stripHRHashes(recruiters)
	return recruiters, nil
}

func (u *hrUsecase) AssignClientToRecruiter(ctx context.Context, recruiterID, clientID string) (string, error) {
	if recruiterID == "" || clientID == "" {
		return "", apperror.BadRequest("Recruiter ID and Client ID are required.")
	}

	recruiter, err := u.hrRepo.GetByID(ctx, recruiterID)
	if err != nil {
		return "", notFoundOrInternal(err, "Recruiter not found.")
	}
	if recruiter.Role != domain.RoleRecruiter {
		return "", apperror.BadRequest("Can only assign clients to Recruiters.")
	}

	if err := u.hrRepo.AssignClient(ctx, recruiterID, clientID); err != nil {
		return "", apperror.Internal(err)
	}
	return recruiter.Name, nil
}

func (u *hrUsecase) JobsByClient(ctx context.Context, caller *domain.HR, clientID string) ([]domain.JobSummary, error) {
	if err := requireClientAccess(caller, clientID, "Forbidden: You are not assigned to this client."); err != nil {
		return nil, err
	}

	jobs, err := u.jobRepo.FetchOpenByClient(ctx, clientID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *hrUsecase) AllJobs(ctx context.Context, caller *domain.HR) ([]domain.JobWithRelations, error) {
	var (
		jobs []domain.JobWithRelations
		err  error
	)
	switch caller.Role {
	case domain.RoleManager:
		jobs, err = u.jobRepo.FetchAll(ctx)
	default:
		jobs, err = u.jobRepo.FetchByClientIDs(ctx, caller.AssignedClientIDs)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *hrUsecase) CreateJob(ctx context.Context, req domain.CreateJobRequest) (*domain.JobPosting, error) {
	if req.ClientID == "" || req.Title == "" || req.Department == "" || req.AssignedHR == "" || req.ExperienceLevel == "" {
		return nil, apperror.BadRequest("Missing required fields.")
	}

	employmentType := req.EmploymentType
	if employmentType == "" {
		employmentType = domain.EmploymentFullTime
	}

	var deadline *time.Time
	if req.Deadline != nil && *req.Deadline != "" {
		parsed, err := time.Parse(time.RFC3339, *req.Deadline)
		if err != nil {
			parsed, err = time.Parse("2006-01-02", *req.Deadline)
		}
		if err != nil {
			return nil, apperror.BadRequest("Invalid deadline format")
		}
		deadline = &parsed
	}

	assignedHR := req.AssignedHR
	job := &domain.JobPosting{
		ID:              uuid.NewString(),
		ClientID:        req.ClientID,
		AssignedHR:      &assignedHR,
		Title:           req.Title,
		Department:      req.Department,
		Location:        req.Location,
		EmploymentType:  employmentType,
		ExperienceLevel: req.ExperienceLevel,
		Salary:          domain.Salary{Min: req.SalaryMin, Max: req.SalaryMax},
		Description:     req.Description,
		Deadline:        deadline,
		Status:          domain.JobStatusOpen,
		CreatedAt:       time.Now(),
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *hrUsecase) UpdateJob(ctx context.Context, jobID string, patch domain.JobPatch) (*domain.JobPosting, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, notFoundOrInternal(err, "Job not found")
	}

	if patch.Title != nil {
		job.Title = *patch.Title
	}
	if patch.Department != nil {
		job.Department = *patch.Department
	}
	if patch.Location != nil {
		job.Location = *patch.Location
	}
	if patch.EmploymentType != nil {
		job.EmploymentType = *patch.EmploymentType
	}
	if patch.ExperienceLevel != nil {
		job.ExperienceLevel = *patch.ExperienceLevel
	}
	if patch.SalaryMin != nil {
		job.Salary.Min = patch.SalaryMin
	}
	if patch.SalaryMax != nil {
		job.Salary.Max = patch.SalaryMax
	}
	if patch.Description != nil {
		job.Description = *patch.Description
	}
	if patch.Deadline != nil {
		job.Deadline = patch.Deadline
	}
	if patch.Status != nil {
		job.Status = *patch.Status
	}
	if patch.AssignedHR != nil {
		job.AssignedHR = patch.AssignedHR
	}

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, notFoundOrInternal(err, "Job not found")
	}
	return job, nil
}

func (u *hrUsecase) DeleteJob(ctx context.Context, jobID string) error {
	if err := u.jobRepo.DeleteCascade(ctx, jobID); err != nil {
		return notFoundOrInternal(err, "Job not found")
	}
	return nil
}

// CreateCandidate resolves the target posting by (title, clientId) and
// derives both jobId and clientId from the resolved job, which is what keeps
// the candidate's denormalized clientId consistent with its job.
func (u *hrUsecase) CreateCandidate(ctx context.Context, caller *domain.HR, req domain.CreateCandidateRequest) (*domain.Candidate, error) {
	if req.FirstName == "" || req.Email == "" || req.JobTitle == "" || req.ClientID == "" {
		return nil, apperror.BadRequest("Missing required fields")
	}

	if err := requireClientAccess(caller, req.ClientID, "Forbidden: You are not assigned to this client"); err != nil {
		return nil, err
	}

	job, err := u.jobRepo.GetByTitleAndClient(ctx, req.JobTitle, req.ClientID)
	if err != nil {
		return nil, notFoundOrInternal(err, "Job role not found for the selected client")
	}

	status := req.Status
	if status == "" {
		status = domain.CandidateSourced
	}

	now := time.Now()
	candidate := &domain.Candidate{
		ID:                 uuid.NewString(),
		JobID:              job.ID,
		ClientID:           job.ClientID,
		Name:               strings.TrimSpace(req.FirstName + " " + req.LastName),
		Email:              req.Email,
		Phone:              req.Phone,
		Status:             status,
		ResumeURL:          req.ResumeURL,
		TotalExperience:    req.TotalExperience,
		RelevantExperience: req.RelevantExperience,
		CurrentCTC:         req.CurrentCTC,
		ExpectedCTC:        req.ExpectedCTC,
		CurrentLocation:    req.CurrentLocation,
		PreferredLocation:  req.PreferredLocation,
		NoticePeriod:       req.NoticePeriod,
		CurrentCompany:     req.CurrentCompany,
		Source:             req.Source,
		Remarks:            req.Remarks,
		Activity:           []domain.Activity{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := u.candidateRepo.Create(ctx, candidate); err != nil {
		return nil, apperror.Internal(err)
	}
	return candidate, nil
}

func (u *hrUsecase) UpdateCandidate(ctx context.Context, caller *domain.HR, candidateID string, patch domain.CandidatePatch) (*domain.Candidate, error) {
	candidate, err := u.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, notFoundOrInternal(err, "Candidate not found")
	}

	if err := requireClientAccess(caller, candidate.ClientID, "Forbidden: You cannot edit this candidate"); err != nil {
		return nil, err
	}

	applyCandidatePatch(candidate, patch)

	if err := u.candidateRepo.Update(ctx, candidate); err != nil {
		return nil, notFoundOrInternal(err, "Candidate not found")
	}
	return candidate, nil
}

func applyCandidatePatch(c *domain.Candidate, patch domain.CandidatePatch) {
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.ResumeURL != nil {
		c.ResumeURL = *patch.ResumeURL
	}
	if patch.TotalExperience != nil {
		c.TotalExperience = *patch.TotalExperience
	}
	if patch.RelevantExperience != nil {
		c.RelevantExperience = *patch.RelevantExperience
	}
	if patch.CurrentCTC != nil {
		c.CurrentCTC = *patch.CurrentCTC
	}
	if patch.ExpectedCTC != nil {
		c.ExpectedCTC = *patch.ExpectedCTC
	}
	if patch.CurrentLocation != nil {
		c.CurrentLocation = *patch.CurrentLocation
	}
	if patch.PreferredLocation != nil {
		c.PreferredLocation = *patch.PreferredLocation
	}
	if patch.NoticePeriod != nil {
		c.NoticePeriod = *patch.NoticePeriod
	}
	if patch.CurrentCompany != nil {
		c.CurrentCompany = *patch.CurrentCompany
	}
	if patch.Source != nil {
		c.Source = *patch.Source
	}
	if patch.Remarks != nil {
		c.Remarks = *patch.Remarks
	}
}

func (u *hrUsecase) UpdateCandidateStatus(ctx context.Context, caller *domain.HR, candidateID string, status domain.CandidateStatus) (*domain.Candidate, error) {
	if status == "" {
		return nil, apperror.BadRequest("Status is required")
	}

	candidate, err := u.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, notFoundOrInternal(err, "Candidate not found")
	}

	if err := requireClientAccess(caller, candidate.ClientID, "Forbidden: You cannot update this candidate"); err != nil {
		return nil, err
	}

	if err := u.candidateRepo.UpdateStatus(ctx, candidateID, status); err != nil {
		return nil, notFoundOrInternal(err, "Candidate not found")
	}

	// Status transitions are free-form; the activity log records who moved
	// the candidate, it does not gate the move.
	entry := &domain.Activity{
		ID:           uuid.NewString(),
		CandidateID:  candidateID,
		HRID:         caller.ID,
		ActivityType: "Status Change",
		Notes:        string(candidate.Status) + " -> " + string(status),
		CreatedAt:    time.Now(),
	}
	if err := u.candidateRepo.AppendActivity(ctx, entry); err != nil {
		return nil, apperror.Internal(err)
	}

	candidate.Status = status
	candidate.Activity = append(candidate.Activity, *entry)
	return candidate, nil
}

func (u *hrUsecase) AllCandidates(ctx context.Context, page, limit int, status domain.CandidateStatus) (*domain.CandidatePage, error) {
	page, limit = normalizePage(page, limit)
	offset := (page - 1) * limit

	candidates, total, err := u.candidateRepo.FetchPage(ctx, status, limit, offset)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.CandidatePage{
		Candidates:      candidates,
		TotalCandidates: total,
		CurrentPage:     page,
		TotalPages:      totalPages(total, limit),
	}, nil
}

func (u *hrUsecase) CandidatesByJob(ctx context.Context, caller *domain.HR, jobID string, page, limit int, status domain.CandidateStatus) (*domain.CandidatePage, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, notFoundOrInternal(err, "Job not found")
	}
	if err := requireClientAccess(caller, job.ClientID, "Forbidden: You are not assigned to this job's client."); err != nil {
		return nil, err
	}

	page, limit = normalizePage(page, limit)
	offset := (page - 1) * limit

	candidates, total, err := u.candidateRepo.FetchPageByJob(ctx, jobID, status, limit, offset)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.CandidatePage{
		Candidates:      candidates,
		TotalCandidates: total,
		CurrentPage:     page,
		TotalPages:      totalPages(total, limit),
	}, nil
}

// SearchCandidates short-circuits on blank input: no store round trip for an
// empty query.
func (u *hrUsecase) SearchCandidates(ctx context.Context, term string) ([]domain.CandidateWithRefs, error) {
	if strings.TrimSpace(term) == "" {
		return []domain.CandidateWithRefs{}, nil
	}

	candidates, err := u.candidateRepo.Search(ctx, term)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return candidates, nil
}

func (u *hrUsecase) SearchCandidatesInJob(ctx context.Context, caller *domain.HR, jobID, term string, status domain.CandidateStatus) ([]domain.Candidate, error) {
	if strings.TrimSpace(term) == "" {
		return []domain.Candidate{}, nil
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, notFoundOrInternal(err, "Job not found")
	}
	if err := requireClientAccess(caller, job.ClientID, "Forbidden"); err != nil {
		return nil, err
	}

	candidates, err := u.candidateRepo.SearchInJob(ctx, jobID, term, status)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return candidates, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	return int(math.Ceil(float64(total) / float64(limit)))
}
