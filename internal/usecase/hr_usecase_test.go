package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hrms-backend/internal/domain"
	"hrms-backend/internal/usecase"
	"hrms-backend/pkg/apperror"
)

func newHRFixture() (*MockClientRepo, *MockHRRepo, *MockJobRepo, *MockCandidateRepo, domain.HRUsecase) {
	clientRepo := new(MockClientRepo)
	hrRepo := new(MockHRRepo)
	jobRepo := new(MockJobRepo)
	candidateRepo := new(MockCandidateRepo)
	uc := usecase.NewHRUsecase(clientRepo, hrRepo, jobRepo, candidateRepo)
	return clientRepo, hrRepo, jobRepo, candidateRepo, uc
}

var (
	manager   = &domain.HR{ID: "hr-m", Name: "Meera", Role: domain.RoleManager}
	recruiter = &domain.HR{ID: "hr-r", Name: "Ravi", Role: domain.RoleRecruiter, AssignedClientIDs: []string{"client-a"}}
)

func TestRecruiterClientScoping(t *testing.T) {
	ctx := context.Background()

	t.Run("Recruiter can list jobs for an assigned client", func(t *testing.T) {
		_, _, jobRepo, _, uc := newHRFixture()
		jobRepo.On("FetchOpenByClient", ctx, "client-a").Return([]domain.JobSummary{{ID: "job1", Title: "Engineer"}}, nil)

		jobs, err := uc.JobsByClient(ctx, recruiter, "client-a")
		require.NoError(t, err)
		assert.Len(t, jobs, 1)
	})

	t.Run("Recruiter is rejected for an unassigned client", func(t *testing.T) {
		_, _, jobRepo, _, uc := newHRFixture()

		_, err := uc.JobsByClient(ctx, recruiter, "client-b")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not assigned to this client")
		jobRepo.AssertNotCalled(t, "FetchOpenByClient")
	})

	t.Run("Manager bypasses the assignment check", func(t *testing.T) {
		_, _, jobRepo, _, uc := newHRFixture()
		jobRepo.On("FetchOpenByClient", ctx, "client-b").Return([]domain.JobSummary{}, nil)

		_, err := uc.JobsByClient(ctx, manager, "client-b")
		require.NoError(t, err)
	})
}

func TestAllJobsVisibility(t *testing.T) {
	ctx := context.Background()

	t.Run("Manager sees every job", func(t *testing.T) {
		_, _, jobRepo, _, uc := newHRFixture()
		jobRepo.On("FetchAll", ctx).Return([]domain.JobWithRelations{{}, {}}, nil)

		jobs, err := uc.AllJobs(ctx, manager)
		require.NoError(t, err)
		assert.Len(t, jobs, 2)
		jobRepo.AssertNotCalled(t, "FetchByClientIDs")
	})

	t.Run("Recruiter only sees jobs of assigned clients", func(t *testing.T) {
		_, _, jobRepo, _, uc := newHRFixture()
		jobRepo.On("FetchByClientIDs", ctx, []string{"client-a"}).Return([]domain.JobWithRelations{{}}, nil)

		jobs, err := uc.AllJobs(ctx, recruiter)
		require.NoError(t, err)
		assert.Len(t, jobs, 1)
		jobRepo.AssertNotCalled(t, "FetchAll")
	})
}

func TestCreateCandidate(t *testing.T) {
	ctx := context.Background()
	job := &domain.JobPosting{ID: "job1", ClientID: "client-a", Title: "Engineer"}

	validReq := domain.CreateCandidateRequest{
		FirstName: "Asha",
		LastName:  "Patel",
		Email:     "asha@example.com",
		JobTitle:  "Engineer",
		ClientID:  "client-a",
	}

	t.Run("Candidate inherits jobId and clientId from the resolved job", func(t *testing.T) {
		_, _, jobRepo, candidateRepo, uc := newHRFixture()
		jobRepo.On("GetByTitleAndClient", ctx, "Engineer", "client-a").Return(job, nil)
		candidateRepo.On("Create", ctx, mock.Anything).Return(nil)

		candidate, err := uc.CreateCandidate(ctx, recruiter, validReq)
		require.NoError(t, err)
		assert.Equal(t, "job1", candidate.JobID)
		assert.Equal(t, "client-a", candidate.ClientID)
		assert.Equal(t, "Asha Patel", candidate.Name)
		assert.Equal(t, domain.CandidateSourced, candidate.Status)
	})

	t.Run("Recruiter cannot create for an unassigned client", func(t *testing.T) {
		_, _, jobRepo, candidateRepo, uc := newHRFixture()

		req := validReq
		req.ClientID = "client-b"
		_, err := uc.CreateCandidate(ctx, recruiter, req)
		require.Error(t, err)
		jobRepo.AssertNotCalled(t, "GetByTitleAndClient")
		candidateRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Unknown job title for the client is rejected", func(t *testing.T) {
		_, _, jobRepo, _, uc := newHRFixture()
		jobRepo.On("GetByTitleAndClient", ctx, "Engineer", "client-a").Return(nil, domain.ErrNotFound)

		_, err := uc.CreateCandidate(ctx, recruiter, validReq)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Job role not found")
	})

	t.Run("Missing required fields are rejected", func(t *testing.T) {
		_, _, _, _, uc := newHRFixture()

		_, err := uc.CreateCandidate(ctx, recruiter, domain.CreateCandidateRequest{FirstName: "Asha"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Missing required fields")
	})
}

func TestUpdateCandidateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Status change appends an activity entry", func(t *testing.T) {
		_, _, _, candidateRepo, uc := newHRFixture()
		candidateRepo.On("GetByID", ctx, "cand1").Return(&domain.Candidate{
			ID:       "cand1",
			ClientID: "client-a",
			Status:   domain.CandidateSourced,
		}, nil)
		candidateRepo.On("UpdateStatus", ctx, "cand1", domain.CandidateL1Selected).Return(nil)
		candidateRepo.On("AppendActivity", ctx, mock.MatchedBy(func(a *domain.Activity) bool {
			return a.CandidateID == "cand1" &&
				a.HRID == recruiter.ID &&
				a.ActivityType == "Status Change" &&
				a.Notes == "Sourced -> L1 Selected"
		})).Return(nil)

		candidate, err := uc.UpdateCandidateStatus(ctx, recruiter, "cand1", domain.CandidateL1Selected)
		require.NoError(t, err)
		assert.Equal(t, domain.CandidateL1Selected, candidate.Status)
		assert.Len(t, candidate.Activity, 1)
	})

	t.Run("Recruiter cannot move a candidate of an unassigned client", func(t *testing.T) {
		_, _, _, candidateRepo, uc := newHRFixture()
		candidateRepo.On("GetByID", ctx, "cand2").Return(&domain.Candidate{
			ID:       "cand2",
			ClientID: "client-b",
		}, nil)

		_, err := uc.UpdateCandidateStatus(ctx, recruiter, "cand2", domain.CandidateOffered)
		require.Error(t, err)
		candidateRepo.AssertNotCalled(t, "UpdateStatus")
	})
}

func TestCandidatePagination(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults and totalPages are computed from the total", func(t *testing.T) {
		_, _, _, candidateRepo, uc := newHRFixture()
		candidateRepo.On("FetchPage", ctx, domain.CandidateStatus(""), 10, 0).
			Return([]domain.CandidateWithRefs{{}, {}}, int64(25), nil)

		page, err := uc.AllCandidates(ctx, 0, 0, "")
		require.NoError(t, err)
		assert.Equal(t, 1, page.CurrentPage)
		assert.Equal(t, int64(25), page.TotalCandidates)
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("Out of range page returns an empty slice, not an error", func(t *testing.T) {
		_, _, _, candidateRepo, uc := newHRFixture()
		candidateRepo.On("FetchPage", ctx, domain.CandidateStatus(""), 10, 90).
			Return([]domain.CandidateWithRefs{}, int64(25), nil)

		page, err := uc.AllCandidates(ctx, 10, 10, "")
		require.NoError(t, err)
		assert.Empty(t, page.Candidates)
		assert.Equal(t, 10, page.CurrentPage)
	})
}

func TestDeleteJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Delete goes through the candidate cascade", func(t *testing.T) {
		_, _, jobRepo, _, uc := newHRFixture()
		jobRepo.On("DeleteCascade", ctx, "job1").Return(nil)

		require.NoError(t, uc.DeleteJob(ctx, "job1"))
		jobRepo.AssertExpectations(t)
	})

	t.Run("Missing job maps to 404", func(t *testing.T) {
		_, _, jobRepo, _, uc := newHRFixture()
		jobRepo.On("DeleteCascade", ctx, "ghost").Return(domain.ErrNotFound)

		err := uc.DeleteJob(ctx, "ghost")
		require.Error(t, err)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
		assert.Equal(t, "Job not found", appErr.Message)
	})
}

func TestSearchCandidates(t *testing.T) {
	ctx := context.Background()

	t.Run("Blank search short-circuits without touching the store", func(t *testing.T) {
		_, _, _, candidateRepo, uc := newHRFixture()

		results, err := uc.SearchCandidates(ctx, "   ")
		require.NoError(t, err)
		assert.Empty(t, results)
		candidateRepo.AssertNotCalled(t, "Search")
	})

	t.Run("Non-blank search hits the store", func(t *testing.T) {
		_, _, _, candidateRepo, uc := newHRFixture()
		candidateRepo.On("Search", ctx, "asha").Return([]domain.CandidateWithRefs{{}}, nil)

		results, err := uc.SearchCandidates(ctx, "asha")
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})
}

func TestAssignClientToRecruiter(t *testing.T) {
	ctx := context.Background()

	t.Run("Assignment targets must be Recruiters", func(t *testing.T) {
		_, hrRepo, _, _, uc := newHRFixture()
		hrRepo.On("GetByID", ctx, "hr-m").Return(manager, nil)

		_, err := uc.AssignClientToRecruiter(ctx, "hr-m", "client-a")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "only assign clients to Recruiters")
		hrRepo.AssertNotCalled(t, "AssignClient")
	})

	t.Run("Successful assignment returns the recruiter name", func(t *testing.T) {
		_, hrRepo, _, _, uc := newHRFixture()
		hrRepo.On("GetByID", ctx, "hr-r").Return(recruiter, nil)
		hrRepo.On("AssignClient", ctx, "hr-r", "client-a").Return(nil)

		name, err := uc.AssignClientToRecruiter(ctx, "hr-r", "client-a")
		require.NoError(t, err)
		assert.Equal(t, "Ravi", name)
	})
}
