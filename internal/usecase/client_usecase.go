package usecase

import (
	"context"

	"hrms-backend/internal/domain"
	"hrms-backend/pkg/apperror"
)

type clientUsecase struct {
	jobRepo       domain.JobRepository
	candidateRepo domain.CandidateRepository
}

func NewClientUsecase(jobRepo domain.JobRepository, candidateRepo domain.CandidateRepository) domain.ClientUsecase {
	return &clientUsecase{jobRepo: jobRepo, candidateRepo: candidateRepo}
}

func (u *clientUsecase) Jobs(ctx context.Context, caller *domain.Client) ([]domain.JobWithCandidateCount, error) {
	jobs, err := u.jobRepo.FetchByClientWithCounts(ctx, caller.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *clientUsecase) CandidatesForJob(ctx context.Context, caller *domain.Client, jobID string) ([]domain.Candidate, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil || job.ClientID != caller.ID {
		// Same response whether the job is missing or owned by someone
		// else: don't leak other clients' job ids.
		return nil, apperror.Forbidden("Forbidden: Job not found or access denied")
	}

	candidates, err := u.candidateRepo.FetchByJob(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return candidates, nil
}

// requireOwnCandidate walks the ownership chain candidate -> job -> client
// and denies unless the chain ends at the caller.
func (u *clientUsecase) requireOwnCandidate(ctx context.Context, caller *domain.Client, candidateID string) (*domain.Candidate, error) {
	candidate, err := u.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, notFoundOrInternal(err, "Candidate not found.")
	}

	job, err := u.jobRepo.GetByID(ctx, candidate.JobID)
	if err != nil || job.ClientID != caller.ID {
		return nil, apperror.Forbidden("Forbidden: You do not have access to this candidate.")
	}
	return candidate, nil
}

func (u *clientUsecase) UpdateCandidateStatus(ctx context.Context, caller *domain.Client, candidateID string, status domain.CandidateStatus) (*domain.Candidate, error) {
	if status == "" {
		return nil, apperror.BadRequest("Status is required")
	}

	candidate, err := u.requireOwnCandidate(ctx, caller, candidateID)
	if err != nil {
		return nil, err
	}

	if err := u.candidateRepo.UpdateStatus(ctx, candidateID, status); err != nil {
		return nil, notFoundOrInternal(err, "Candidate not found.")
	}
	candidate.Status = status
	return candidate, nil
}

func (u *clientUsecase) UpdateCandidateRemarks(ctx context.Context, caller *domain.Client, candidateID, remarks string) (*domain.Candidate, error) {
	candidate, err := u.requireOwnCandidate(ctx, caller, candidateID)
	if err != nil {
		return nil, err
	}

	if err := u.candidateRepo.UpdateRemarks(ctx, candidateID, remarks); err != nil {
		return nil, notFoundOrInternal(err, "Candidate not found.")
	}
	candidate.Remarks = remarks
	return candidate, nil
}
