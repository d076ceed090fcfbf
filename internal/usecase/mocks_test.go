package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hrms-backend/internal/domain"
)

// Mock Repositories

type MockSuperAdminRepo struct {
	mock.Mock
}

func (m *MockSuperAdminRepo) Create(ctx context.Context, admin *domain.SuperAdmin) error {
	return m.Called(ctx, admin).Error(0)
}
func (m *MockSuperAdminRepo) GetByID(ctx context.Context, id string) (*domain.SuperAdmin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SuperAdmin), args.Error(1)
}
func (m *MockSuperAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.SuperAdmin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SuperAdmin), args.Error(1)
}
func (m *MockSuperAdminRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) Create(ctx context.Context, client *domain.Client) error {
	return m.Called(ctx, client).Error(0)
}
func (m *MockClientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientRepo) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientRepo) Fetch(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientRepo) FetchByIDs(ctx context.Context, ids []string) ([]domain.Client, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientRepo) Update(ctx context.Context, client *domain.Client) error {
	return m.Called(ctx, client).Error(0)
}
func (m *MockClientRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockHRRepo struct {
	mock.Mock
}

func (m *MockHRRepo) Create(ctx context.Context, hr *domain.HR) error {
	return m.Called(ctx, hr).Error(0)
}
func (m *MockHRRepo) GetByID(ctx context.Context, id string) (*domain.HR, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HR), args.Error(1)
}
func (m *MockHRRepo) GetByEmail(ctx context.Context, email string) (*domain.HR, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HR), args.Error(1)
}
func (m *MockHRRepo) Fetch(ctx context.Context) ([]domain.HR, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HR), args.Error(1)
}
func (m *MockHRRepo) FetchByRole(ctx context.Context, role domain.HRRole) ([]domain.HR, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HR), args.Error(1)
}
func (m *MockHRRepo) Update(ctx context.Context, hr *domain.HR) error {
	return m.Called(ctx, hr).Error(0)
}
func (m *MockHRRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockHRRepo) AssignClient(ctx context.Context, hrID, clientID string) error {
	return m.Called(ctx, hrID, clientID).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}
func (m *MockJobRepo) GetByTitleAndClient(ctx context.Context, title, clientID string) (*domain.JobPosting, error) {
	args := m.Called(ctx, title, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}
func (m *MockJobRepo) FetchAll(ctx context.Context) ([]domain.JobWithRelations, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobWithRelations), args.Error(1)
}
func (m *MockJobRepo) FetchByClientIDs(ctx context.Context, clientIDs []string) ([]domain.JobWithRelations, error) {
	args := m.Called(ctx, clientIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobWithRelations), args.Error(1)
}
func (m *MockJobRepo) FetchOpenByClient(ctx context.Context, clientID string) ([]domain.JobSummary, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobSummary), args.Error(1)
}
func (m *MockJobRepo) FetchByClientWithCounts(ctx context.Context, clientID string) ([]domain.JobWithCandidateCount, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobWithCandidateCount), args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) DeleteCascade(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}
func (m *MockCandidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}
func (m *MockCandidateRepo) FetchByJob(ctx context.Context, jobID string) ([]domain.Candidate, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}
func (m *MockCandidateRepo) Update(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}
func (m *MockCandidateRepo) UpdateStatus(ctx context.Context, id string, status domain.CandidateStatus) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockCandidateRepo) UpdateRemarks(ctx context.Context, id string, remarks string) error {
	return m.Called(ctx, id, remarks).Error(0)
}
func (m *MockCandidateRepo) FetchPage(ctx context.Context, status domain.CandidateStatus, limit, offset int) ([]domain.CandidateWithRefs, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.CandidateWithRefs), args.Get(1).(int64), args.Error(2)
}
func (m *MockCandidateRepo) FetchPageByJob(ctx context.Context, jobID string, status domain.CandidateStatus, limit, offset int) ([]domain.CandidateWithRefs, int64, error) {
	args := m.Called(ctx, jobID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.CandidateWithRefs), args.Get(1).(int64), args.Error(2)
}
func (m *MockCandidateRepo) Search(ctx context.Context, term string) ([]domain.CandidateWithRefs, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateWithRefs), args.Error(1)
}
func (m *MockCandidateRepo) SearchInJob(ctx context.Context, jobID, term string, status domain.CandidateStatus) ([]domain.Candidate, error) {
	args := m.Called(ctx, jobID, term, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}
func (m *MockCandidateRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCandidateRepo) AppendActivity(ctx context.Context, activity *domain.Activity) error {
	return m.Called(ctx, activity).Error(0)
}
