package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"hrassets-backend/internal/domain"
	"hrassets-backend/internal/repository"
)

// MockAssetRepo
type MockAssetRepo struct {
	mock.Mock
}

func (m *MockAssetRepo) Create(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}
func (m *MockAssetRepo) GetByID(ctx context.Context, id int32) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}
func (m *MockAssetRepo) Update(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}
func (m *MockAssetRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAssetRepo) ListByCompany(ctx context.Context, company string) ([]domain.Asset, error) {
	args := m.Called(ctx, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}
func (m *MockAssetRepo) AdjustAvailable(ctx context.Context, id int32, delta int32) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.Request) error {
	args := m.Called(ctx, req)
	if args.Error(0) == nil {
		// Mirror the store contract: status and request date are set by the
		// repository, never taken from the draft (see postgres/request.go).
		req.Status = domain.RequestStatusPending
		req.RequestDate = time.Now()
	}
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id int32) (*domain.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockRequestRepo) SetStatus(ctx context.Context, id int32, expected, next domain.RequestStatus, upd repository.StatusUpdate) error {
	args := m.Called(ctx, id, expected, next, upd)
	return args.Error(0)
}
func (m *MockRequestRepo) ListByRequester(ctx context.Context, email string) ([]domain.Request, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Request), args.Error(1)
}
func (m *MockRequestRepo) ListByCompany(ctx context.Context, company string, status domain.RequestStatus) ([]domain.Request, error) {
	args := m.Called(ctx, company, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Request), args.Error(1)
}
func (m *MockRequestRepo) ListAll(ctx context.Context) ([]domain.Request, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Request), args.Error(1)
}
func (m *MockRequestRepo) DistinctRequesters(ctx context.Context, company string) ([]string, error) {
	args := m.Called(ctx, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockRequestRepo) CompaniesOf(ctx context.Context, email string) ([]string, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockRequestRepo) CountApprovedByAsset(ctx context.Context) (map[int32]int32, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int32]int32), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ListByEmails(ctx context.Context, emails []string) ([]domain.User, error) {
	args := m.Called(ctx, emails)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockPackageRepo
type MockPackageRepo struct {
	mock.Mock
}

func (m *MockPackageRepo) GetByName(ctx context.Context, name string) (*domain.Package, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}
func (m *MockPackageRepo) GetByCompany(ctx context.Context, company string) (*domain.Package, error) {
	args := m.Called(ctx, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, email string, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, email, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id int32, email string) error {
	args := m.Called(ctx, id, email)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRequestSubmitted(ctx context.Context, approverEmail, requesterEmail, assetName, reference string) error {
	args := m.Called(ctx, approverEmail, requesterEmail, assetName, reference)
	return args.Error(0)
}
func (m *MockEmailService) SendRequestApproved(ctx context.Context, requesterEmail, assetName, approverEmail, reference string) error {
	args := m.Called(ctx, requesterEmail, assetName, approverEmail, reference)
	return args.Error(0)
}
func (m *MockEmailService) SendRequestRejected(ctx context.Context, requesterEmail, assetName, approverEmail, reference string) error {
	args := m.Called(ctx, requesterEmail, assetName, approverEmail, reference)
	return args.Error(0)
}
func (m *MockEmailService) SendReturnConfirmed(ctx context.Context, requesterEmail, assetName, reference string) error {
	args := m.Called(ctx, requesterEmail, assetName, reference)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingReminder(ctx context.Context, approverEmail string, pendingCount int) error {
	args := m.Called(ctx, approverEmail, pendingCount)
	return args.Error(0)
}

// MockTeamCache
type MockTeamCache struct {
	mock.Mock
}

func (m *MockTeamCache) Get(ctx context.Context, email string) ([]domain.TeamGroup, bool, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.TeamGroup), args.Bool(1), args.Error(2)
}
func (m *MockTeamCache) Set(ctx context.Context, email string, groups []domain.TeamGroup) error {
	args := m.Called(ctx, email, groups)
	return args.Error(0)
}
func (m *MockTeamCache) InvalidateCompany(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
