package service

import (
	"context"

	"hrassets-backend/internal/domain"
)

type WorkflowService interface {
	SubmitRequest(ctx context.Context, assetID int32, requester, note string) (*domain.Request, error)
	ApproveRequest(ctx context.Context, requestID int32, approver string) (*domain.Request, error)
	RejectRequest(ctx context.Context, requestID int32, approver string) (*domain.Request, error)
	ReturnRequest(ctx context.Context, requestID int32) (*domain.Request, error)
	GetRequest(ctx context.Context, requestID int32) (*domain.Request, error)
	ListMyRequests(ctx context.Context, requester string) ([]domain.Request, error)
	ListCompanyRequests(ctx context.Context, approver string, status domain.RequestStatus) ([]domain.Request, error)
}

// AssetService scopes every mutation to the actor's company; assets of other
// companies read as not found, mirroring the workflow's approver scoping.
type AssetService interface {
	AddAsset(ctx context.Context, actor string, asset *domain.Asset) error
	GetAsset(ctx context.Context, id int32) (*domain.Asset, error)
	UpdateAsset(ctx context.Context, actor string, asset *domain.Asset) error
	DeleteAsset(ctx context.Context, actor string, id int32) error
	ListAssets(ctx context.Context, company string) ([]domain.Asset, error)
}

type TeamService interface {
	EmployeesOfCompany(ctx context.Context, approver string) ([]domain.ProfileSummary, error)
	TeamOf(ctx context.Context, employee string) ([]domain.TeamGroup, error)
}

type AdminService interface {
	CompanyUsage(ctx context.Context, approver string) (*domain.CompanyUsage, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, email string, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, email string, notificationID int32) error
}

type EmailService interface {
	SendRequestSubmitted(ctx context.Context, approverEmail, requesterEmail, assetName, reference string) error
	SendRequestApproved(ctx context.Context, requesterEmail, assetName, approverEmail, reference string) error
	SendRequestRejected(ctx context.Context, requesterEmail, assetName, approverEmail, reference string) error
	SendReturnConfirmed(ctx context.Context, requesterEmail, assetName, reference string) error
	SendPendingReminder(ctx context.Context, approverEmail string, pendingCount int) error
}

// TeamRosterCache fronts the derived team projection. Implementations may be
// absent; callers treat a nil cache as a pass-through.
type TeamRosterCache interface {
	Get(ctx context.Context, email string) ([]domain.TeamGroup, bool, error)
	Set(ctx context.Context, email string, groups []domain.TeamGroup) error
	InvalidateCompany(ctx context.Context) error
}
