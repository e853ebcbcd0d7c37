package repository

import (
	"context"
	"time"

	"hrassets-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByEmails(ctx context.Context, emails []string) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) error
	GetByID(ctx context.Context, id int32) (*domain.Asset, error)
	Update(ctx context.Context, asset *domain.Asset) error
	Delete(ctx context.Context, id int32) error
	ListByCompany(ctx context.Context, company string) ([]domain.Asset, error)

	// AdjustAvailable applies an atomic delta (+1 or -1) to the asset's
	// available count. The update is a single guarded statement at the
	// storage layer: it never drives available below zero or above the
	// total quantity. A failed -1 guard is domain.ErrInsufficientInventory;
	// a missing asset is domain.ErrNotFound.
	AdjustAvailable(ctx context.Context, id int32, delta int32) error
}

type RequestRepository interface {
	// Create persists the draft with status forced to PENDING and the
	// request date set server-side, regardless of what the caller filled in.
	Create(ctx context.Context, req *domain.Request) error
	GetByID(ctx context.Context, id int32) (*domain.Request, error)

	// SetStatus is a conditional update: it succeeds only if the stored
	// status still equals expected at the moment of update, otherwise it
	// returns domain.ErrConflict. Timestamps carried in upd are written
	// together with the new status.
	SetStatus(ctx context.Context, id int32, expected, next domain.RequestStatus, upd StatusUpdate) error

	ListByRequester(ctx context.Context, email string) ([]domain.Request, error)
	ListByCompany(ctx context.Context, company string, status domain.RequestStatus) ([]domain.Request, error)
	ListAll(ctx context.Context) ([]domain.Request, error)

	// DistinctRequesters returns the distinct requester emails of APPROVED
	// requests for a company.
	DistinctRequesters(ctx context.Context, company string) ([]string, error)
	// CompaniesOf returns the distinct companies where the employee has an
	// APPROVED request.
	CompaniesOf(ctx context.Context, email string) ([]string, error)
	// CountApprovedByAsset reports outstanding approved requests per asset,
	// used by the reconciliation job.
	CountApprovedByAsset(ctx context.Context) (map[int32]int32, error)
}

// StatusUpdate carries the fields written alongside a status transition.
type StatusUpdate struct {
	ProcessedBy *string
	ProcessDate *time.Time
	ReturnDate  *time.Time
}

type PackageRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Package, error)
	GetByCompany(ctx context.Context, company string) (*domain.Package, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, email string, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id int32, email string) error
}
