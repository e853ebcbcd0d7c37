package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hrassets-backend/internal/domain"
	"hrassets-backend/internal/logger"
	"hrassets-backend/internal/repository"
)

type workflowService struct {
	requestRepo repository.RequestRepository
	assetRepo   repository.AssetRepository
	userRepo    repository.UserRepository
	noteRepo    repository.NotificationRepository
	emailSvc    EmailService
	teamCache   TeamRosterCache
}

func NewWorkflowService(
	requestRepo repository.RequestRepository,
	assetRepo repository.AssetRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
	teamCache TeamRosterCache,
) WorkflowService {
	return &workflowService{
		requestRepo: requestRepo,
		assetRepo:   assetRepo,
		userRepo:    userRepo,
		noteRepo:    noteRepo,
		emailSvc:    emailSvc,
		teamCache:   teamCache,
	}
}

func (s *workflowService) SubmitRequest(ctx context.Context, assetID int32, requester, note string) (*domain.Request, error) {
	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	// Inventory is reserved at approval time, not here: many employees may
	// request the same unit and all see it as available until one approval
	// lands. The snapshot protects request history from later asset edits.
	req := &domain.Request{
		Reference:  uuid.NewString(),
		AssetID:    asset.ID,
		AssetName:  asset.Name,
		AssetType:  asset.Type,
		AssetImage: asset.ImageURL,
		Company:    asset.Company,
		Requester:  requester,
		Note:       note,
	}
	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	s.notify(ctx, asset.CreatedBy, "New Asset Request",
		fmt.Sprintf("%s requested %s", requester, asset.Name), req)
	if err := s.emailSvc.SendRequestSubmitted(ctx, asset.CreatedBy, requester, asset.Name, req.Reference); err != nil {
		logger.Warn("request submitted email failed", "request_id", req.ID, "error", err)
	}

	return req, nil
}

func (s *workflowService) ApproveRequest(ctx context.Context, requestID int32, approver string) (*domain.Request, error) {
	req, err := s.loadForApprover(ctx, requestID, approver)
	if err != nil {
		return nil, err
	}
	if !ValidTransition("approve", req.Status) {
		return nil, domain.ErrInvalidState
	}

	// Reserve the unit first. The guard refuses to go below zero, so a full
	// allocation surfaces here before the request is touched.
	if err := s.assetRepo.AdjustAvailable(ctx, req.AssetID, -1); err != nil {
		return nil, err
	}

	now := time.Now()
	upd := repository.StatusUpdate{ProcessedBy: &approver, ProcessDate: &now}
	if err := s.requestRepo.SetStatus(ctx, req.ID, domain.RequestStatusPending, domain.RequestStatusApproved, upd); err != nil {
		// Another caller processed the request between our load and the
		// conditional update. The decrement above must not stick: pair it
		// with a compensating increment so the two stores stay consistent.
		if compErr := s.assetRepo.AdjustAvailable(ctx, req.AssetID, +1); compErr != nil && !errors.Is(compErr, domain.ErrNotFound) {
			logger.Error("compensating increment failed, inventory may be under-counted",
				"request_id", req.ID, "asset_id", req.AssetID, "cause", err, "error", compErr)
			return nil, fmt.Errorf("%w: rollback of inventory reservation failed: %v", domain.ErrStorageUnavailable, compErr)
		}
		return nil, err
	}

	req.Status = domain.RequestStatusApproved
	req.ProcessDate = &now
	req.ProcessedBy = &approver

	s.invalidateRosters(ctx)
	s.notify(ctx, req.Requester, "Request Approved",
		fmt.Sprintf("Your request for %s was approved", req.AssetName), req)
	if err := s.emailSvc.SendRequestApproved(ctx, req.Requester, req.AssetName, approver, req.Reference); err != nil {
		logger.Warn("approval email failed", "request_id", req.ID, "error", err)
	}

	return req, nil
}

func (s *workflowService) RejectRequest(ctx context.Context, requestID int32, approver string) (*domain.Request, error) {
	req, err := s.loadForApprover(ctx, requestID, approver)
	if err != nil {
		return nil, err
	}
	if !ValidTransition("reject", req.Status) {
		return nil, domain.ErrInvalidState
	}

	now := time.Now()
	upd := repository.StatusUpdate{ProcessedBy: &approver, ProcessDate: &now}
	if err := s.requestRepo.SetStatus(ctx, req.ID, domain.RequestStatusPending, domain.RequestStatusRejected, upd); err != nil {
		return nil, err
	}

	req.Status = domain.RequestStatusRejected
	req.ProcessDate = &now
	req.ProcessedBy = &approver

	s.notify(ctx, req.Requester, "Request Rejected",
		fmt.Sprintf("Your request for %s was rejected", req.AssetName), req)
	if err := s.emailSvc.SendRequestRejected(ctx, req.Requester, req.AssetName, approver, req.Reference); err != nil {
		logger.Warn("rejection email failed", "request_id", req.ID, "error", err)
	}

	return req, nil
}

func (s *workflowService) ReturnRequest(ctx context.Context, requestID int32) (*domain.Request, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !ValidTransition("return", req.Status) {
		return nil, domain.ErrInvalidState
	}
	if !req.Returnable() {
		return nil, domain.ErrInvalidAssetType
	}

	now := time.Now()
	upd := repository.StatusUpdate{ReturnDate: &now}
	if err := s.requestRepo.SetStatus(ctx, req.ID, domain.RequestStatusApproved, domain.RequestStatusReturned, upd); err != nil {
		return nil, err
	}

	// Release the unit. A deleted asset makes this a no-op, not a failure:
	// the request record is the source of truth for the return itself.
	if err := s.assetRepo.AdjustAvailable(ctx, req.AssetID, +1); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			logger.Info("returned against deleted asset, increment skipped", "request_id", req.ID, "asset_id", req.AssetID)
		case errors.Is(err, domain.ErrConflict):
			logger.Warn("return increment refused, available already at total", "request_id", req.ID, "asset_id", req.AssetID)
		default:
			logger.Error("return increment failed", "request_id", req.ID, "asset_id", req.AssetID, "error", err)
			return nil, fmt.Errorf("%w: inventory release failed: %v", domain.ErrStorageUnavailable, err)
		}
	}

	req.Status = domain.RequestStatusReturned
	req.ReturnDate = &now

	s.invalidateRosters(ctx)
	if err := s.emailSvc.SendReturnConfirmed(ctx, req.Requester, req.AssetName, req.Reference); err != nil {
		logger.Warn("return email failed", "request_id", req.ID, "error", err)
	}

	return req, nil
}

func (s *workflowService) GetRequest(ctx context.Context, requestID int32) (*domain.Request, error) {
	return s.requestRepo.GetByID(ctx, requestID)
}

func (s *workflowService) ListMyRequests(ctx context.Context, requester string) ([]domain.Request, error) {
	return s.requestRepo.ListByRequester(ctx, requester)
}

func (s *workflowService) ListCompanyRequests(ctx context.Context, approver string, status domain.RequestStatus) ([]domain.Request, error) {
	user, err := s.userRepo.GetByEmail(ctx, approver)
	if err != nil {
		return nil, err
	}
	return s.requestRepo.ListByCompany(ctx, user.Company, status)
}

// loadForApprover fetches the request and hides it from approvers of other
// companies.
func (s *workflowService) loadForApprover(ctx context.Context, requestID int32, approver string) (*domain.Request, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByEmail(ctx, approver)
	if err != nil {
		return nil, err
	}
	if user.Company != req.Company {
		return nil, domain.ErrNotFound
	}
	return req, nil
}

func (s *workflowService) invalidateRosters(ctx context.Context) {
	if s.teamCache == nil {
		return
	}
	if err := s.teamCache.InvalidateCompany(ctx); err != nil {
		logger.Warn("team roster cache invalidation failed", "error", err)
	}
}

func (s *workflowService) notify(ctx context.Context, email, title, message string, req *domain.Request) {
	if s.noteRepo == nil {
		return
	}
	note := &domain.Notification{
		Email:   email,
		Title:   title,
		Message: message,
		Attributes: map[string]string{
			"request_id": fmt.Sprintf("%d", req.ID),
			"reference":  req.Reference,
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("notification create failed", "email", email, "request_id", req.ID, "error", err)
	}
}
