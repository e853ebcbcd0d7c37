package service

import (
	"context"
	"errors"

	"hrassets-backend/internal/domain"
	"hrassets-backend/internal/repository"
)

type assetService struct {
	assetRepo repository.AssetRepository
	userRepo  repository.UserRepository
}

func NewAssetService(assetRepo repository.AssetRepository, userRepo repository.UserRepository) AssetService {
	return &assetService{assetRepo: assetRepo, userRepo: userRepo}
}

func (s *assetService) AddAsset(ctx context.Context, actor string, asset *domain.Asset) error {
	if err := validateAssetFields(asset); err != nil {
		return err
	}
	user, err := s.userRepo.GetByEmail(ctx, actor)
	if err != nil {
		return err
	}

	// The owning company always comes from the actor's record, never from
	// the payload. A new asset starts fully available.
	asset.Company = user.Company
	asset.CreatedBy = actor
	asset.Available = asset.Quantity
	return s.assetRepo.Create(ctx, asset)
}

func (s *assetService) GetAsset(ctx context.Context, id int32) (*domain.Asset, error) {
	return s.assetRepo.GetByID(ctx, id)
}

func (s *assetService) UpdateAsset(ctx context.Context, actor string, asset *domain.Asset) error {
	if err := validateAssetFields(asset); err != nil {
		return err
	}
	current, err := s.loadForOwner(ctx, asset.ID, actor)
	if err != nil {
		return err
	}
	asset.Company = current.Company
	asset.CreatedBy = current.CreatedBy
	if err := s.assetRepo.Update(ctx, asset); err != nil {
		return err
	}
	asset.Available = current.Available + (asset.Quantity - current.Quantity)
	return nil
}

// DeleteAsset removes the catalog record. Requests pointing at the asset are
// left as orphaned historical snapshots: they carry their own copy of the
// asset fields, and a later return against the deleted asset is a no-op.
func (s *assetService) DeleteAsset(ctx context.Context, actor string, id int32) error {
	if _, err := s.loadForOwner(ctx, id, actor); err != nil {
		return err
	}
	return s.assetRepo.Delete(ctx, id)
}

func (s *assetService) ListAssets(ctx context.Context, company string) ([]domain.Asset, error) {
	return s.assetRepo.ListByCompany(ctx, company)
}

// loadForOwner scopes catalog mutations the way the workflow scopes
// approvals: an asset belonging to another company is indistinguishable
// from a missing one.
func (s *assetService) loadForOwner(ctx context.Context, id int32, actor string) (*domain.Asset, error) {
	asset, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByEmail(ctx, actor)
	if err != nil {
		return nil, err
	}
	if user.Company != asset.Company {
		return nil, domain.ErrNotFound
	}
	return asset, nil
}

func validateAssetFields(asset *domain.Asset) error {
	if asset.Name == "" {
		return errors.New("asset name is required")
	}
	if !asset.Type.Valid() {
		return errors.New("asset type must be RETURNABLE or NON_RETURNABLE")
	}
	if asset.Quantity < 0 {
		return errors.New("asset quantity must be non-negative")
	}
	return nil
}
