package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hrassets-backend/internal/domain"
	"hrassets-backend/internal/repository"
)

type assetRepository struct {
	db *sql.DB
}

func NewAssetRepository(db *sql.DB) repository.AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Create(ctx context.Context, a *domain.Asset) error {
	query := `INSERT INTO assets (name, image_url, asset_type, quantity, available, company, created_by, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, a.Name, a.ImageURL, a.Type, a.Quantity, a.Available, a.Company, a.CreatedBy, time.Now()).Scan(&a.ID)
}

func (r *assetRepository) GetByID(ctx context.Context, id int32) (*domain.Asset, error) {
	a := &domain.Asset{}
	query := `SELECT id, name, COALESCE(image_url, ''), asset_type, quantity, available, company, created_by, created_on FROM assets WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Name, &a.ImageURL, &a.Type, &a.Quantity, &a.Available, &a.Company, &a.CreatedBy, &a.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Update rewrites the catalog fields and shifts available by the quantity
// delta in the same guarded statement, so a resize keeps
// 0 <= available <= quantity. Shrinking below the outstanding allocation
// affects zero rows and maps to ErrConflict.
func (r *assetRepository) Update(ctx context.Context, a *domain.Asset) error {
	query := `UPDATE assets SET name=$1, image_url=$2, asset_type=$3,
	              available = available + ($4 - quantity), quantity=$4
	          WHERE id=$5 AND available + ($4 - quantity) >= 0`
	res, err := r.db.ExecContext(ctx, query, a.Name, a.ImageURL, a.Type, a.Quantity, a.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM assets WHERE id = $1)`, a.ID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}

func (r *assetRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *assetRepository) ListByCompany(ctx context.Context, company string) ([]domain.Asset, error) {
	query := `SELECT id, name, COALESCE(image_url, ''), asset_type, quantity, available, company, created_by, created_on 
	          FROM assets WHERE company = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, company)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []domain.Asset
	for rows.Next() {
		var a domain.Asset
		if err := rows.Scan(&a.ID, &a.Name, &a.ImageURL, &a.Type, &a.Quantity, &a.Available, &a.Company, &a.CreatedBy, &a.CreatedOn); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// AdjustAvailable applies the delta in one guarded statement so two
// concurrent adjustments can never both read the same starting value.
// The guard keeps 0 <= available <= quantity.
func (r *assetRepository) AdjustAvailable(ctx context.Context, id int32, delta int32) error {
	query := `UPDATE assets SET available = available + $1 
	          WHERE id = $2 AND available + $1 >= 0 AND available + $1 <= quantity`
	res, err := r.db.ExecContext(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("adjust available: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	// Zero rows: either the asset is gone or the guard failed.
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM assets WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	if delta < 0 {
		return domain.ErrInsufficientInventory
	}
	return domain.ErrConflict
}
