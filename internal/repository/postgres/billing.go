package postgres

import (
	"context"
	"database/sql"
	"errors"

	"hrassets-backend/internal/domain"
	"hrassets-backend/internal/repository"
)

type packageRepository struct {
	db *sql.DB
}

func NewPackageRepository(db *sql.DB) repository.PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) GetByName(ctx context.Context, name string) (*domain.Package, error) {
	p := &domain.Package{}
	query := `SELECT name, employee_limit, price_cents FROM packages WHERE name = $1`
	err := r.db.QueryRowContext(ctx, query, name).Scan(&p.Name, &p.EmployeeLimit, &p.PriceCents)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *packageRepository) GetByCompany(ctx context.Context, company string) (*domain.Package, error) {
	p := &domain.Package{}
	query := `SELECT p.name, p.employee_limit, p.price_cents FROM packages p
	          JOIN subscriptions s ON s.package_name = p.name WHERE s.company = $1`
	err := r.db.QueryRowContext(ctx, query, company).Scan(&p.Name, &p.EmployeeLimit, &p.PriceCents)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
