package service

import (
	"context"
	"errors"

	"hrassets-backend/internal/domain"
	"hrassets-backend/internal/repository"
)

type adminService struct {
	requestRepo repository.RequestRepository
	userRepo    repository.UserRepository
	packageRepo repository.PackageRepository
}

func NewAdminService(requestRepo repository.RequestRepository, userRepo repository.UserRepository, packageRepo repository.PackageRepository) AdminService {
	return &adminService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		packageRepo: packageRepo,
	}
}

// CompanyUsage reports the company's distinct affiliated employees against
// its subscribed package. The limit is informational only; nothing on the
// approval path enforces it.
func (s *adminService) CompanyUsage(ctx context.Context, approver string) (*domain.CompanyUsage, error) {
	user, err := s.userRepo.GetByEmail(ctx, approver)
	if err != nil {
		return nil, err
	}

	emails, err := s.requestRepo.DistinctRequesters(ctx, user.Company)
	if err != nil {
		return nil, err
	}

	usage := &domain.CompanyUsage{
		Company:       user.Company,
		EmployeeCount: int32(len(emails)),
	}

	pkg, err := s.packageRepo.GetByCompany(ctx, user.Company)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	usage.Package = pkg
	return usage, nil
}
