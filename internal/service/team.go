package service

import (
	"context"
	"sort"

	"hrassets-backend/internal/domain"
	"hrassets-backend/internal/logger"
	"hrassets-backend/internal/repository"
)

type teamService struct {
	requestRepo repository.RequestRepository
	userRepo    repository.UserRepository
	cache       TeamRosterCache
}

func NewTeamService(requestRepo repository.RequestRepository, userRepo repository.UserRepository, cache TeamRosterCache) TeamService {
	return &teamService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		cache:       cache,
	}
}

// EmployeesOfCompany resolves the approver's company roster: every distinct
// requester with an approved request there, as profile summaries.
func (s *teamService) EmployeesOfCompany(ctx context.Context, approver string) ([]domain.ProfileSummary, error) {
	user, err := s.userRepo.GetByEmail(ctx, approver)
	if err != nil {
		return nil, err
	}
	return s.roster(ctx, user.Company)
}

// TeamOf groups an employee's colleagues by company. Affiliation is derived
// from approved requests on every call; there is no stored affiliation
// entity. The employee appears in their own colleague list when they have an
// approved request at the company.
func (s *teamService) TeamOf(ctx context.Context, employee string) ([]domain.TeamGroup, error) {
	if s.cache != nil {
		if groups, ok, err := s.cache.Get(ctx, employee); err != nil {
			logger.Warn("team roster cache read failed", "email", employee, "error", err)
		} else if ok {
			return groups, nil
		}
	}

	companies, err := s.requestRepo.CompaniesOf(ctx, employee)
	if err != nil {
		return nil, err
	}
	sort.Strings(companies)

	groups := make([]domain.TeamGroup, 0, len(companies))
	for _, company := range companies {
		colleagues, err := s.roster(ctx, company)
		if err != nil {
			return nil, err
		}
		groups = append(groups, domain.TeamGroup{Company: company, Colleagues: colleagues})
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, employee, groups); err != nil {
			logger.Warn("team roster cache write failed", "email", employee, "error", err)
		}
	}
	return groups, nil
}

func (s *teamService) roster(ctx context.Context, company string) ([]domain.ProfileSummary, error) {
	emails, err := s.requestRepo.DistinctRequesters(ctx, company)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.ListByEmails(ctx, emails)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ProfileSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	return summaries, nil
}
