package app

import (
	"context"
	"strings"

	"jobhub/internal/common"
	"jobhub/internal/domain/account"
	"jobhub/internal/domain/company"
	"jobhub/internal/domain/job"
	"jobhub/internal/domain/notification"
)

type AccountService struct {
	accounts  account.Repository
	companies company.Repository
	jobs      job.Repository
	notifier  notification.Notifier
}

func NewAccountService(accounts account.Repository, companies company.Repository, jobs job.Repository, notifier notification.Notifier) *AccountService {
	return &AccountService{accounts: accounts, companies: companies, jobs: jobs, notifier: notifier}
}

// Create registers an account. A recruiter referencing a company is paired
// into that company's recruiter list with an idempotent ensure-member write;
// a pairing failure surfaces as ConflictRisk with the created account.
func (s *AccountService) Create(ctx context.Context, a account.Account) (*account.Account, error) {
	a.Role = account.Role(strings.ToLower(strings.TrimSpace(string(a.Role))))
	if !account.KnownRole(a.Role) {
		return nil, common.NewValidationError("invalid account", map[string]string{"role": "role must be jobseeker, recruiter, or admin"})
	}
	fields := map[string]string{}
	if strings.TrimSpace(a.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(a.Email) == "" {
		fields["email"] = "email is required"
	}
	if a.Role != account.RoleRecruiter && a.CompanyID != nil {
		fields["company_id"] = "only recruiters reference a company"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid account", fields)
	}
	if a.CompanyID != nil {
		if _, err := s.companies.GetByID(ctx, *a.CompanyID); err != nil {
			return nil, err
		}
	}
	if a.Status == "" {
		a.Status = account.StatusActive
	}

	created, err := s.accounts.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	if created.CompanyID != nil {
		if err := s.companies.AddRecruiter(ctx, *created.CompanyID, created.ID); err != nil {
			return created, common.NewError(common.CodeConflictRisk, "account created but company recruiter list was not updated", err)
		}
	}
	_ = s.notifier.Send(ctx, notification.Event{Name: "account.created", AccountID: &created.ID, Payload: map[string]string{"role": string(created.Role)}})
	return created, nil
}

func (s *AccountService) Get(ctx context.Context, id common.UUID) (*account.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

func (s *AccountService) SaveJob(ctx context.Context, id, jobID common.UUID) error {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return err
	}
	return s.accounts.AddSavedJob(ctx, id, jobID)
}

func (s *AccountService) UnsaveJob(ctx context.Context, id, jobID common.UUID) error {
	return s.accounts.RemoveSavedJob(ctx, id, jobID)
}
