package app

import (
	"context"
	"strings"

	"jobhub/internal/common"
	"jobhub/internal/domain/company"
	"jobhub/internal/domain/notification"
)

type CompanyService struct {
	companies company.Repository
	notifier  notification.Notifier
}

func NewCompanyService(companies company.Repository, notifier notification.Notifier) *CompanyService {
	return &CompanyService{companies: companies, notifier: notifier}
}

// Create registers a company as unverified and active; verification happens
// through the admin approval transition.
func (s *CompanyService) Create(ctx context.Context, c company.Company) (*company.Company, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, common.NewValidationError("invalid company", map[string]string{"name": "name is required"})
	}
	c.Verified = false
	if c.Status == "" {
		c.Status = company.StatusActive
	}
	if !company.KnownStatus(c.Status) {
		return nil, common.NewValidationError("invalid company status", map[string]string{"status": "unknown status"})
	}
	created, err := s.companies.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	_ = s.notifier.Send(ctx, notification.Event{Name: "company.created", Payload: map[string]string{"company_id": created.ID.String()}})
	return created, nil
}

func (s *CompanyService) Get(ctx context.Context, id common.UUID) (*company.Company, error) {
	return s.companies.GetByID(ctx, id)
}
