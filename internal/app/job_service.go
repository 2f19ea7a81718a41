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

type JobService struct {
	jobs      job.Repository
	companies company.Repository
	accounts  account.Repository
	refs      *ReferenceService
	notifier  notification.Notifier
}

func NewJobService(jobs job.Repository, companies company.Repository, accounts account.Repository, refs *ReferenceService, notifier notification.Notifier) *JobService {
	return &JobService{jobs: jobs, companies: companies, accounts: accounts, refs: refs, notifier: notifier}
}

// Create persists the job and then applies the paired reference updates.
// When a paired update fails the created job is still returned alongside a
// ConflictRisk error so the caller can re-run the idempotent repair step.
func (s *JobService) Create(ctx context.Context, j job.Job, recruiterID *common.UUID) (*job.Job, error) {
	if err := validateJob(j); err != nil {
		return nil, err
	}
	if _, err := s.companies.GetByID(ctx, j.CompanyID); err != nil {
		return nil, err
	}
	if recruiterID != nil {
		recruiter, err := s.accounts.GetByID(ctx, *recruiterID)
		if err != nil {
			return nil, err
		}
		if recruiter.Role != account.RoleRecruiter {
			return nil, common.NewValidationError("invalid recruiter", map[string]string{"recruiter_id": "account is not a recruiter"})
		}
		j.PostedBy = recruiterID
	}
	if j.Status == "" {
		j.Status = job.StatusActive
	}
	if !job.KnownStatus(j.Status) {
		return nil, common.NewValidationError("invalid job status", map[string]string{"status": "unknown status"})
	}

	created, err := s.jobs.Create(ctx, j)
	if err != nil {
		return nil, err
	}
	if err := s.refs.OnJobCreated(ctx, *created); err != nil {
		return created, err
	}
	_ = s.notifier.Send(ctx, notification.Event{Name: "job.created", AccountID: created.PostedBy, Payload: map[string]string{"job_id": created.ID.String(), "company_id": created.CompanyID.String()}})
	return created, nil
}

func (s *JobService) Get(ctx context.Context, id common.UUID) (*job.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

// Delete removes the job and then sweeps the reference lists that pointed at
// it. An incomplete sweep surfaces as ConflictRisk; the delete itself stands.
func (s *JobService) Delete(ctx context.Context, id common.UUID) error {
	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.jobs.Delete(ctx, id); err != nil {
		return err
	}
	sweepErr := s.refs.OnJobDeleted(ctx, *j)
	_ = s.notifier.Send(ctx, notification.Event{Name: "job.deleted", Payload: map[string]string{"job_id": id.String()}})
	return sweepErr
}

func validateJob(j job.Job) error {
	fields := map[string]string{}
	if j.CompanyID == "" {
		fields["company_id"] = "company_id is required"
	}
	if strings.TrimSpace(j.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(j.Location) == "" {
		fields["location"] = "location is required"
	}
	if strings.TrimSpace(j.Type) == "" {
		fields["type"] = "type is required"
	}
	if j.Salary < 0 {
		fields["salary"] = "salary must not be negative"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid job", fields)
	}
	return nil
}
