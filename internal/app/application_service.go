package app

import (
	"context"
	"strings"

	"jobhub/internal/common"
	"jobhub/internal/domain/account"
	"jobhub/internal/domain/application"
	"jobhub/internal/domain/job"
	"jobhub/internal/domain/notification"
)

type ApplicationService struct {
	applications application.Repository
	jobs         job.Repository
	accounts     account.Repository
	refs         *ReferenceService
	notifier     notification.Notifier
}

func NewApplicationService(applications application.Repository, jobs job.Repository, accounts account.Repository, refs *ReferenceService, notifier notification.Notifier) *ApplicationService {
	return &ApplicationService{applications: applications, jobs: jobs, accounts: accounts, refs: refs, notifier: notifier}
}

// Create persists the application and applies the paired reference updates.
// The submitter snapshot is filled from the account when the request leaves
// it empty, and CompanyID is denormalized from the job. A paired-update
// failure returns the created application together with ConflictRisk.
func (s *ApplicationService) Create(ctx context.Context, a application.Application) (*application.Application, error) {
	fields := map[string]string{}
	if a.JobID == "" {
		fields["job_id"] = "job_id is required"
	}
	if a.UserID == "" {
		fields["user_id"] = "user_id is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid application", fields)
	}

	target, err := s.jobs.GetByID(ctx, a.JobID)
	if err != nil {
		return nil, err
	}
	if target.Status != job.StatusActive {
		return nil, common.NewValidationError("job is not accepting applications", map[string]string{"job_id": "job is not active"})
	}
	submitter, err := s.accounts.GetByID(ctx, a.UserID)
	if err != nil {
		return nil, err
	}

	a.CompanyID = target.CompanyID
	a.Status = application.StatusApplied
	if strings.TrimSpace(a.ApplicantName) == "" {
		a.ApplicantName = submitter.Name
	}
	if strings.TrimSpace(a.ApplicantEmail) == "" {
		a.ApplicantEmail = submitter.Email
	}
	if a.ResumeURL == "" {
		a.ResumeURL = submitter.Profile.Resume.URL
	}

	created, err := s.applications.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	if err := s.refs.OnApplicationCreated(ctx, *created); err != nil {
		return created, err
	}
	_ = s.notifier.Send(ctx, notification.Event{Name: "application.created", AccountID: &created.UserID, Payload: map[string]string{"application_id": created.ID.String(), "job_id": created.JobID.String()}})
	return created, nil
}

func (s *ApplicationService) Get(ctx context.Context, id common.UUID) (*application.Application, error) {
	return s.applications.GetByID(ctx, id)
}

func (s *ApplicationService) Delete(ctx context.Context, id common.UUID) error {
	a, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.applications.Delete(ctx, id); err != nil {
		return err
	}
	removeErr := s.refs.OnApplicationDeleted(ctx, *a)
	_ = s.notifier.Send(ctx, notification.Event{Name: "application.deleted", AccountID: &a.UserID, Payload: map[string]string{"application_id": id.String()}})
	return removeErr
}
