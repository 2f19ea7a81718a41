package app

import (
	"context"
	"strings"

	"jobhub/internal/common"
	"jobhub/internal/domain/application"
	"jobhub/internal/domain/company"
	"jobhub/internal/domain/job"
	"jobhub/internal/domain/notification"
)

// WorkflowService validates and applies status transitions for jobs,
// applications and companies. Status membership is validated, but edges
// between known statuses are deliberately unrestricted so recruiters can
// correct pipeline mistakes (an accepted application may return to applied).
// Moderation statuses for jobs are reachable only through ModerateJob.
type WorkflowService struct {
	jobs         job.Repository
	applications application.Repository
	companies    company.Repository
	notifier     notification.Notifier
}

func NewWorkflowService(jobs job.Repository, applications application.Repository, companies company.Repository, notifier notification.Notifier) *WorkflowService {
	return &WorkflowService{jobs: jobs, applications: applications, companies: companies, notifier: notifier}
}

func (s *WorkflowService) TransitionJob(ctx context.Context, id common.UUID, status job.Status) (*job.Job, error) {
	normalized := job.Status(strings.ToLower(strings.TrimSpace(string(status))))
	if normalized == "" {
		return nil, common.NewError(common.CodeValidation, "status is required", nil)
	}
	if !job.KnownStatus(normalized) {
		return nil, common.NewValidationError("invalid job status", map[string]string{"status": "status must be active, closed, or archived"})
	}
	if job.ModerationStatus(normalized) {
		return nil, common.NewValidationError("invalid job status", map[string]string{"status": "moderation statuses require an administrative transition"})
	}
	updated, err := s.jobs.UpdateStatus(ctx, id, normalized)
	if err != nil {
		return nil, err
	}
	_ = s.notifier.Send(ctx, notification.Event{Name: "job.status_changed", Payload: map[string]string{"job_id": id.String(), "status": string(normalized)}})
	return updated, nil
}

// ModerateJob is the administrative transition: it accepts the moderation
// statuses in addition to the public ones.
func (s *WorkflowService) ModerateJob(ctx context.Context, id common.UUID, status job.Status) (*job.Job, error) {
	normalized := job.Status(strings.ToLower(strings.TrimSpace(string(status))))
	if normalized == "" {
		return nil, common.NewError(common.CodeValidation, "status is required", nil)
	}
	if !job.KnownStatus(normalized) {
		return nil, common.NewValidationError("invalid job status", map[string]string{"status": "status must be active, closed, archived, pending, or rejected"})
	}
	updated, err := s.jobs.UpdateStatus(ctx, id, normalized)
	if err != nil {
		return nil, err
	}
	_ = s.notifier.Send(ctx, notification.Event{Name: "job.moderated", Payload: map[string]string{"job_id": id.String(), "status": string(normalized)}})
	return updated, nil
}

func (s *WorkflowService) TransitionApplication(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	normalized := application.Status(strings.ToLower(strings.TrimSpace(string(status))))
	if normalized == "" {
		return nil, common.NewError(common.CodeValidation, "status is required", nil)
	}
	if !application.KnownStatus(normalized) {
		return nil, common.NewValidationError("invalid application status", map[string]string{"status": "status must be applied, interviewed, rejected, accepted, documentation, offer, or hired"})
	}
	updated, err := s.applications.UpdateStatus(ctx, id, normalized)
	if err != nil {
		return nil, err
	}
	_ = s.notifier.Send(ctx, notification.Event{Name: "application.status_changed", AccountID: &updated.UserID, Payload: map[string]string{"application_id": id.String(), "status": string(normalized)}})
	return updated, nil
}

// ApproveCompany sets verified=true and status=active as one transition, not
// two separate writes.
func (s *WorkflowService) ApproveCompany(ctx context.Context, id common.UUID) (*company.Company, error) {
	approved, err := s.companies.Approve(ctx, id)
	if err != nil {
		return nil, err
	}
	_ = s.notifier.Send(ctx, notification.Event{Name: "company.approved", Payload: map[string]string{"company_id": id.String()}})
	return approved, nil
}

func (s *WorkflowService) TransitionCompany(ctx context.Context, id common.UUID, status company.Status) (*company.Company, error) {
	normalized := company.Status(strings.ToLower(strings.TrimSpace(string(status))))
	if normalized == "" {
		return nil, common.NewError(common.CodeValidation, "status is required", nil)
	}
	if !company.KnownStatus(normalized) {
		return nil, common.NewValidationError("invalid company status", map[string]string{"status": "status must be active, banned, or rejected"})
	}
	updated, err := s.companies.UpdateStatus(ctx, id, normalized)
	if err != nil {
		return nil, err
	}
	_ = s.notifier.Send(ctx, notification.Event{Name: "company.status_changed", Payload: map[string]string{"company_id": id.String(), "status": string(normalized)}})
	return updated, nil
}
