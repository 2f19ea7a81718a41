package app

import (
	"context"

	"jobhub/internal/common"
	"jobhub/internal/domain/account"
	"jobhub/internal/domain/application"
	"jobhub/internal/domain/company"
	"jobhub/internal/domain/job"
)

// ReferenceService performs the paired writes that keep Company.Jobs,
// Account.JobPosts, Job.Applicants and Account.Profile.Applications
// consistent with the primary entity's foreign keys. Every paired step is an
// idempotent ensure-member or remove-member write, so a failed step can be
// re-applied safely. A failure after the primary write surfaces as
// ConflictRisk rather than being swallowed.
type ReferenceService struct {
	accounts     account.Repository
	companies    company.Repository
	jobs         job.Repository
	applications application.Repository
}

func NewReferenceService(accounts account.Repository, companies company.Repository, jobs job.Repository, applications application.Repository) *ReferenceService {
	return &ReferenceService{accounts: accounts, companies: companies, jobs: jobs, applications: applications}
}

func (s *ReferenceService) OnJobCreated(ctx context.Context, j job.Job) error {
	if err := s.companies.AddJob(ctx, j.CompanyID, j.ID); err != nil {
		return common.NewError(common.CodeConflictRisk, "job created but company job list was not updated", err)
	}
	if j.PostedBy != nil {
		if err := s.accounts.AddJobPost(ctx, *j.PostedBy, j.ID); err != nil {
			return common.NewError(common.CodeConflictRisk, "job created but recruiter job posts were not updated", err)
		}
	}
	return nil
}

func (s *ReferenceService) OnApplicationCreated(ctx context.Context, a application.Application) error {
	if err := s.jobs.AddApplicant(ctx, a.JobID, a.ID); err != nil {
		return common.NewError(common.CodeConflictRisk, "application created but job applicant list was not updated", err)
	}
	if err := s.accounts.AddApplication(ctx, a.UserID, a.ID); err != nil {
		return common.NewError(common.CodeConflictRisk, "application created but account application list was not updated", err)
	}
	return nil
}

func (s *ReferenceService) OnApplicationDeleted(ctx context.Context, a application.Application) error {
	if err := s.jobs.RemoveApplicant(ctx, a.JobID, a.ID); err != nil && !common.Is(err, common.CodeNotFound) {
		return common.NewError(common.CodeConflictRisk, "application deleted but job applicant list was not updated", err)
	}
	if err := s.accounts.RemoveApplication(ctx, a.UserID, a.ID); err != nil && !common.Is(err, common.CodeNotFound) {
		return common.NewError(common.CodeConflictRisk, "application deleted but account application list was not updated", err)
	}
	return nil
}

// OnJobDeleted sweeps every reference the job left behind: the company's job
// list, the posting recruiter's JobPosts, and each dependent application,
// which is invalidated (not deleted) and retracted from its owner's list.
// The sweep continues past individual failures and reports the first one as
// ConflictRisk so a repair pass can re-run the idempotent steps.
func (s *ReferenceService) OnJobDeleted(ctx context.Context, j job.Job) error {
	var sweepErr error
	keep := func(err error) {
		if err != nil && sweepErr == nil && !common.Is(err, common.CodeNotFound) {
			sweepErr = err
		}
	}

	keep(s.companies.RemoveJob(ctx, j.CompanyID, j.ID))
	if j.PostedBy != nil {
		keep(s.accounts.RemoveJobPost(ctx, *j.PostedBy, j.ID))
	}

	dependents, err := s.applications.ListByJob(ctx, j.ID)
	if err != nil {
		keep(err)
	}
	for _, a := range dependents {
		keep(s.applications.Invalidate(ctx, a.ID))
		keep(s.accounts.RemoveApplication(ctx, a.UserID, a.ID))
	}

	if sweepErr != nil {
		return common.NewError(common.CodeConflictRisk, "job deleted but reference sweep was incomplete", sweepErr)
	}
	return nil
}
