package app

import (
	"context"
	"errors"
	"testing"

	"jobhub/internal/common"
	"jobhub/internal/domain/account"
	"jobhub/internal/domain/job"
	"jobhub/internal/domain/notification"
)

func TestRecruiterCreatePairsCompany(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	c := f.seedCompany(ctx)

	svc := NewAccountService(f.accounts, f.companies, f.jobs, notification.Noop{})
	created, err := svc.Create(ctx, account.Account{
		Role:      account.RoleRecruiter,
		Name:      "Rita Recruiter",
		Email:     "rita@acme.test",
		CompanyID: &c.ID,
	})
	if err != nil {
		t.Fatalf("create recruiter: %v", err)
	}

	gotCompany, _ := f.companies.GetByID(ctx, c.ID)
	if len(gotCompany.Recruiters) != 1 || gotCompany.Recruiters[0] != created.ID {
		t.Fatalf("company recruiters = %v, want [%s]", gotCompany.Recruiters, created.ID)
	}
}

func TestRecruiterPairingFailureSurfacesConflictRisk(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	c := f.seedCompany(ctx)
	f.companies.addRecrErr = errors.New("connection reset")

	svc := NewAccountService(f.accounts, f.companies, f.jobs, notification.Noop{})
	created, err := svc.Create(ctx, account.Account{
		Role:      account.RoleRecruiter,
		Name:      "Rita Recruiter",
		Email:     "rita@acme.test",
		CompanyID: &c.ID,
	})
	if !common.Is(err, common.CodeConflictRisk) {
		t.Fatalf("err = %v, want conflict risk", err)
	}
	if created == nil {
		t.Fatal("created account must be returned alongside the conflict risk")
	}
}

func TestJobseekerMayNotReferenceCompany(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	c := f.seedCompany(ctx)

	svc := NewAccountService(f.accounts, f.companies, f.jobs, notification.Noop{})
	_, err := svc.Create(ctx, account.Account{
		Role:      account.RoleJobseeker,
		Name:      "Sam Seeker",
		Email:     "sam@mail.test",
		CompanyID: &c.ID,
	})
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestRecruiterCompanyMustExist(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	missing := common.NewUUID()

	svc := NewAccountService(f.accounts, f.companies, f.jobs, notification.Noop{})
	_, err := svc.Create(ctx, account.Account{
		Role:      account.RoleRecruiter,
		Name:      "Rita Recruiter",
		Email:     "rita@acme.test",
		CompanyID: &missing,
	})
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestSaveJobIsIdempotentAndChecked(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	c := f.seedCompany(ctx)
	seeker := f.seedJobseeker(ctx, "Sam Seeker", "sam@mail.test")
	posted, _ := f.jobs.Create(ctx, job.Job{CompanyID: c.ID, Title: "x", Location: "x", Type: "x", Status: job.StatusActive})

	svc := NewAccountService(f.accounts, f.companies, f.jobs, notification.Noop{})
	if err := svc.SaveJob(ctx, seeker.ID, common.NewUUID()); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("missing job: err = %v, want not found", err)
	}
	for i := 0; i < 2; i++ {
		if err := svc.SaveJob(ctx, seeker.ID, posted.ID); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	got, _ := f.accounts.GetByID(ctx, seeker.ID)
	if len(got.Profile.SavedJobs) != 1 {
		t.Fatalf("saved jobs = %v, want one entry after repeated saves", got.Profile.SavedJobs)
	}

	if err := svc.UnsaveJob(ctx, seeker.ID, posted.ID); err != nil {
		t.Fatalf("unsave: %v", err)
	}
	got, _ = f.accounts.GetByID(ctx, seeker.ID)
	if len(got.Profile.SavedJobs) != 0 {
		t.Fatalf("saved jobs = %v after unsave", got.Profile.SavedJobs)
	}
}
