package app

import (
	"context"
	"sort"
	"sync"
	"time"

	"jobhub/internal/common"
	"jobhub/internal/domain/account"
	"jobhub/internal/domain/application"
	"jobhub/internal/domain/company"
	"jobhub/internal/domain/job"
)

func ensureMember(list []common.UUID, id common.UUID) []common.UUID {
	for _, existing := range list {
		if existing == id {
			return list
		}
	}
	return append(list, id)
}

func removeMember(list []common.UUID, id common.UUID) []common.UUID {
	out := list[:0]
	for _, existing := range list {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

type fakeAccountRepo struct {
	mu   sync.Mutex
	byID map[common.UUID]*account.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byID: make(map[common.UUID]*account.Account)}
}

func cloneAccount(a *account.Account) *account.Account {
	copied := *a
	return &copied
}

func (r *fakeAccountRepo) Create(ctx context.Context, a account.Account) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == "" {
		a.ID = common.NewUUID()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	r.byID[a.ID] = &a
	return cloneAccount(&a), nil
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, id common.UUID) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.byID[id]
	if a == nil {
		return nil, common.NewError(common.CodeNotFound, "account not found", nil)
	}
	return cloneAccount(a), nil
}

func (r *fakeAccountRepo) GetByIDs(ctx context.Context, ids []common.UUID) ([]account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]account.Account, 0, len(ids))
	for _, id := range ids {
		if a := r.byID[id]; a != nil {
			out = append(out, *cloneAccount(a))
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) UpdateStatus(ctx context.Context, id common.UUID, status account.Status) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.byID[id]
	if a == nil {
		return nil, common.NewError(common.CodeNotFound, "account not found", nil)
	}
	a.Status = status
	a.UpdatedAt = time.Now().UTC()
	return cloneAccount(a), nil
}

func (r *fakeAccountRepo) mutate(id common.UUID, fn func(*account.Account)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.byID[id]
	if a == nil {
		return common.NewError(common.CodeNotFound, "account not found", nil)
	}
	fn(a)
	return nil
}

func (r *fakeAccountRepo) AddJobPost(ctx context.Context, id, jobID common.UUID) error {
	return r.mutate(id, func(a *account.Account) { a.JobPosts = ensureMember(a.JobPosts, jobID) })
}

func (r *fakeAccountRepo) RemoveJobPost(ctx context.Context, id, jobID common.UUID) error {
	return r.mutate(id, func(a *account.Account) { a.JobPosts = removeMember(a.JobPosts, jobID) })
}

func (r *fakeAccountRepo) AddApplication(ctx context.Context, id, applicationID common.UUID) error {
	return r.mutate(id, func(a *account.Account) { a.Profile.Applications = ensureMember(a.Profile.Applications, applicationID) })
}

func (r *fakeAccountRepo) RemoveApplication(ctx context.Context, id, applicationID common.UUID) error {
	return r.mutate(id, func(a *account.Account) { a.Profile.Applications = removeMember(a.Profile.Applications, applicationID) })
}

func (r *fakeAccountRepo) AddSavedJob(ctx context.Context, id, jobID common.UUID) error {
	return r.mutate(id, func(a *account.Account) { a.Profile.SavedJobs = ensureMember(a.Profile.SavedJobs, jobID) })
}

func (r *fakeAccountRepo) RemoveSavedJob(ctx context.Context, id, jobID common.UUID) error {
	return r.mutate(id, func(a *account.Account) { a.Profile.SavedJobs = removeMember(a.Profile.SavedJobs, jobID) })
}

type fakeCompanyRepo struct {
	mu         sync.Mutex
	byID       map[common.UUID]*company.Company
	addJobErr  error
	addRecrErr error
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{byID: make(map[common.UUID]*company.Company)}
}

func cloneCompany(c *company.Company) *company.Company {
	copied := *c
	return &copied
}

func (r *fakeCompanyRepo) Create(ctx context.Context, c company.Company) (*company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == "" {
		c.ID = common.NewUUID()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	r.byID[c.ID] = &c
	return cloneCompany(&c), nil
}

func (r *fakeCompanyRepo) GetByID(ctx context.Context, id common.UUID) (*company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.byID[id]
	if c == nil {
		return nil, common.NewError(common.CodeNotFound, "company not found", nil)
	}
	return cloneCompany(c), nil
}

func (r *fakeCompanyRepo) Approve(ctx context.Context, id common.UUID) (*company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.byID[id]
	if c == nil {
		return nil, common.NewError(common.CodeNotFound, "company not found", nil)
	}
	c.Verified = true
	c.Status = company.StatusActive
	c.UpdatedAt = time.Now().UTC()
	return cloneCompany(c), nil
}

func (r *fakeCompanyRepo) UpdateStatus(ctx context.Context, id common.UUID, status company.Status) (*company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.byID[id]
	if c == nil {
		return nil, common.NewError(common.CodeNotFound, "company not found", nil)
	}
	c.Status = status
	c.UpdatedAt = time.Now().UTC()
	return cloneCompany(c), nil
}

func (r *fakeCompanyRepo) mutate(id common.UUID, fn func(*company.Company)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.byID[id]
	if c == nil {
		return common.NewError(common.CodeNotFound, "company not found", nil)
	}
	fn(c)
	return nil
}

func (r *fakeCompanyRepo) AddJob(ctx context.Context, id, jobID common.UUID) error {
	if r.addJobErr != nil {
		return r.addJobErr
	}
	return r.mutate(id, func(c *company.Company) { c.Jobs = ensureMember(c.Jobs, jobID) })
}

func (r *fakeCompanyRepo) RemoveJob(ctx context.Context, id, jobID common.UUID) error {
	return r.mutate(id, func(c *company.Company) { c.Jobs = removeMember(c.Jobs, jobID) })
}

func (r *fakeCompanyRepo) AddRecruiter(ctx context.Context, id, accountID common.UUID) error {
	if r.addRecrErr != nil {
		return r.addRecrErr
	}
	return r.mutate(id, func(c *company.Company) { c.Recruiters = ensureMember(c.Recruiters, accountID) })
}

func (r *fakeCompanyRepo) RemoveRecruiter(ctx context.Context, id, accountID common.UUID) error {
	return r.mutate(id, func(c *company.Company) { c.Recruiters = removeMember(c.Recruiters, accountID) })
}

type fakeJobRepo struct {
	mu        sync.Mutex
	byID      map[common.UUID]*job.Job
	companies *fakeCompanyRepo
	seq       int
}

func newFakeJobRepo(companies *fakeCompanyRepo) *fakeJobRepo {
	return &fakeJobRepo{byID: make(map[common.UUID]*job.Job), companies: companies}
}

func cloneJob(j *job.Job) *job.Job {
	copied := *j
	return &copied
}

func (r *fakeJobRepo) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j.ID == "" {
		j.ID = common.NewUUID()
	}
	r.seq++
	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now().UTC().Add(time.Duration(r.seq) * time.Millisecond)
	}
	j.UpdatedAt = j.CreatedAt
	r.byID[j.ID] = &j
	return cloneJob(&j), nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j := r.byID[id]
	if j == nil {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	return cloneJob(j), nil
}

func (r *fakeJobRepo) UpdateStatus(ctx context.Context, id common.UUID, status job.Status) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j := r.byID[id]
	if j == nil {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	j.Status = status
	j.UpdatedAt = time.Now().UTC()
	return cloneJob(j), nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byID[id] == nil {
		return common.NewError(common.CodeNotFound, "job not found", nil)
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeJobRepo) ListByCompany(ctx context.Context, companyID common.UUID) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []job.Job
	for _, j := range r.byID {
		if j.CompanyID == companyID {
			out = append(out, *cloneJob(j))
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Search(ctx context.Context, f job.Filters, limit, offset int) ([]job.Listing, int, error) {
	r.mu.Lock()
	matched := make([]job.Job, 0)
	for _, j := range r.byID {
		if f.Match(*j) {
			matched = append(matched, *cloneJob(j))
		}
	}
	r.mu.Unlock()

	sort.Slice(matched, func(i, k int) bool {
		if matched[i].CreatedAt.Equal(matched[k].CreatedAt) {
			return matched[i].ID < matched[k].ID
		}
		return matched[i].CreatedAt.After(matched[k].CreatedAt)
	})

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	listings := make([]job.Listing, 0, end-offset)
	for _, j := range matched[offset:end] {
		listing := job.Listing{Job: j}
		if r.companies != nil {
			if c, err := r.companies.GetByID(ctx, j.CompanyID); err == nil {
				listing.Company = c.Snapshot()
			}
		}
		listings = append(listings, listing)
	}
	return listings, total, nil
}

func (r *fakeJobRepo) AddApplicant(ctx context.Context, id, applicationID common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j := r.byID[id]
	if j == nil {
		return common.NewError(common.CodeNotFound, "job not found", nil)
	}
	j.Applicants = ensureMember(j.Applicants, applicationID)
	return nil
}

func (r *fakeJobRepo) RemoveApplicant(ctx context.Context, id, applicationID common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j := r.byID[id]
	if j == nil {
		return common.NewError(common.CodeNotFound, "job not found", nil)
	}
	j.Applicants = removeMember(j.Applicants, applicationID)
	return nil
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	byID map[common.UUID]*application.Application
	seq  int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{byID: make(map[common.UUID]*application.Application)}
}

func cloneApplication(a *application.Application) *application.Application {
	copied := *a
	return &copied
}

func (r *fakeApplicationRepo) Create(ctx context.Context, a application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == "" {
		a.ID = common.NewUUID()
	}
	r.seq++
	if a.AppliedDate.IsZero() {
		a.AppliedDate = time.Now().UTC().Add(time.Duration(r.seq) * time.Millisecond)
	}
	a.UpdatedAt = a.AppliedDate
	r.byID[a.ID] = &a
	return cloneApplication(&a), nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.byID[id]
	if a == nil {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	return cloneApplication(a), nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.byID[id]
	if a == nil {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	a.Status = status
	a.UpdatedAt = time.Now().UTC()
	return cloneApplication(a), nil
}

func (r *fakeApplicationRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byID[id] == nil {
		return common.NewError(common.CodeNotFound, "application not found", nil)
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeApplicationRepo) Invalidate(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.byID[id]
	if a == nil {
		return common.NewError(common.CodeNotFound, "application not found", nil)
	}
	a.Invalidated = true
	return nil
}

func (r *fakeApplicationRepo) ListByJob(ctx context.Context, jobID common.UUID) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []application.Application
	for _, a := range r.byID {
		if a.JobID == jobID {
			out = append(out, *cloneApplication(a))
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByCompany(ctx context.Context, companyID common.UUID) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []application.Application
	for _, a := range r.byID {
		if a.CompanyID == companyID {
			out = append(out, *cloneApplication(a))
		}
	}
	return out, nil
}

// fixture wires the fakes into a full service graph for workflow tests.
type fixture struct {
	accounts     *fakeAccountRepo
	companies    *fakeCompanyRepo
	jobs         *fakeJobRepo
	applications *fakeApplicationRepo
	refs         *ReferenceService
}

func newFixture() *fixture {
	accounts := newFakeAccountRepo()
	companies := newFakeCompanyRepo()
	jobs := newFakeJobRepo(companies)
	applications := newFakeApplicationRepo()
	return &fixture{
		accounts:     accounts,
		companies:    companies,
		jobs:         jobs,
		applications: applications,
		refs:         NewReferenceService(accounts, companies, jobs, applications),
	}
}

func (f *fixture) seedCompany(ctx context.Context) *company.Company {
	created, _ := f.companies.Create(ctx, company.Company{Name: "Acme", Status: company.StatusActive})
	return created
}

func (f *fixture) seedRecruiter(ctx context.Context, companyID common.UUID) *account.Account {
	created, _ := f.accounts.Create(ctx, account.Account{
		Role:      account.RoleRecruiter,
		Status:    account.StatusActive,
		Name:      "Rita Recruiter",
		Email:     "rita@acme.test",
		CompanyID: &companyID,
	})
	_ = f.companies.AddRecruiter(ctx, companyID, created.ID)
	return created
}

func (f *fixture) seedJobseeker(ctx context.Context, name, email string) *account.Account {
	created, _ := f.accounts.Create(ctx, account.Account{
		Role:   account.RoleJobseeker,
		Status: account.StatusActive,
		Name:   name,
		Email:  email,
	})
	return created
}
