package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/lib/pq"

	"jobhub/internal/common"
	"jobhub/internal/domain/account"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `id, role, status, name, email, company_id, job_posts, skills, experience, education, certifications, resume_url, resume_updated_at, saved_jobs, applications, created_at, updated_at`

func (r *AccountRepository) Create(ctx context.Context, a account.Account) (*account.Account, error) {
	a.ID = common.NewUUID()
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	var companyID sql.NullString
	if a.CompanyID != nil {
		companyID = sql.NullString{String: a.CompanyID.String(), Valid: true}
	}
	experience, err := json.Marshal(a.Profile.Experience)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to encode experience", err)
	}
	education, err := json.Marshal(a.Profile.Education)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to encode education", err)
	}
	var resumeUpdated sql.NullTime
	if !a.Profile.Resume.UpdatedAt.IsZero() {
		resumeUpdated = sql.NullTime{Time: a.Profile.Resume.UpdatedAt, Valid: true}
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO accounts (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		a.ID, a.Role, a.Status, a.Name, a.Email, companyID, uuidArray(a.JobPosts),
		pq.Array(a.Profile.Skills), experience, education, pq.Array(a.Profile.Certifications),
		a.Profile.Resume.URL, resumeUpdated, uuidArray(a.Profile.SavedJobs), uuidArray(a.Profile.Applications),
		a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create account", err)
	}
	return &a, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id common.UUID) (*account.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "account not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load account", err)
	}
	return a, nil
}

func (r *AccountRepository) GetByIDs(ctx context.Context, ids []common.UUID) ([]account.Account, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = ANY($1::uuid[])`, uuidArray(ids))
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to load accounts", err)
	}
	defer rows.Close()
	var items []account.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan account", err)
		}
		items = append(items, *a)
	}
	return items, nil
}

func (r *AccountRepository) UpdateStatus(ctx context.Context, id common.UUID, status account.Status) (*account.Account, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE accounts SET status = $1, updated_at = $2 WHERE id = $3`, status, time.Now().UTC(), id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update account status", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "account not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *AccountRepository) AddJobPost(ctx context.Context, id, jobID common.UUID) error {
	return ensureMember(ctx, r.db, "accounts", "job_posts", id, jobID, "account not found")
}

func (r *AccountRepository) RemoveJobPost(ctx context.Context, id, jobID common.UUID) error {
	return removeMember(ctx, r.db, "accounts", "job_posts", id, jobID, "account not found")
}

func (r *AccountRepository) AddApplication(ctx context.Context, id, applicationID common.UUID) error {
	return ensureMember(ctx, r.db, "accounts", "applications", id, applicationID, "account not found")
}

func (r *AccountRepository) RemoveApplication(ctx context.Context, id, applicationID common.UUID) error {
	return removeMember(ctx, r.db, "accounts", "applications", id, applicationID, "account not found")
}

func (r *AccountRepository) AddSavedJob(ctx context.Context, id, jobID common.UUID) error {
	return ensureMember(ctx, r.db, "accounts", "saved_jobs", id, jobID, "account not found")
}

func (r *AccountRepository) RemoveSavedJob(ctx context.Context, id, jobID common.UUID) error {
	return removeMember(ctx, r.db, "accounts", "saved_jobs", id, jobID, "account not found")
}

func scanAccount(row rowScanner) (*account.Account, error) {
	var a account.Account
	var companyID sql.NullString
	var jobPosts, savedJobs, applications pq.StringArray
	var skills, certifications pq.StringArray
	var experience, education []byte
	var resumeUpdated sql.NullTime
	if err := row.Scan(&a.ID, &a.Role, &a.Status, &a.Name, &a.Email, &companyID, &jobPosts,
		&skills, &experience, &education, &certifications,
		&a.Profile.Resume.URL, &resumeUpdated, &savedJobs, &applications,
		&a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	if companyID.Valid {
		id := common.UUID(companyID.String)
		a.CompanyID = &id
	}
	a.JobPosts = toUUIDs(jobPosts)
	a.Profile.Skills = skills
	a.Profile.Certifications = certifications
	a.Profile.SavedJobs = toUUIDs(savedJobs)
	a.Profile.Applications = toUUIDs(applications)
	if resumeUpdated.Valid {
		a.Profile.Resume.UpdatedAt = resumeUpdated.Time
	}
	if len(experience) > 0 {
		if err := json.Unmarshal(experience, &a.Profile.Experience); err != nil {
			return nil, err
		}
	}
	if len(education) > 0 {
		if err := json.Unmarshal(education, &a.Profile.Education); err != nil {
			return nil, err
		}
	}
	return &a, nil
}
