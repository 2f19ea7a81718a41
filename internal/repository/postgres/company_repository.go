package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"jobhub/internal/common"
	"jobhub/internal/domain/company"
)

type CompanyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

const companyColumns = `id, name, logo, industry, website, location, employee_count, status, verified, jobs, recruiters, created_at, updated_at`

func (r *CompanyRepository) Create(ctx context.Context, c company.Company) (*company.Company, error) {
	c.ID = common.NewUUID()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO companies (`+companyColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		c.ID, c.Name, c.Logo, c.Industry, c.Website, c.Location, c.EmployeeCount, c.Status, c.Verified, uuidArray(c.Jobs), uuidArray(c.Recruiters), c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create company", err)
	}
	return &c, nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id common.UUID) (*company.Company, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	var c company.Company
	var jobs, recruiters pq.StringArray
	if err := row.Scan(&c.ID, &c.Name, &c.Logo, &c.Industry, &c.Website, &c.Location, &c.EmployeeCount, &c.Status, &c.Verified, &jobs, &recruiters, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "company not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load company", err)
	}
	c.Jobs = toUUIDs(jobs)
	c.Recruiters = toUUIDs(recruiters)
	return &c, nil
}

// Approve flips verified and status together in one statement so the
// transition is atomic.
func (r *CompanyRepository) Approve(ctx context.Context, id common.UUID) (*company.Company, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE companies SET verified = true, status = $1, updated_at = $2 WHERE id = $3`, company.StatusActive, time.Now().UTC(), id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to approve company", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "company not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *CompanyRepository) UpdateStatus(ctx context.Context, id common.UUID, status company.Status) (*company.Company, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE companies SET status = $1, updated_at = $2 WHERE id = $3`, status, time.Now().UTC(), id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update company status", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "company not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *CompanyRepository) AddJob(ctx context.Context, id, jobID common.UUID) error {
	return ensureMember(ctx, r.db, "companies", "jobs", id, jobID, "company not found")
}

func (r *CompanyRepository) RemoveJob(ctx context.Context, id, jobID common.UUID) error {
	return removeMember(ctx, r.db, "companies", "jobs", id, jobID, "company not found")
}

func (r *CompanyRepository) AddRecruiter(ctx context.Context, id, accountID common.UUID) error {
	return ensureMember(ctx, r.db, "companies", "recruiters", id, accountID, "company not found")
}

func (r *CompanyRepository) RemoveRecruiter(ctx context.Context, id, accountID common.UUID) error {
	return removeMember(ctx, r.db, "companies", "recruiters", id, accountID, "company not found")
}
