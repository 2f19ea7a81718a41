package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"jobhub/internal/common"
	"jobhub/internal/domain/job"
)

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = `id, company_id, posted_by, title, description, location, job_type, experience, salary, status, applicants, created_at, updated_at`

func (r *JobRepository) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	j.ID = common.NewUUID()
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	var postedBy sql.NullString
	if j.PostedBy != nil {
		postedBy = sql.NullString{String: j.PostedBy.String(), Valid: true}
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO jobs (`+jobColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		j.ID, j.CompanyID, postedBy, j.Title, j.Description, j.Location, j.Type, j.Experience, j.Salary, j.Status, uuidArray(j.Applicants), j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return &j, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	return j, nil
}

func (r *JobRepository) UpdateStatus(ctx context.Context, id common.UUID, status job.Status) (*job.Job, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET status = $1, updated_at = $2 WHERE id = $3`, status, time.Now().UTC(), id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job status", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *JobRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete job", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return nil
}

func (r *JobRepository) ListByCompany(ctx context.Context, companyID common.UUID) ([]job.Job, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE company_id = $1 ORDER BY created_at DESC`, companyID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list company jobs", err)
	}
	defer rows.Close()
	var items []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job", err)
		}
		items = append(items, *j)
	}
	return items, nil
}

// Search mirrors job.Filters.Match clause for clause and joins the company
// projection at query time.
func (r *JobRepository) Search(ctx context.Context, f job.Filters, limit, offset int) ([]job.Listing, int, error) {
	var clauses []string
	var args []any
	add := func(format string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(format, len(args)))
	}
	if f.Status != "" {
		add("j.status = $%d", f.Status)
	}
	if f.Search != "" {
		add("j.title ILIKE $%d", "%"+escapeLike(f.Search)+"%")
	}
	if f.Location != "" {
		add("j.location ILIKE $%d", "%"+escapeLike(f.Location)+"%")
	}
	if f.Type != "" {
		add("j.job_type = $%d", f.Type)
	}
	if f.Experience != "" {
		add("j.experience = $%d", f.Experience)
	}
	if f.Salary != "" {
		lower, upper, ok := job.BucketBounds(f.Salary)
		if !ok {
			return nil, 0, common.NewValidationError("invalid salary filter", map[string]string{"salary": "unknown bucket"})
		}
		add("j.salary >= $%d", lower)
		if upper >= 0 {
			add("j.salary < $%d", upper)
		}
	}
	where := ""
	if len(clauses) > 0 {
		where = " WHERE " + strings.Join(clauses, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM jobs j`+where, args...).Scan(&total); err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to count jobs", err)
	}

	args = append(args, limit)
	limitPos := len(args)
	args = append(args, offset)
	offsetPos := len(args)
	query := `SELECT ` + prefixedJobColumns + `,
		c.name, c.logo, c.industry, c.website, c.location, c.employee_count
		FROM jobs j
		JOIN companies c ON c.id = j.company_id` + where +
		fmt.Sprintf(` ORDER BY j.created_at DESC, j.id LIMIT $%d OFFSET $%d`, limitPos, offsetPos)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to search jobs", err)
	}
	defer rows.Close()

	var items []job.Listing
	for rows.Next() {
		var item job.Listing
		var postedBy sql.NullString
		var applicants pq.StringArray
		if err := rows.Scan(&item.ID, &item.CompanyID, &postedBy, &item.Title, &item.Description, &item.Location, &item.Type, &item.Experience, &item.Salary, &item.Status, &applicants, &item.CreatedAt, &item.UpdatedAt,
			&item.Company.Name, &item.Company.Logo, &item.Company.Industry, &item.Company.Website, &item.Company.Location, &item.Company.EmployeeCount); err != nil {
			return nil, 0, common.NewError(common.CodeInternal, "failed to scan job listing", err)
		}
		if postedBy.Valid {
			id := common.UUID(postedBy.String)
			item.PostedBy = &id
		}
		item.Applicants = toUUIDs(applicants)
		items = append(items, item)
	}
	return items, total, nil
}

func (r *JobRepository) AddApplicant(ctx context.Context, id, applicationID common.UUID) error {
	return ensureMember(ctx, r.db, "jobs", "applicants", id, applicationID, "job not found")
}

func (r *JobRepository) RemoveApplicant(ctx context.Context, id, applicationID common.UUID) error {
	return removeMember(ctx, r.db, "jobs", "applicants", id, applicationID, "job not found")
}

const prefixedJobColumns = `j.id, j.company_id, j.posted_by, j.title, j.description, j.location, j.job_type, j.experience, j.salary, j.status, j.applicants, j.created_at, j.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*job.Job, error) {
	var j job.Job
	var postedBy sql.NullString
	var applicants pq.StringArray
	if err := row.Scan(&j.ID, &j.CompanyID, &postedBy, &j.Title, &j.Description, &j.Location, &j.Type, &j.Experience, &j.Salary, &j.Status, &applicants, &j.CreatedAt, &j.UpdatedAt); err != nil {
		return nil, err
	}
	if postedBy.Valid {
		id := common.UUID(postedBy.String)
		j.PostedBy = &id
	}
	j.Applicants = toUUIDs(applicants)
	return &j, nil
}

func escapeLike(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `%`, `\%`)
	return strings.ReplaceAll(value, `_`, `\_`)
}
