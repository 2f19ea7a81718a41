package job

import (
	"context"

	"jobhub/internal/common"
)

type Repository interface {
	Create(ctx context.Context, j Job) (*Job, error)
	GetByID(ctx context.Context, id common.UUID) (*Job, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*Job, error)
	Delete(ctx context.Context, id common.UUID) error
	ListByCompany(ctx context.Context, companyID common.UUID) ([]Job, error)
	// Search returns one page of matching listings ordered by creation time
	// descending, plus the total number of matches.
	Search(ctx context.Context, f Filters, limit, offset int) ([]Listing, int, error)
	AddApplicant(ctx context.Context, id, applicationID common.UUID) error
	RemoveApplicant(ctx context.Context, id, applicationID common.UUID) error
}
