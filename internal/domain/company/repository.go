package company

import (
	"context"

	"jobhub/internal/common"
)

type Repository interface {
	Create(ctx context.Context, c Company) (*Company, error)
	GetByID(ctx context.Context, id common.UUID) (*Company, error)
	// Approve sets verified=true and status=active as a single update.
	Approve(ctx context.Context, id common.UUID) (*Company, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*Company, error)
	AddJob(ctx context.Context, id, jobID common.UUID) error
	RemoveJob(ctx context.Context, id, jobID common.UUID) error
	AddRecruiter(ctx context.Context, id, accountID common.UUID) error
	RemoveRecruiter(ctx context.Context, id, accountID common.UUID) error
}
