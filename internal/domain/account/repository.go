package account

import (
	"context"

	"jobhub/internal/common"
)

// Repository list mutations are idempotent ensure-member / remove-member
// operations: adding an id that is already present is a no-op, so retries
// and concurrent paired updates are safe.
type Repository interface {
	Create(ctx context.Context, a Account) (*Account, error)
	GetByID(ctx context.Context, id common.UUID) (*Account, error)
	GetByIDs(ctx context.Context, ids []common.UUID) ([]Account, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*Account, error)
	AddJobPost(ctx context.Context, id, jobID common.UUID) error
	RemoveJobPost(ctx context.Context, id, jobID common.UUID) error
	AddApplication(ctx context.Context, id, applicationID common.UUID) error
	RemoveApplication(ctx context.Context, id, applicationID common.UUID) error
	AddSavedJob(ctx context.Context, id, jobID common.UUID) error
	RemoveSavedJob(ctx context.Context, id, jobID common.UUID) error
}
