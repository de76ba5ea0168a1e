package interfaces

import (
	"context"
	"repairflow/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job aggregates.
//
// A job record carries its job items and estimate items nested, so Save is
// the single unit of work for one apply-item-mutation or propose-transition
// call (single writer per job).

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	Save(ctx context.Context, j entities.Job) (entities.Job, error)
	// NextJobNumber atomically advances the per-shop job sequence.
	NextJobNumber(ctx context.Context, shopID string) (int64, error)
}
