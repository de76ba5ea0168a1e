package interfaces

import (
	"context"
	"repairflow/internal/domain/entities"
)

// IShopRepository abstracts DynamoDB persistence for Shop configuration.

type IShopRepository interface {
	GetByID(ctx context.Context, id string) (entities.Shop, error)
	Put(ctx context.Context, s entities.Shop) (entities.Shop, error)
}
