package interfaces

import (
	"context"
	"repairflow/internal/domain/entities"
)

// IInventoryRepository abstracts DynamoDB persistence for InventoryRecord.
//
// Adjust* apply signed deltas as atomic read-modify-write updates on the
// (shop, part) key; this is what keeps the quantity conservation invariant
// intact when concurrent jobs touch the same part. GetByPartNumber returns
// the zero value for misses; absent records are not an error.

type IInventoryRepository interface {
	Put(ctx context.Context, rec entities.InventoryRecord) (entities.InventoryRecord, error)
	GetByPartNumber(ctx context.Context, shopID, partNumber string) (entities.InventoryRecord, error)
	AdjustAvailableQuantity(ctx context.Context, shopID, partNumber string, delta float64) (entities.InventoryRecord, error)
	AdjustOnHandQuantity(ctx context.Context, shopID, partNumber string, delta float64) (entities.InventoryRecord, error)
}
