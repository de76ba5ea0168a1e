package interfaces

import (
	"context"
	"repairflow/internal/domain/entities"
)

// IRateProvider abstracts the external rate/markup lookups the pricing
// engine consumes (labor-rate matrices, markup tables).

type IRateProvider interface {
	// LaborRate returns the per-hour labor price for the given booked hours.
	LaborRate(ctx context.Context, shop entities.Shop, hours float64) (float64, error)
	// PartMarkup returns the sell price for a part bought at the given cost.
	PartMarkup(ctx context.Context, shop entities.Shop, cost float64) (float64, error)
}
