package usecase

import (
	"context"
	"log"
	"sort"

	"repairflow/internal/domain/pricing"
	"repairflow/internal/usecase/interfaces"
)

// InventoryLedger reconciles reserved and on-hand quantities for tracked
// parts. Inventory tracking is opportunistic: parts without a record are
// silently skipped, and overcommitting available stock is allowed; it is
// logged and surfaced through CheckAvailability, never blocked.

type InventoryLedger struct {
	repo interfaces.IInventoryRepository
}

func NewInventoryLedger(repo interfaces.IInventoryRepository) *InventoryLedger {
	return &InventoryLedger{repo: repo}
}

// ReserveOrRelease applies the quantity change of one estimate line against
// available stock. The delta previousQty-newQty is added to the available
// quantity: growing a line reserves stock, shrinking or removing it releases
// stock back. Callers apply it exactly once per mutation, tracked through
// the line's TotalQuantity.
func (l *InventoryLedger) ReserveOrRelease(ctx context.Context, shopID, partNumber string, previousQty, newQty float64) error {
	if partNumber == "" {
		return nil
	}
	delta := previousQty - newQty
	if delta == 0 {
		return nil
	}

	rec, err := l.repo.GetByPartNumber(ctx, shopID, partNumber)
	if err != nil {
		return err
	}
	if !rec.Exists() {
		// Untracked part.
		return nil
	}

	updated, err := l.repo.AdjustAvailableQuantity(ctx, shopID, partNumber, delta)
	if err != nil {
		return err
	}
	if updated.AvailableQuantity < 0 {
		log.Printf("[ledger] available quantity overcommitted shop_id=%s part_number=%s available=%.2f", shopID, partNumber, updated.AvailableQuantity)
	}
	return nil
}

// CommitOnFinalize draws a finalized part line's quantity out of on-hand
// stock. The reservation against available quantity was already taken when
// the line was committed; this is the separate on-hand counter.
func (l *InventoryLedger) CommitOnFinalize(ctx context.Context, shopID, partNumber string, quantity float64) error {
	if partNumber == "" || quantity == 0 {
		return nil
	}
	rec, err := l.repo.GetByPartNumber(ctx, shopID, partNumber)
	if err != nil {
		return err
	}
	if !rec.Exists() {
		return nil
	}
	_, err = l.repo.AdjustOnHandQuantity(ctx, shopID, partNumber, -pricing.Round2(quantity))
	return err
}

// CheckAvailability flags the requested part numbers that cannot be covered
// by current net stock, including parts with no inventory record at all. It
// is advisory only.
func (l *InventoryLedger) CheckAvailability(ctx context.Context, shopID string, requested map[string]float64) ([]string, error) {
	var outOfStock []string
	for partNumber, quantity := range requested {
		rec, err := l.repo.GetByPartNumber(ctx, shopID, partNumber)
		if err != nil {
			return nil, err
		}
		if !rec.Exists() || rec.AvailableQuantity+quantity < quantity {
			outOfStock = append(outOfStock, partNumber)
		}
	}
	sort.Strings(outOfStock)
	return outOfStock, nil
}
