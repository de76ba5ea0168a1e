package usecase

import (
	"context"
	"errors"
	"time"

	"repairflow/internal/domain/entities"
	"repairflow/internal/domain/pricing"
	"repairflow/internal/domain/status"
	"repairflow/internal/domain/workflow"
	"repairflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrJobFinalized = errors.New("job is finalized")

// ItemInput describes one job item to add, with its raw estimate lines. The
// lines go through the pricing engine before they land on the job.
type ItemInput struct {
	Description  string
	ApprovalType string
	PackagePrice *float64
	LaborPrice   *float64
	Lines        []pricing.Spec
}

// LineUpdate edits fields of an existing estimate line. Only non-nil fields
// are applied; quantity changes are reconciled against the inventory ledger
// on save.
type LineUpdate struct {
	EstimateItemID string
	Quantity       *float64
	Cost           *float64
	PricePerUnit   *float64
	Ordered        *bool
	Received       *bool
}

// ItemMutation is one batch of changes to a job's items, applied and
// persisted as a single unit.
type ItemMutation struct {
	Add                   []ItemInput
	UpdateLines           []LineUpdate
	RemoveEstimateItemIDs []string
	RemoveJobItemIDs      []string
	ItemStates            map[string]entities.JobItemState
	ItemApprovals         map[string]string
	ApprovalStatus        *entities.ApprovalStatus
}

// ItemMutationResult reports the persisted job, the items the mutation
// created, whether any new line needs manual price review, and the status
// snapshot after re-derivation.
type ItemMutationResult struct {
	Job         entities.Job
	AddedItems  []entities.JobItem
	NeedsReview bool
	Snapshot    status.Snapshot
}

type IJobItemsUseCase interface {
	ApplyItemMutation(ctx context.Context, jobID string, m ItemMutation) (ItemMutationResult, error)
	ConvertToRepairOrder(ctx context.Context, jobID string) (entities.Job, error)
}

type JobItemsUseCase struct {
	jobs   interfaces.IJobRepository
	shops  interfaces.IShopRepository
	ledger *InventoryLedger
	rates  interfaces.IRateProvider
}

var _ IJobItemsUseCase = (*JobItemsUseCase)(nil)

func NewJobItemsUseCase(
	jobs interfaces.IJobRepository,
	shops interfaces.IShopRepository,
	ledger *InventoryLedger,
	rates interfaces.IRateProvider,
) *JobItemsUseCase {
	return &JobItemsUseCase{jobs: jobs, shops: shops, ledger: ledger, rates: rates}
}

// ApplyItemMutation applies removals, state and approval changes, line edits
// and additions, reconciles inventory reservations, re-derives the status
// snapshot and saves the job.
func (u *JobItemsUseCase) ApplyItemMutation(ctx context.Context, jobID string, m ItemMutation) (ItemMutationResult, error) {
	job, err := loadJob(ctx, u.jobs, jobID)
	if err != nil {
		return ItemMutationResult{}, err
	}
	if job.LifecycleState == entities.StateFinalized {
		return ItemMutationResult{}, ErrJobFinalized
	}
	shop, err := loadShop(ctx, u.shops, job.ShopID)
	if err != nil {
		return ItemMutationResult{}, err
	}

	for _, id := range m.RemoveEstimateItemIDs {
		if err := u.removeLine(ctx, &job, id); err != nil {
			return ItemMutationResult{}, err
		}
	}
	for _, id := range m.RemoveJobItemIDs {
		if err := u.removeItem(ctx, &job, id); err != nil {
			return ItemMutationResult{}, err
		}
	}

	for itemID, approval := range m.ItemApprovals {
		if it := job.Item(itemID); it != nil {
			it.ApprovalType = approval
		}
	}
	for itemID, state := range m.ItemStates {
		it := job.Item(itemID)
		if it == nil || it.State == state {
			continue
		}
		it.State = state
		if state == entities.ItemStateDeclined {
			if err := u.releaseItem(ctx, &job, it); err != nil {
				return ItemMutationResult{}, err
			}
		}
	}

	for _, upd := range m.UpdateLines {
		applyLineUpdate(&job, upd)
	}

	var added []entities.JobItem
	var needsReview bool
	for _, in := range m.Add {
		item, review := u.buildItem(ctx, &job, shop, in)
		needsReview = needsReview || review
		job.Items = append(job.Items, item)
		added = append(added, item)
	}

	if m.ApprovalStatus != nil {
		job.ApprovalStatus = *m.ApprovalStatus
	}

	if err := u.syncReservations(ctx, &job); err != nil {
		return ItemMutationResult{}, err
	}

	snap := u.refreshStatus(&job, shop)
	job.UpdatedAt = time.Now().UTC()
	saved, err := u.jobs.Save(ctx, job)
	if err != nil {
		return ItemMutationResult{}, err
	}
	return ItemMutationResult{Job: saved, AddedItems: added, NeedsReview: needsReview, Snapshot: snap}, nil
}

// ConvertToRepairOrder turns a draft estimate into a live repair order. The
// draft never touched the ledger, so the conversion sweeps every pending
// quantity into a reservation in one pass. Converting a job that is already
// a repair order is a no-op.
func (u *JobItemsUseCase) ConvertToRepairOrder(ctx context.Context, jobID string) (entities.Job, error) {
	job, err := loadJob(ctx, u.jobs, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if !job.IsEstimate {
		return job, nil
	}
	shop, err := loadShop(ctx, u.shops, job.ShopID)
	if err != nil {
		return entities.Job{}, err
	}

	job.IsEstimate = false
	if err := u.syncReservations(ctx, &job); err != nil {
		return entities.Job{}, err
	}
	u.refreshStatus(&job, shop)
	job.UpdatedAt = time.Now().UTC()
	return u.jobs.Save(ctx, job)
}

// buildItem prices the input's lines through the pricing engine and
// assembles the job item.
func (u *JobItemsUseCase) buildItem(ctx context.Context, job *entities.Job, shop entities.Shop, in ItemInput) (entities.JobItem, bool) {
	itemID := uuid.NewString()
	pctx := pricing.Context{
		JobItemID:         itemID,
		PackagePrice:      in.PackagePrice,
		LaborPrice:        in.LaborPrice,
		TechnicianRate:    job.TechnicianRate,
		DefaultHourlyRate: shop.DefaultHourlyRate,
		FallbackLaborRate: shop.LaborRate,
		NewID:             uuid.NewString,
		LaborRate: func(hours float64) (float64, bool) {
			rate, err := u.rates.LaborRate(ctx, shop, hours)
			return rate, err == nil && rate > 0
		},
		Markup: func(cost float64) (float64, bool) {
			price, err := u.rates.PartMarkup(ctx, shop, cost)
			return price, err == nil && price > 0
		},
	}
	res := pricing.PriceItems(pctx, in.Lines, nil)
	return entities.JobItem{
		ID:            itemID,
		JobID:         job.ID,
		Description:   in.Description,
		State:         entities.ItemStateInitial,
		ApprovalType:  in.ApprovalType,
		PackagePrice:  in.PackagePrice,
		LaborPrice:    in.LaborPrice,
		Position:      len(job.Items) + 1,
		EstimateItems: res.Items,
	}, res.NeedsReview
}

// removeLine releases the line's outstanding reservation and drops it from
// its item.
func (u *JobItemsUseCase) removeLine(ctx context.Context, job *entities.Job, estimateItemID string) error {
	for i := range job.Items {
		it := &job.Items[i]
		for n := range it.EstimateItems {
			ei := it.EstimateItems[n]
			if ei.ID != estimateItemID {
				continue
			}
			if reservationTracked(job, *it, ei) {
				if err := u.ledger.ReserveOrRelease(ctx, job.ShopID, ei.PartNumber, ei.TotalQuantity, 0); err != nil {
					return err
				}
			}
			it.EstimateItems = append(it.EstimateItems[:n], it.EstimateItems[n+1:]...)
			return nil
		}
	}
	return nil
}

// removeItem releases every tracked line of the item and drops the item.
func (u *JobItemsUseCase) removeItem(ctx context.Context, job *entities.Job, itemID string) error {
	for i := range job.Items {
		it := job.Items[i]
		if it.ID != itemID {
			continue
		}
		for _, ei := range it.EstimateItems {
			if reservationTracked(job, it, ei) {
				if err := u.ledger.ReserveOrRelease(ctx, job.ShopID, ei.PartNumber, ei.TotalQuantity, 0); err != nil {
					return err
				}
			}
		}
		job.Items = append(job.Items[:i], job.Items[i+1:]...)
		return nil
	}
	return nil
}

// releaseItem returns a declined item's reserved quantities to the ledger
// and zeroes the reconciled counters so a later un-decline re-reserves.
func (u *JobItemsUseCase) releaseItem(ctx context.Context, job *entities.Job, it *entities.JobItem) error {
	for n := range it.EstimateItems {
		ei := &it.EstimateItems[n]
		if !job.IsEstimate && ei.ItemType == entities.ItemTypePart && ei.FromInventory() {
			if err := u.ledger.ReserveOrRelease(ctx, job.ShopID, ei.PartNumber, ei.TotalQuantity, 0); err != nil {
				return err
			}
			ei.TotalQuantity = 0
		}
	}
	return nil
}

// syncReservations reconciles every inventory-backed part line of the job's
// non-declined items against the ledger, using the quantity delta since the
// last reconciliation. Draft estimates never touch the ledger; their deltas
// stay pending until conversion.
func (u *JobItemsUseCase) syncReservations(ctx context.Context, job *entities.Job) error {
	if job.IsEstimate {
		return nil
	}
	for i := range job.Items {
		it := &job.Items[i]
		if it.State == entities.ItemStateDeclined {
			continue
		}
		for n := range it.EstimateItems {
			ei := &it.EstimateItems[n]
			if ei.ItemType != entities.ItemTypePart || !ei.FromInventory() {
				continue
			}
			if ei.Quantity == ei.TotalQuantity {
				continue
			}
			if err := u.ledger.ReserveOrRelease(ctx, job.ShopID, ei.PartNumber, ei.TotalQuantity, ei.Quantity); err != nil {
				return err
			}
			ei.TotalQuantity = ei.Quantity
		}
	}
	return nil
}

// refreshStatus re-derives the status snapshot after a mutation, inferring
// the lifecycle state first when the shop runs the simplified flow.
func (u *JobItemsUseCase) refreshStatus(job *entities.Job, shop entities.Shop) status.Snapshot {
	mode := workflow.ModeFor(shop)
	if mode == workflow.ModeSimplified {
		job.LifecycleState = workflow.InferState(*job)
	}
	snap := status.Project(*job, mode)
	job.CustomerStatus = snap.CustomerStatus
	return snap
}

func reservationTracked(job *entities.Job, it entities.JobItem, ei entities.EstimateItem) bool {
	return !job.IsEstimate &&
		it.State != entities.ItemStateDeclined &&
		ei.ItemType == entities.ItemTypePart &&
		ei.FromInventory()
}

func applyLineUpdate(job *entities.Job, upd LineUpdate) {
	for i := range job.Items {
		ei := job.Items[i].EstimateItem(upd.EstimateItemID)
		if ei == nil {
			continue
		}
		if upd.Quantity != nil {
			ei.Quantity = *upd.Quantity
		}
		if upd.Cost != nil {
			ei.Cost = *upd.Cost
		}
		if upd.PricePerUnit != nil {
			ei.PricePerUnit = *upd.PricePerUnit
		}
		now := time.Now().UTC()
		if upd.Ordered != nil {
			if *upd.Ordered {
				ei.OrderedAt = &now
			} else {
				ei.OrderedAt = nil
			}
		}
		if upd.Received != nil {
			if *upd.Received {
				ei.ReceivedAt = &now
			} else {
				ei.ReceivedAt = nil
			}
		}
		return
	}
}
