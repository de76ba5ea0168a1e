package usecase

import (
	"context"
	"errors"
	"testing"

	"repairflow/internal/domain/entities"
	"repairflow/internal/domain/pricing"
	mock_interfaces "repairflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func itemsFixture(t *testing.T) (*JobItemsUseCase, *mock_interfaces.MockIJobRepository, *mock_interfaces.MockIShopRepository, *mock_interfaces.MockIInventoryRepository, *mock_interfaces.MockIRateProvider) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	jobs := mock_interfaces.NewMockIJobRepository(ctrl)
	shops := mock_interfaces.NewMockIShopRepository(ctrl)
	inventory := mock_interfaces.NewMockIInventoryRepository(ctrl)
	rates := mock_interfaces.NewMockIRateProvider(ctrl)
	uc := NewJobItemsUseCase(jobs, shops, NewInventoryLedger(inventory), rates)
	return uc, jobs, shops, inventory, rates
}

func fptr(v float64) *float64 { return &v }

// inventoryLine builds a ledger-backed part line with the reconciled
// counter already at the given value.
func inventoryLine(id, partNumber string, quantity, totalQuantity float64) entities.EstimateItem {
	return entities.EstimateItem{
		ID:            id,
		ItemType:      entities.ItemTypePart,
		PartNumber:    partNumber,
		SavedThrough:  entities.SavedThroughInventory,
		Quantity:      quantity,
		TotalQuantity: totalQuantity,
	}
}

func TestJobItemsUseCase_ApplyItemMutation(t *testing.T) {
	t.Run("finalized job rejects mutations", func(t *testing.T) {
		uc, jobs, _, _, _ := itemsFixture(t)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(entities.Job{ID: "job-1", ShopID: "shop-1", LifecycleState: entities.StateFinalized}, nil)

		if _, err := uc.ApplyItemMutation(context.Background(), "job-1", ItemMutation{}); !errors.Is(err, ErrJobFinalized) {
			t.Fatalf("expected ErrJobFinalized, got %v", err)
		}
	})

	t.Run("adding an item prices its lines and marks gaps for review", func(t *testing.T) {
		uc, jobs, shops, _, _ := itemsFixture(t)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(entities.Job{ID: "job-1", ShopID: "shop-1", LifecycleState: entities.StateAwaitingDiagnostic}, nil)
		shops.EXPECT().GetByID(gomock.Any(), "shop-1").Return(explicitShop(), nil)
		echoSave(jobs)

		res, err := uc.ApplyItemMutation(context.Background(), "job-1", ItemMutation{
			Add: []ItemInput{{
				Description: "Brake service",
				Lines: []pricing.Spec{
					{ItemType: entities.ItemTypePart, Description: "Pads", Quantity: 2, PricePerUnit: fptr(30)},
					// Part with no cost and no price cannot be priced.
					{ItemType: entities.ItemTypePart, Description: "Mystery bolt", Quantity: 1},
				},
			}},
		})
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if len(res.AddedItems) != 1 {
			t.Fatalf("expected 1 added item, got %d", len(res.AddedItems))
		}
		item := res.AddedItems[0]
		if item.State != entities.ItemStateInitial || item.Position != 1 {
			t.Fatalf("expected initial item at position 1, got %s/%d", item.State, item.Position)
		}
		if len(item.EstimateItems) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(item.EstimateItems))
		}
		if item.EstimateItems[0].PricePerUnit != 30 {
			t.Fatalf("expected override price 30, got %v", item.EstimateItems[0].PricePerUnit)
		}
		if !res.NeedsReview {
			t.Fatalf("expected needs-review flag")
		}
	})

	t.Run("quantity edit reconciles the reservation delta", func(t *testing.T) {
		uc, jobs, shops, inventory, _ := itemsFixture(t)
		job := entities.Job{
			ID: "job-1", ShopID: "shop-1", LifecycleState: entities.StateRepairInProgress,
			Items: []entities.JobItem{{
				ID: "item-1", State: entities.ItemStateStartRepair,
				EstimateItems: []entities.EstimateItem{inventoryLine("line-1", "P-1", 2, 2)},
			}},
		}
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		shops.EXPECT().GetByID(gomock.Any(), "shop-1").Return(explicitShop(), nil)
		// 2 reserved, 5 requested: 3 more come off available stock.
		inventory.EXPECT().GetByPartNumber(gomock.Any(), "shop-1", "P-1").
			Return(entities.InventoryRecord{ShopID: "shop-1", PartNumber: "P-1", AvailableQuantity: 10}, nil)
		inventory.EXPECT().AdjustAvailableQuantity(gomock.Any(), "shop-1", "P-1", -3.0).
			Return(entities.InventoryRecord{ShopID: "shop-1", PartNumber: "P-1", AvailableQuantity: 7}, nil)
		echoSave(jobs)

		res, err := uc.ApplyItemMutation(context.Background(), "job-1", ItemMutation{
			UpdateLines: []LineUpdate{{EstimateItemID: "line-1", Quantity: fptr(5)}},
		})
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		line := res.Job.Items[0].EstimateItems[0]
		if line.Quantity != 5 || line.TotalQuantity != 5 {
			t.Fatalf("expected quantity and total_quantity 5, got %v/%v", line.Quantity, line.TotalQuantity)
		}
	})

	t.Run("removing a line releases its reservation", func(t *testing.T) {
		uc, jobs, shops, inventory, _ := itemsFixture(t)
		job := entities.Job{
			ID: "job-1", ShopID: "shop-1", LifecycleState: entities.StateRepairInProgress,
			Items: []entities.JobItem{{
				ID: "item-1", State: entities.ItemStateStartRepair,
				EstimateItems: []entities.EstimateItem{
					inventoryLine("line-1", "P-1", 4, 4),
					{ID: "line-2", ItemType: entities.ItemTypeLabor, Quantity: 1},
				},
			}},
		}
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		shops.EXPECT().GetByID(gomock.Any(), "shop-1").Return(explicitShop(), nil)
		inventory.EXPECT().GetByPartNumber(gomock.Any(), "shop-1", "P-1").
			Return(entities.InventoryRecord{ShopID: "shop-1", PartNumber: "P-1", AvailableQuantity: 0}, nil)
		inventory.EXPECT().AdjustAvailableQuantity(gomock.Any(), "shop-1", "P-1", 4.0).
			Return(entities.InventoryRecord{ShopID: "shop-1", PartNumber: "P-1", AvailableQuantity: 4}, nil)
		echoSave(jobs)

		res, err := uc.ApplyItemMutation(context.Background(), "job-1", ItemMutation{
			RemoveEstimateItemIDs: []string{"line-1"},
		})
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if len(res.Job.Items[0].EstimateItems) != 1 || res.Job.Items[0].EstimateItems[0].ID != "line-2" {
			t.Fatalf("expected only line-2 to remain, got %+v", res.Job.Items[0].EstimateItems)
		}
	})

	t.Run("declining an item releases and zeroes its reservations", func(t *testing.T) {
		uc, jobs, shops, inventory, _ := itemsFixture(t)
		job := entities.Job{
			ID: "job-1", ShopID: "shop-1", LifecycleState: entities.StateRepairInProgress,
			Items: []entities.JobItem{{
				ID: "item-1", State: entities.ItemStateInitial,
				EstimateItems: []entities.EstimateItem{inventoryLine("line-1", "P-1", 3, 3)},
			}},
		}
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		shops.EXPECT().GetByID(gomock.Any(), "shop-1").Return(explicitShop(), nil)
		inventory.EXPECT().GetByPartNumber(gomock.Any(), "shop-1", "P-1").
			Return(entities.InventoryRecord{ShopID: "shop-1", PartNumber: "P-1", AvailableQuantity: 0}, nil)
		inventory.EXPECT().AdjustAvailableQuantity(gomock.Any(), "shop-1", "P-1", 3.0).
			Return(entities.InventoryRecord{ShopID: "shop-1", PartNumber: "P-1", AvailableQuantity: 3}, nil)
		echoSave(jobs)

		res, err := uc.ApplyItemMutation(context.Background(), "job-1", ItemMutation{
			ItemStates: map[string]entities.JobItemState{"item-1": entities.ItemStateDeclined},
		})
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		it := res.Job.Items[0]
		if it.State != entities.ItemStateDeclined {
			t.Fatalf("expected declined, got %s", it.State)
		}
		if it.EstimateItems[0].TotalQuantity != 0 {
			t.Fatalf("expected total_quantity 0, got %v", it.EstimateItems[0].TotalQuantity)
		}
	})

	t.Run("draft estimates never touch the ledger", func(t *testing.T) {
		uc, jobs, shops, _, _ := itemsFixture(t)
		job := entities.Job{
			ID: "job-1", ShopID: "shop-1", IsEstimate: true, LifecycleState: entities.StateAwaitingDiagnostic,
			Items: []entities.JobItem{{
				ID: "item-1", State: entities.ItemStateInitial,
				EstimateItems: []entities.EstimateItem{inventoryLine("line-1", "P-1", 2, 0)},
			}},
		}
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		shops.EXPECT().GetByID(gomock.Any(), "shop-1").Return(explicitShop(), nil)
		echoSave(jobs)

		res, err := uc.ApplyItemMutation(context.Background(), "job-1", ItemMutation{
			UpdateLines: []LineUpdate{{EstimateItemID: "line-1", Quantity: fptr(6)}},
		})
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		line := res.Job.Items[0].EstimateItems[0]
		if line.Quantity != 6 || line.TotalQuantity != 0 {
			t.Fatalf("expected pending delta to stay unreconciled, got %v/%v", line.Quantity, line.TotalQuantity)
		}
	})

	t.Run("approval override and simplified re-inference", func(t *testing.T) {
		uc, jobs, shops, _, _ := itemsFixture(t)
		job := entities.Job{
			ID: "job-1", ShopID: "shop-1", LifecycleState: entities.StateAwaitingDiagnostic,
			Items: []entities.JobItem{{ID: "item-1", State: entities.ItemStateInitial}},
		}
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		shops.EXPECT().GetByID(gomock.Any(), "shop-1").Return(simplifiedShop(), nil)
		echoSave(jobs)

		approved := entities.ApprovalApproved
		res, err := uc.ApplyItemMutation(context.Background(), "job-1", ItemMutation{
			ItemStates:     map[string]entities.JobItemState{"item-1": entities.ItemStateInProgress},
			ApprovalStatus: &approved,
		})
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if res.Job.ApprovalStatus != entities.ApprovalApproved {
			t.Fatalf("expected approved, got %q", res.Job.ApprovalStatus)
		}
		if res.Snapshot.LifecycleState != entities.StateRepairInProgress {
			t.Fatalf("expected inferred repair_in_progress, got %s", res.Snapshot.LifecycleState)
		}
		if res.Snapshot.CustomerStatus != entities.StatusInProcess {
			t.Fatalf("expected in process, got %d", res.Snapshot.CustomerStatus)
		}
	})
}

func TestJobItemsUseCase_ConvertToRepairOrder(t *testing.T) {
	t.Run("converting a repair order is a no-op", func(t *testing.T) {
		uc, jobs, _, _, _ := itemsFixture(t)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(entities.Job{ID: "job-1", ShopID: "shop-1"}, nil)

		job, err := uc.ConvertToRepairOrder(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if job.IsEstimate {
			t.Fatalf("expected a repair order")
		}
	})

	t.Run("conversion sweeps pending reservations", func(t *testing.T) {
		uc, jobs, shops, inventory, _ := itemsFixture(t)
		job := entities.Job{
			ID: "job-1", ShopID: "shop-1", IsEstimate: true, LifecycleState: entities.StateAwaitingDiagnostic,
			Items: []entities.JobItem{{
				ID: "item-1", State: entities.ItemStateInitial,
				EstimateItems: []entities.EstimateItem{
					inventoryLine("line-1", "P-1", 3, 0),
					inventoryLine("line-2", "P-2", 1, 1), // already reconciled, no delta
				},
			}},
		}
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		shops.EXPECT().GetByID(gomock.Any(), "shop-1").Return(explicitShop(), nil)
		inventory.EXPECT().GetByPartNumber(gomock.Any(), "shop-1", "P-1").
			Return(entities.InventoryRecord{ShopID: "shop-1", PartNumber: "P-1", AvailableQuantity: 5}, nil)
		inventory.EXPECT().AdjustAvailableQuantity(gomock.Any(), "shop-1", "P-1", -3.0).
			Return(entities.InventoryRecord{ShopID: "shop-1", PartNumber: "P-1", AvailableQuantity: 2}, nil)
		echoSave(jobs)

		out, err := uc.ConvertToRepairOrder(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if out.IsEstimate {
			t.Fatalf("expected a repair order")
		}
		if tq := out.Items[0].EstimateItems[0].TotalQuantity; tq != 3 {
			t.Fatalf("expected total_quantity 3, got %v", tq)
		}
	})
}
