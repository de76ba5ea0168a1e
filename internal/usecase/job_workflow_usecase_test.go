package usecase

import (
	"context"
	"errors"
	"testing"

	"repairflow/internal/domain/entities"
	"repairflow/internal/domain/workflow"
	mock_interfaces "repairflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func workflowFixture(t *testing.T) (*JobWorkflowUseCase, *mock_interfaces.MockIJobRepository, *mock_interfaces.MockIShopRepository, *mock_interfaces.MockIInventoryRepository, *mock_interfaces.MockINotificationDispatcher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	jobs := mock_interfaces.NewMockIJobRepository(ctrl)
	shops := mock_interfaces.NewMockIShopRepository(ctrl)
	inventory := mock_interfaces.NewMockIInventoryRepository(ctrl)
	notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
	uc := NewJobWorkflowUseCase(jobs, shops, NewInventoryLedger(inventory), notifier)
	return uc, jobs, shops, inventory, notifier
}

func explicitShop() entities.Shop {
	return entities.Shop{ID: "shop-1", Name: "Main St Auto", SalesTax: 8.5, DefaultHourlyRate: 110, LaborRate: 95}
}

func simplifiedShop() entities.Shop {
	s := explicitShop()
	s.Options = map[string]bool{entities.OptionSimplifiedStatus: true}
	return s
}

func echoSave(jobs *mock_interfaces.MockIJobRepository) {
	jobs.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, j entities.Job) (entities.Job, error) { return j, nil })
}

func TestJobWorkflowUseCase_CreateJob(t *testing.T) {
	t.Run("blank shop id", func(t *testing.T) {
		uc, _, _, _, _ := workflowFixture(t)
		if _, err := uc.CreateJob(context.Background(), CreateJobCommand{ShopID: "   "}); !errors.Is(err, ErrInvalidShopID) {
			t.Fatalf("expected ErrInvalidShopID, got %v", err)
		}
	})

	t.Run("unknown shop", func(t *testing.T) {
		uc, _, shops, _, _ := workflowFixture(t)
		shops.EXPECT().GetByID(gomock.Any(), "shop-1").Return(entities.Shop{}, nil)
		if _, err := uc.CreateJob(context.Background(), CreateJobCommand{ShopID: "shop-1"}); !errors.Is(err, ErrShopNotFound) {
			t.Fatalf("expected ErrShopNotFound, got %v", err)
		}
	})

	t.Run("opens the order with snapshotted taxes and a greeting", func(t *testing.T) {
		uc, jobs, shops, _, notifier := workflowFixture(t)
		shops.EXPECT().GetByID(gomock.Any(), "shop-1").Return(explicitShop(), nil)
		jobs.EXPECT().NextJobNumber(gomock.Any(), "shop-1").Return(int64(42), nil)
		jobs.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, j entities.Job) (entities.Job, error) { return j, nil })
		notifier.EXPECT().Notify(gomock.Any(), entities.NotifyGreetings, gomock.Any()).Return(nil)

		job, err := uc.CreateJob(context.Background(), CreateJobCommand{ShopID: "shop-1", ProfitCenter: "general"})
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if job.ID == "" {
			t.Fatalf("expected a generated id")
		}
		if job.JobNumber != 42 {
			t.Fatalf("expected job number 42, got %d", job.JobNumber)
		}
		if job.LifecycleState != entities.StateAwaitingDiagnostic {
			t.Fatalf("expected awaiting_diagnostic, got %s", job.LifecycleState)
		}
		if job.CustomerStatus != entities.StatusDiagnosing {
			t.Fatalf("expected diagnosing status, got %d", job.CustomerStatus)
		}
		// Labor defaults to untaxed, everything else to the shop sales tax.
		want := entities.TaxRates{Part: 8.5, Labor: 0, Supplies: 8.5, Fee: 8.5}
		if job.TaxRates != want {
			t.Fatalf("expected %+v, got %+v", want, job.TaxRates)
		}
	})

	t.Run("notification failure does not fail the create", func(t *testing.T) {
		uc, jobs, shops, _, notifier := workflowFixture(t)
		shops.EXPECT().GetByID(gomock.Any(), "shop-1").Return(explicitShop(), nil)
		jobs.EXPECT().NextJobNumber(gomock.Any(), "shop-1").Return(int64(7), nil)
		jobs.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, j entities.Job) (entities.Job, error) { return j, nil })
		notifier.EXPECT().Notify(gomock.Any(), entities.NotifyGreetings, gomock.Any()).Return(errors.New("queue down"))

		if _, err := uc.CreateJob(context.Background(), CreateJobCommand{ShopID: "shop-1"}); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})
}

func TestJobWorkflowUseCase_GetJob(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc, _, _, _, _ := workflowFixture(t)
		if _, err := uc.GetJob(context.Background(), ""); !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("missing job", func(t *testing.T) {
		uc, jobs, _, _, _ := workflowFixture(t)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)
		if _, err := uc.GetJob(context.Background(), "job-1"); !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}

func TestJobWorkflowUseCase_ProposeTransition(t *testing.T) {
	t.Run("invalid event leaves the job untouched", func(t *testing.T) {
		uc, jobs, shops, _, _ := workflowFixture(t)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(entities.Job{ID: "job-1", ShopID: "shop-1", LifecycleState: entities.StateFinalized}, nil)
		shops.EXPECT().GetByID(gomock.Any(), "shop-1").Return(explicitShop(), nil)

		_, err := uc.ProposeTransition(context.Background(), "job-1", workflow.EventStartRepair)
		var invalid *workflow.InvalidTransitionError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
	})

	t.Run("deny defers the approval", func(t *testing.T) {
		uc, jobs, shops, _, _ := workflowFixture(t)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(entities.Job{ID: "job-1", ShopID: "shop-1", LifecycleState: entities.StateDiagnosticComplete}, nil)
		shops.EXPECT().GetByID(gomock.Any(), "shop-1").Return(explicitShop(), nil)
		echoSave(jobs)

		job, err := uc.ProposeTransition(context.Background(), "job-1", workflow.EventDenyRepair)
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if job.LifecycleState != entities.StateRepairDenied {
			t.Fatalf("expected repair_denied, got %s", job.LifecycleState)
		}
		if job.ApprovalStatus != entities.ApprovalDeferred {
			t.Fatalf("expected deferred approval, got %q", job.ApprovalStatus)
		}
		if job.CustomerStatus != entities.StatusFinished {
			t.Fatalf("expected finished status, got %d", job.CustomerStatus)
		}
	})

	t.Run("finalize commits inventory and notifies", func(t *testing.T) {
		uc, jobs, shops, inventory, notifier := workflowFixture(t)
		job := entities.Job{
			ID:             "job-1",
			ShopID:         "shop-1",
			LifecycleState: entities.StateRepairCompleted,
			Items: []entities.JobItem{
				{
					ID: "item-1", State: entities.ItemStateCompleteRepair,
					EstimateItems: []entities.EstimateItem{
						{ID: "line-1", ItemType: entities.ItemTypePart, PartNumber: "P-1", SavedThrough: entities.SavedThroughInventory, Quantity: 2, TotalQuantity: 2},
						{ID: "line-2", ItemType: entities.ItemTypeLabor, Quantity: 1},
					},
				},
				{
					ID: "item-2", State: entities.ItemStateDeclined,
					EstimateItems: []entities.EstimateItem{
						{ID: "line-3", ItemType: entities.ItemTypePart, PartNumber: "P-2", SavedThrough: entities.SavedThroughInventory, Quantity: 1},
					},
				},
			},
		}
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		shops.EXPECT().GetByID(gomock.Any(), "shop-1").Return(explicitShop(), nil)
		inventory.EXPECT().GetByPartNumber(gomock.Any(), "shop-1", "P-1").
			Return(entities.InventoryRecord{ShopID: "shop-1", PartNumber: "P-1", Quantity: 10}, nil)
		inventory.EXPECT().AdjustOnHandQuantity(gomock.Any(), "shop-1", "P-1", -2.0).
			Return(entities.InventoryRecord{ShopID: "shop-1", PartNumber: "P-1", Quantity: 8}, nil)
		gomock.InOrder(
			notifier.EXPECT().Notify(gomock.Any(), entities.NotifyRepairCompleted, "job-1").Return(nil),
			notifier.EXPECT().Notify(gomock.Any(), entities.NotifyFinalizedInvoice, "job-1").Return(nil),
		)
		echoSave(jobs)

		out, err := uc.ProposeTransition(context.Background(), "job-1", workflow.EventFinalize)
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if out.LifecycleState != entities.StateFinalized {
			t.Fatalf("expected finalized, got %s", out.LifecycleState)
		}
		if out.FinalizedAt == nil {
			t.Fatalf("expected finalized_at to be set")
		}
		if out.Items[0].State != entities.ItemStateFinalize {
			t.Fatalf("expected item-1 finalized, got %s", out.Items[0].State)
		}
		if out.Items[1].State != entities.ItemStateDeclined {
			t.Fatalf("expected item-2 to stay declined, got %s", out.Items[1].State)
		}
		if out.WorkStartedAt == nil || out.WorkCompletedAt == nil {
			t.Fatalf("expected work timestamps to be set")
		}
	})

	t.Run("inventory commit failure aborts before save", func(t *testing.T) {
		uc, jobs, shops, inventory, notifier := workflowFixture(t)
		job := entities.Job{
			ID:             "job-1",
			ShopID:         "shop-1",
			LifecycleState: entities.StateRepairCompleted,
			Items: []entities.JobItem{
				{
					ID: "item-1", State: entities.ItemStateCompleteRepair,
					EstimateItems: []entities.EstimateItem{
						{ID: "line-1", ItemType: entities.ItemTypePart, PartNumber: "P-1", SavedThrough: entities.SavedThroughInventory, Quantity: 2},
					},
				},
			},
		}
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		shops.EXPECT().GetByID(gomock.Any(), "shop-1").Return(explicitShop(), nil)
		inventory.EXPECT().GetByPartNumber(gomock.Any(), "shop-1", "P-1").
			Return(entities.InventoryRecord{}, errors.New("db"))
		notifier.EXPECT().Notify(gomock.Any(), entities.NotifyRepairCompleted, "job-1").Return(nil).AnyTimes()

		if _, err := uc.ProposeTransition(context.Background(), "job-1", workflow.EventFinalize); err == nil {
			t.Fatalf("expected error, got nil")
		}
	})
}

func TestJobWorkflowUseCase_RecomputeStatus(t *testing.T) {
	t.Run("idempotent snapshot is not persisted", func(t *testing.T) {
		uc, jobs, shops, _, _ := workflowFixture(t)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(entities.Job{ID: "job-1", ShopID: "shop-1", LifecycleState: entities.StateAwaitingDiagnostic, CustomerStatus: entities.StatusDiagnosing}, nil)
		shops.EXPECT().GetByID(gomock.Any(), "shop-1").Return(explicitShop(), nil)

		snap, err := uc.RecomputeStatus(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if snap.CustomerStatus != entities.StatusDiagnosing {
			t.Fatalf("expected diagnosing, got %d", snap.CustomerStatus)
		}
	})

	t.Run("simplified mode infers the state and persists the change", func(t *testing.T) {
		uc, jobs, shops, _, _ := workflowFixture(t)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(entities.Job{
				ID: "job-1", ShopID: "shop-1",
				LifecycleState: entities.StateAwaitingDiagnostic,
				CustomerStatus: entities.StatusDiagnosing,
				Items:          []entities.JobItem{{ID: "item-1", State: entities.ItemStateInProgress}},
			}, nil)
		shops.EXPECT().GetByID(gomock.Any(), "shop-1").Return(simplifiedShop(), nil)
		echoSave(jobs)

		snap, err := uc.RecomputeStatus(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if snap.LifecycleState != entities.StateRepairInProgress {
			t.Fatalf("expected repair_in_progress, got %s", snap.LifecycleState)
		}
		if snap.CustomerStatus != entities.StatusInProcess {
			t.Fatalf("expected in process, got %d", snap.CustomerStatus)
		}
	})
}

func TestJobWorkflowUseCase_CheckStock(t *testing.T) {
	uc, jobs, _, inventory, _ := workflowFixture(t)
	job := entities.Job{
		ID: "job-1", ShopID: "shop-1",
		Items: []entities.JobItem{
			{
				ID: "item-1", State: entities.ItemStateInitial,
				EstimateItems: []entities.EstimateItem{
					{ID: "line-1", ItemType: entities.ItemTypePart, PartNumber: "P-1", SavedThrough: entities.SavedThroughInventory, Quantity: 2},
					{ID: "line-2", ItemType: entities.ItemTypePart, PartNumber: "P-9", Quantity: 4}, // vendor part, not ledger-backed
				},
			},
			{
				ID: "item-2", State: entities.ItemStateStartRepair,
				EstimateItems: []entities.EstimateItem{
					{ID: "line-3", ItemType: entities.ItemTypePart, PartNumber: "P-1", SavedThrough: entities.SavedThroughInventory, Quantity: 3},
				},
			},
			{
				ID: "item-3", State: entities.ItemStateDeclined,
				EstimateItems: []entities.EstimateItem{
					{ID: "line-4", ItemType: entities.ItemTypePart, PartNumber: "P-2", SavedThrough: entities.SavedThroughInventory, Quantity: 1},
				},
			},
		},
	}
	jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
	// Requested quantities are summed per part across items; overcommitted
	// stock shows up as a negative available quantity.
	inventory.EXPECT().GetByPartNumber(gomock.Any(), "shop-1", "P-1").
		Return(entities.InventoryRecord{ShopID: "shop-1", PartNumber: "P-1", AvailableQuantity: -1}, nil)

	missing, err := uc.CheckStock(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if len(missing) != 1 || missing[0] != "P-1" {
		t.Fatalf("expected [P-1], got %v", missing)
	}
}

func TestJobWorkflowUseCase_CloseJob(t *testing.T) {
	t.Run("closing twice is a no-op", func(t *testing.T) {
		uc, jobs, _, _, _ := workflowFixture(t)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(entities.Job{ID: "job-1", ShopID: "shop-1", LifecycleState: entities.StateFinalized, StateClosed: true}, nil)

		job, err := uc.CloseJob(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if !job.StateClosed {
			t.Fatalf("expected job to stay closed")
		}
	})

	t.Run("closing an already finalized job only flips the flag", func(t *testing.T) {
		uc, jobs, shops, _, _ := workflowFixture(t)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(entities.Job{ID: "job-1", ShopID: "shop-1", LifecycleState: entities.StateFinalized}, nil)
		shops.EXPECT().GetByID(gomock.Any(), "shop-1").Return(explicitShop(), nil)
		echoSave(jobs)

		job, err := uc.CloseJob(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if !job.StateClosed || job.ClosedAt == nil {
			t.Fatalf("expected closed job with closed_at")
		}
		if job.LifecycleState != entities.StateFinalized {
			t.Fatalf("expected finalized, got %s", job.LifecycleState)
		}
	})

	t.Run("closing an open job forces finalization first", func(t *testing.T) {
		uc, jobs, shops, _, notifier := workflowFixture(t)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(entities.Job{ID: "job-1", ShopID: "shop-1", LifecycleState: entities.StateRepairInProgress}, nil)
		shops.EXPECT().GetByID(gomock.Any(), "shop-1").Return(explicitShop(), nil)
		notifier.EXPECT().Notify(gomock.Any(), entities.NotifyRepairCompleted, "job-1").Return(nil)
		notifier.EXPECT().Notify(gomock.Any(), entities.NotifyFinalizedInvoice, "job-1").Return(nil)
		echoSave(jobs)

		job, err := uc.CloseJob(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if job.LifecycleState != entities.StateFinalized || !job.StateClosed {
			t.Fatalf("expected finalized+closed, got %s closed=%v", job.LifecycleState, job.StateClosed)
		}
		if job.FinalizedAt == nil {
			t.Fatalf("expected finalized_at to be set")
		}
	})
}
