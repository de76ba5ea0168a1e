package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"repairflow/internal/domain/entities"
	"repairflow/internal/domain/status"
	"repairflow/internal/domain/workflow"
	"repairflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound   = errors.New("job not found")
	ErrInvalidJobID  = errors.New("invalid job id")
	ErrShopNotFound  = errors.New("shop not found")
	ErrInvalidShopID = errors.New("invalid shop id")
)

// IJobWorkflowUseCase exposes the workflow operations on a repair order:
// explicit transitions, status recomputation, the stock advisory check and
// closing.

type IJobWorkflowUseCase interface {
	CreateJob(ctx context.Context, cmd CreateJobCommand) (entities.Job, error)
	GetJob(ctx context.Context, id string) (entities.Job, error)
	ProposeTransition(ctx context.Context, jobID string, event workflow.Event) (entities.Job, error)
	RecomputeStatus(ctx context.Context, jobID string) (status.Snapshot, error)
	CheckStock(ctx context.Context, jobID string) ([]string, error)
	CloseJob(ctx context.Context, jobID string) (entities.Job, error)
}

// CreateJobCommand carries the inputs for opening a repair order or draft
// estimate.
type CreateJobCommand struct {
	ShopID         string
	IsEstimate     bool
	ProfitCenter   string
	TechnicianRate *float64
}

type JobWorkflowUseCase struct {
	jobs     interfaces.IJobRepository
	shops    interfaces.IShopRepository
	ledger   *InventoryLedger
	notifier interfaces.INotificationDispatcher
}

var _ IJobWorkflowUseCase = (*JobWorkflowUseCase)(nil)

func NewJobWorkflowUseCase(
	jobs interfaces.IJobRepository,
	shops interfaces.IShopRepository,
	ledger *InventoryLedger,
	notifier interfaces.INotificationDispatcher,
) *JobWorkflowUseCase {
	return &JobWorkflowUseCase{jobs: jobs, shops: shops, ledger: ledger, notifier: notifier}
}

func (u *JobWorkflowUseCase) CreateJob(ctx context.Context, cmd CreateJobCommand) (entities.Job, error) {
	shopID := strings.TrimSpace(cmd.ShopID)
	if shopID == "" {
		return entities.Job{}, ErrInvalidShopID
	}
	shop, err := loadShop(ctx, u.shops, shopID)
	if err != nil {
		return entities.Job{}, err
	}

	number, err := u.jobs.NextJobNumber(ctx, shopID)
	if err != nil {
		return entities.Job{}, err
	}

	now := time.Now().UTC()
	job := entities.Job{
		ID:             uuid.NewString(),
		ShopID:         shopID,
		JobNumber:      number,
		LifecycleState: entities.StateAwaitingDiagnostic,
		ApprovalStatus: entities.ApprovalNone,
		IsEstimate:     cmd.IsEstimate,
		ProfitCenter:   cmd.ProfitCenter,
		TechnicianRate: cmd.TechnicianRate,
		TaxRates:       shop.SnapshotTaxRates(),
		StateChangedAt: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	job.CustomerStatus = status.Project(job, workflow.ModeFor(shop)).CustomerStatus

	created, err := u.jobs.Create(ctx, job)
	if err != nil {
		return entities.Job{}, err
	}
	u.dispatch(ctx, entities.NotifyGreetings, created.ID)
	return created, nil
}

func (u *JobWorkflowUseCase) GetJob(ctx context.Context, id string) (entities.Job, error) {
	return loadJob(ctx, u.jobs, id)
}

// ProposeTransition validates the event against the transition table and, on
// success, applies the new state plus its side effects and persists the job.
// An invalid event leaves the job untouched.
func (u *JobWorkflowUseCase) ProposeTransition(ctx context.Context, jobID string, event workflow.Event) (entities.Job, error) {
	job, err := loadJob(ctx, u.jobs, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	shop, err := loadShop(ctx, u.shops, job.ShopID)
	if err != nil {
		return entities.Job{}, err
	}

	if err := u.applyTransition(ctx, &job, workflow.ModeFor(shop), event); err != nil {
		return entities.Job{}, err
	}
	return u.jobs.Save(ctx, job)
}

// RecomputeStatus re-derives the status snapshot. In simplified mode the
// lifecycle state itself is inferred from item states first. The
// recomputation is idempotent; the job is only written when a field actually
// changed.
func (u *JobWorkflowUseCase) RecomputeStatus(ctx context.Context, jobID string) (status.Snapshot, error) {
	job, err := loadJob(ctx, u.jobs, jobID)
	if err != nil {
		return status.Snapshot{}, err
	}
	shop, err := loadShop(ctx, u.shops, job.ShopID)
	if err != nil {
		return status.Snapshot{}, err
	}
	mode := workflow.ModeFor(shop)

	before := job
	if mode == workflow.ModeSimplified {
		job.LifecycleState = workflow.InferState(job)
	}
	snap := status.Project(job, mode)
	job.CustomerStatus = snap.CustomerStatus

	if job.LifecycleState != before.LifecycleState || job.CustomerStatus != before.CustomerStatus {
		job.UpdatedAt = time.Now().UTC()
		if _, err := u.jobs.Save(ctx, job); err != nil {
			return status.Snapshot{}, err
		}
	}
	return snap, nil
}

// CheckStock sums the inventory-backed part quantities of the job's
// non-declined items and returns the part numbers current stock cannot
// cover. Advisory only; it never blocks anything.
func (u *JobWorkflowUseCase) CheckStock(ctx context.Context, jobID string) ([]string, error) {
	job, err := loadJob(ctx, u.jobs, jobID)
	if err != nil {
		return nil, err
	}

	requested := map[string]float64{}
	for _, it := range job.NonDeclinedItems() {
		for _, ei := range it.EstimateItems {
			if ei.ItemType == entities.ItemTypePart && ei.FromInventory() {
				requested[ei.PartNumber] += ei.Quantity
			}
		}
	}
	return u.ledger.CheckAvailability(ctx, job.ShopID, requested)
}

// CloseJob closes the order: it forces finalization when the workflow never
// got there and flips the closed flag. Closing an already-closed job is a
// no-op.
func (u *JobWorkflowUseCase) CloseJob(ctx context.Context, jobID string) (entities.Job, error) {
	job, err := loadJob(ctx, u.jobs, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.StateClosed {
		return job, nil
	}
	shop, err := loadShop(ctx, u.shops, job.ShopID)
	if err != nil {
		return entities.Job{}, err
	}
	mode := workflow.ModeFor(shop)

	now := time.Now().UTC()
	if job.LifecycleState != entities.StateFinalized {
		if err := u.applyTransition(ctx, &job, mode, workflow.EventFinalize); err != nil {
			return entities.Job{}, err
		}
	}
	job.StateClosed = true
	job.ClosedAt = &now
	job.CustomerStatus = status.Project(job, mode).CustomerStatus
	job.UpdatedAt = now
	return u.jobs.Save(ctx, job)
}

// applyTransition mutates the job in memory per the transition result and
// executes its effects. Nothing is persisted here.
func (u *JobWorkflowUseCase) applyTransition(ctx context.Context, job *entities.Job, mode workflow.Mode, event workflow.Event) error {
	res, err := workflow.Transition(job.LifecycleState, event)
	if err != nil {
		log.Printf("[workflow] rejected transition job_id=%s state=%s event=%s", job.ID, job.LifecycleState, event)
		return err
	}

	now := time.Now().UTC()
	job.LifecycleState = res.To
	job.StateChangedAt = now

	// Approval changes land before the status projection reads them.
	for _, ef := range res.Effects {
		if ef.Kind == workflow.EffectSetDeferredApproval {
			job.ApprovalStatus = entities.ApprovalDeferred
		}
	}
	job.CustomerStatus = status.Project(*job, mode).CustomerStatus

	for _, ef := range res.Effects {
		switch ef.Kind {
		case workflow.EffectSetFinalizedAt:
			job.FinalizedAt = &now
		case workflow.EffectFinalizeJobItems:
			finalizeJobItems(job)
		case workflow.EffectCommitInventory:
			if err := u.commitFinalizedParts(ctx, job); err != nil {
				return err
			}
		case workflow.EffectNotify:
			u.dispatch(ctx, ef.Notification, job.ID)
		}
	}

	setWorkTimestamps(job, now)
	job.UpdatedAt = now
	return nil
}

// finalizeJobItems moves every item that is neither declined nor already
// finalized into the finalize state.
func finalizeJobItems(job *entities.Job) {
	for i := range job.Items {
		switch job.Items[i].State {
		case entities.ItemStateDeclined, entities.ItemStateFinalize:
		default:
			job.Items[i].State = entities.ItemStateFinalize
		}
	}
}

// commitFinalizedParts draws the inventory-backed part lines of finalized
// items out of on-hand stock.
func (u *JobWorkflowUseCase) commitFinalizedParts(ctx context.Context, job *entities.Job) error {
	for _, it := range job.FinalizedItems() {
		for _, ei := range it.EstimateItems {
			if ei.ItemType != entities.ItemTypePart || !ei.FromInventory() {
				continue
			}
			if err := u.ledger.CommitOnFinalize(ctx, job.ShopID, ei.PartNumber, ei.Quantity); err != nil {
				return err
			}
		}
	}
	return nil
}

func setWorkTimestamps(job *entities.Job, now time.Time) {
	switch job.LifecycleState {
	case entities.StateRepairInProgress, entities.StateRepairCompleted, entities.StateFinalized:
		if job.WorkStartedAt == nil {
			job.WorkStartedAt = &now
		}
	}
	switch job.LifecycleState {
	case entities.StateRepairCompleted, entities.StateFinalized:
		if job.WorkCompletedAt == nil {
			job.WorkCompletedAt = &now
		}
	}
}

// dispatch requests a notification send. Failures are logged and swallowed;
// a missing or broken dispatcher never fails a workflow operation.
func (u *JobWorkflowUseCase) dispatch(ctx context.Context, kind entities.NotificationKind, jobID string) {
	if u.notifier == nil {
		log.Printf("[workflow] notification dispatcher not configured kind=%s job_id=%s", kind, jobID)
		return
	}
	if err := u.notifier.Notify(ctx, kind, jobID); err != nil {
		log.Printf("[workflow] notification dispatch failed kind=%s job_id=%s err=%v", kind, jobID, err)
	}
}

func loadJob(ctx context.Context, repo interfaces.IJobRepository, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	job, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

func loadShop(ctx context.Context, repo interfaces.IShopRepository, id string) (entities.Shop, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Shop{}, ErrInvalidShopID
	}
	shop, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Shop{}, err
	}
	if shop.ID == "" {
		return entities.Shop{}, ErrShopNotFound
	}
	return shop, nil
}
