// Package status projects the authoritative lifecycle state onto the coarse
// customer-facing status codes.
//
// There are two derivations. The legacy one runs for explicitly driven
// workflows; the simplified one runs when the shop infers lifecycle state
// from job items. Their fallback priorities for approved/deferred differ on
// purpose: they are two distinct mode-gated algorithms, not one algorithm
// with a flag.
package status

import (
	"repairflow/internal/domain/entities"
	"repairflow/internal/domain/workflow"
)

// ProfitCenterLube gets express-lane treatment in the legacy derivation: a
// lube job with no workflow signal yet is already "in process".
const ProfitCenterLube = "lube"

// Snapshot is the full status view of a job at a point in time.
type Snapshot struct {
	LifecycleState entities.LifecycleState `json:"lifecycle_state"`
	InternalStatus entities.CustomerStatus `json:"internal_status"`
	CustomerStatus entities.CustomerStatus `json:"customer_status"`
}

// DeriveLegacy maps lifecycle state and approval status to a customer status
// code. First match wins.
func DeriveLegacy(state entities.LifecycleState, approval entities.ApprovalStatus, profitCenter string) entities.CustomerStatus {
	switch state {
	case entities.StateRepairCompleted, entities.StateFinalized:
		return entities.StatusFinished
	case entities.StateRepairInProgress:
		return entities.StatusInProcess
	case entities.StatePartsDelayed, entities.StatePartsOrdered:
		return entities.StatusWaitingOnParts
	case entities.StateDiagnosticComplete:
		return entities.StatusWaitingOnCustomer
	}

	switch {
	case approval == entities.ApprovalApproved || approval == entities.ApprovalMixed:
		return entities.StatusWaitingOnParts
	case approval == entities.ApprovalDeferred || state == entities.StateRepairDenied:
		return entities.StatusFinished
	case profitCenter == ProfitCenterLube:
		return entities.StatusInProcess
	default:
		return entities.StatusDiagnosing
	}
}

// DeriveSimplified maps an inferred lifecycle state to a customer status
// code. Unlike the legacy derivation it distinguishes finalized-but-open from
// closed and leaves the prior code untouched for approved work with no state
// signal.
func DeriveSimplified(state entities.LifecycleState, approval entities.ApprovalStatus, stateClosed bool, prior entities.CustomerStatus) entities.CustomerStatus {
	switch state {
	case entities.StateFinalized:
		if stateClosed {
			return entities.StatusClosed
		}
		return entities.StatusFinalized
	case entities.StateRepairCompleted, entities.StateRepairDenied:
		return entities.StatusCompleted
	case entities.StateRepairInProgress:
		return entities.StatusInProcess
	case entities.StatePartsDelayed, entities.StatePartsOrdered:
		return entities.StatusWaitingOnParts
	case entities.StateDiagnosticComplete:
		return entities.StatusWaitingOnCustomer
	}

	switch {
	case approval == entities.ApprovalApproved || approval == entities.ApprovalMixed:
		return prior
	case approval == entities.ApprovalDeferred:
		return entities.StatusFinished
	default:
		return entities.StatusDiagnosing
	}
}

// Project computes the full snapshot for a job. It never mutates the job and
// calling it twice with no intervening change yields identical output.
func Project(job entities.Job, mode workflow.Mode) Snapshot {
	internal := DeriveLegacy(job.LifecycleState, job.ApprovalStatus, job.ProfitCenter)
	customer := internal
	if mode == workflow.ModeSimplified {
		customer = DeriveSimplified(job.LifecycleState, job.ApprovalStatus, job.StateClosed, job.CustomerStatus)
	}
	return Snapshot{
		LifecycleState: job.LifecycleState,
		InternalStatus: internal,
		CustomerStatus: customer,
	}
}
