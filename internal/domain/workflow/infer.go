package workflow

import "repairflow/internal/domain/entities"

// InferState derives the lifecycle state from job-item states (simplified
// flow). It is pure and idempotent; the caller persists the result.
//
// Priority order:
//   - a job with no items (or not yet persisted) is still awaiting diagnostic
//   - finalized is sticky
//   - any item actively being worked wins
//   - approved pending items with parts on order put the job in a parts
//     state: delayed while any part line is still unordered, ordered once
//     everything is on a PO
//   - when every item has passed the pending stage the repair is complete
//   - otherwise work is underway unless nothing has started at all
func InferState(job entities.Job) entities.LifecycleState {
	if job.ID == "" || len(job.Items) == 0 {
		return entities.StateAwaitingDiagnostic
	}
	if job.LifecycleState == entities.StateFinalized {
		return entities.StateFinalized
	}

	var orderedParts bool
	for _, it := range job.Items {
		if it.State == entities.ItemStateInProgress {
			return entities.StateRepairInProgress
		}
		if it.State == entities.ItemStateInitial && it.Approved() && len(it.OrderedParts()) > 0 {
			orderedParts = true
		}
	}
	if orderedParts {
		if job.HasUnorderedParts() {
			return entities.StatePartsDelayed
		}
		return entities.StatePartsOrdered
	}

	if allItemsSettled(job.Items) {
		return entities.StateRepairCompleted
	}
	if job.LifecycleState != entities.StateAwaitingDiagnostic {
		return entities.StateRepairInProgress
	}
	return job.LifecycleState
}

// allItemsSettled reports whether every item state is drawn from the settled
// set {declined, start_repair, complete_repair}.
func allItemsSettled(items []entities.JobItem) bool {
	for _, it := range items {
		switch it.State {
		case entities.ItemStateDeclined, entities.ItemStateStartRepair, entities.ItemStateCompleteRepair:
		default:
			return false
		}
	}
	return true
}
