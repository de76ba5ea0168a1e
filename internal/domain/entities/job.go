package entities

import "time"

// LifecycleState is the authoritative workflow state of a repair order.
//
// Domain notes:
//   - The workflow is deliberately permissive: real shops skip stages, so most
//     non-terminal states can reach most later states directly.
//   - "finalized" is terminal. Nothing escapes it; closing a job only flips
//     StateClosed.

type LifecycleState string

const (
	StateAwaitingDiagnostic    LifecycleState = "awaiting_diagnostic"
	StatePerformingDiagnostic  LifecycleState = "technician_performing_diagnostic"
	StateDiagnosticComplete    LifecycleState = "diagnostic_complete"
	StatePartsOrdered          LifecycleState = "parts_ordered"
	StatePartsDelayed          LifecycleState = "parts_delayed"
	StatePartsDelivered        LifecycleState = "parts_delivered"
	StateRepairInProgress      LifecycleState = "repair_in_progress"
	StateRepairCompleted       LifecycleState = "repair_completed"
	StateRepairDenied          LifecycleState = "repair_denied"
	StateFinalized             LifecycleState = "finalized"
)

// ApprovalStatus tracks how much of the estimate the customer signed off on.

type ApprovalStatus string

const (
	ApprovalNone     ApprovalStatus = ""
	ApprovalPartial  ApprovalStatus = "partial"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalDeferred ApprovalStatus = "deferred"
	ApprovalMixed    ApprovalStatus = "mixed"
)

// CustomerStatus is the coarse customer-facing status code projected from the
// lifecycle state. The numeric values are part of the reporting contract.

type CustomerStatus int

const (
	StatusDiagnosing        CustomerStatus = 1
	StatusWaitingOnCustomer CustomerStatus = 2
	StatusWaitingOnParts    CustomerStatus = 3
	StatusInProcess         CustomerStatus = 4
	StatusFinished          CustomerStatus = 5
	StatusAppointment       CustomerStatus = 6
	StatusOnHold            CustomerStatus = 7
	StatusCompleted         CustomerStatus = 8
	StatusFinalized         CustomerStatus = 9
	StatusClosed            CustomerStatus = 10
)

// Aging thresholds for StateColor.
const (
	greenTimeLimit  = 3 * time.Hour
	yellowTimeLimit = 8 * time.Hour
)

// Job is the repair order, the aggregate root of the workflow.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Job items and their estimate items are nested in the job record; the
//     job is mutated by a single writer per unit of work.
//
// Monetary representation:
//   - Tax rates are snapshotted from the shop at creation so later shop
//     configuration changes do not reprice an open order.

type Job struct {
	ID              string         `json:"id"`
	ShopID          string         `json:"shop_id"`
	JobNumber       int64          `json:"job_number"`
	LifecycleState  LifecycleState `json:"lifecycle_state"`
	CustomerStatus  CustomerStatus `json:"customer_status"`
	ApprovalStatus  ApprovalStatus `json:"approval_status"`
	IsEstimate      bool           `json:"is_estimate"`
	StateClosed     bool           `json:"state_closed"`
	ProfitCenter    string         `json:"profit_center,omitempty"`
	TechnicianRate  *float64       `json:"technician_rate,omitempty"`
	TaxRates        TaxRates       `json:"tax_rates"`
	Items           []JobItem      `json:"items"`
	FinalizedAt     *time.Time     `json:"finalized_at,omitempty"`
	ClosedAt        *time.Time     `json:"closed_at,omitempty"`
	WorkStartedAt   *time.Time     `json:"work_started_at,omitempty"`
	WorkCompletedAt *time.Time     `json:"work_completed_at,omitempty"`
	StateChangedAt  time.Time      `json:"state_changed_at"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// TaxRates is the per-category tax snapshot taken when the job is created.
type TaxRates struct {
	Part     float64 `json:"part"`
	Labor    float64 `json:"labor"`
	Supplies float64 `json:"supplies"`
	Fee      float64 `json:"fee"`
}

// StateColor buckets how long the job has been sitting in its current state.
func (j Job) StateColor(now time.Time) string {
	age := now.Sub(j.StateChangedAt)
	switch {
	case age < greenTimeLimit:
		return "green"
	case age < yellowTimeLimit:
		return "yellow"
	default:
		return "red"
	}
}

// NonDeclinedItems returns the job items still in play.
func (j Job) NonDeclinedItems() []JobItem {
	var out []JobItem
	for _, it := range j.Items {
		if it.State != ItemStateDeclined {
			out = append(out, it)
		}
	}
	return out
}

// FinalizedItems returns the items already moved to the finalize state.
func (j Job) FinalizedItems() []JobItem {
	var out []JobItem
	for _, it := range j.Items {
		if it.State == ItemStateFinalize {
			out = append(out, it)
		}
	}
	return out
}

// Item returns a pointer into the job's item slice, or nil.
func (j *Job) Item(id string) *JobItem {
	for i := range j.Items {
		if j.Items[i].ID == id {
			return &j.Items[i]
		}
	}
	return nil
}

// HasUnorderedParts reports whether any non-declined part line has not been
// placed on a purchase order yet.
func (j Job) HasUnorderedParts() bool {
	for _, it := range j.NonDeclinedItems() {
		for _, ei := range it.EstimateItems {
			if ei.ItemType == ItemTypePart && ei.OrderedAt == nil {
				return true
			}
		}
	}
	return false
}
