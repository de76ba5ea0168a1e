package entities

// JobItemState is the progress of a single operation within a repair order.
//
// "initial" items are awaiting a customer decision; "in_progress" marks a
// technician actively working the item, which is distinct from "start_repair"
// (work begun at some point, not necessarily on the bench right now).

type JobItemState string

const (
	ItemStateDeclined       JobItemState = "declined"
	ItemStateInitial        JobItemState = "initial"
	ItemStateInProgress     JobItemState = "in_progress"
	ItemStateStartRepair    JobItemState = "start_repair"
	ItemStateCompleteRepair JobItemState = "complete_repair"
	ItemStateFinalize       JobItemState = "finalize"
)

// JobItem is one operation/repair line within a Job. It owns its estimate
// items and is destroyed with the job.
type JobItem struct {
	ID           string         `json:"id"`
	JobID        string         `json:"job_id"`
	Description  string         `json:"description"`
	State        JobItemState   `json:"state"`
	ApprovalType string         `json:"approval_type,omitempty"`
	PackagePrice *float64       `json:"package_price,omitempty"`
	LaborPrice   *float64       `json:"labor_price,omitempty"`
	Position     int            `json:"position"`
	EstimateItems []EstimateItem `json:"estimate_items"`
}

// Approved reports whether the customer has signed off on this item.
func (i JobItem) Approved() bool {
	return i.ApprovalType != ""
}

// OrderedParts returns part lines placed on a purchase order but not yet
// received.
func (i JobItem) OrderedParts() []EstimateItem {
	var out []EstimateItem
	for _, ei := range i.EstimateItems {
		if ei.ItemType == ItemTypePart && ei.OrderedAt != nil && ei.ReceivedAt == nil {
			out = append(out, ei)
		}
	}
	return out
}

// EstimateItem returns a pointer into the item's estimate line slice, or nil.
func (i *JobItem) EstimateItem(id string) *EstimateItem {
	for n := range i.EstimateItems {
		if i.EstimateItems[n].ID == id {
			return &i.EstimateItems[n]
		}
	}
	return nil
}
