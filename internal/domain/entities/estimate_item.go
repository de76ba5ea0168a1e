package entities

import "time"

// ItemType classifies an estimate line.

type ItemType string

const (
	ItemTypePart  ItemType = "part"
	ItemTypeLabor ItemType = "labor"
	ItemTypeFees  ItemType = "fees"
)

// SavedThroughInventory tags a line whose quantity was drawn from the shop's
// own inventory rather than a vendor catalog. Only these lines touch the
// inventory ledger.
const SavedThroughInventory = "Inventory"

// EstimateItem is one priced line (part, labor or fee) under a job item.
//
// Inventory reconciliation invariant:
//   - TotalQuantity is the quantity last reflected against the inventory
//     ledger. The pending adjustment is always Quantity - TotalQuantity, so a
//     partially applied update can be resumed without double-counting.

type EstimateItem struct {
	ID            string     `json:"id"`
	JobItemID     string     `json:"job_item_id"`
	ItemType      ItemType   `json:"item_type"`
	Description   string     `json:"description"`
	Quantity      float64    `json:"quantity"`
	Cost          float64    `json:"cost"`
	PricePerUnit  float64    `json:"price_per_unit"`
	PartNumber    string     `json:"part_number,omitempty"`
	SavedThrough  string     `json:"saved_through,omitempty"`
	TotalQuantity float64    `json:"total_quantity"`
	Additional    bool       `json:"additional,omitempty"`
	PackageAdd    float64    `json:"package_add,omitempty"`
	FeeAmount     float64    `json:"fee_amount,omitempty"`
	FeePercentage float64    `json:"fee_percentage,omitempty"`
	BaseItemID    string     `json:"base_item_id,omitempty"`
	NeedsReview   bool       `json:"needs_review,omitempty"`
	OrderedAt     *time.Time `json:"ordered_at,omitempty"`
	ReceivedAt    *time.Time `json:"received_at,omitempty"`
}

// FromInventory reports whether this line draws stock from the ledger.
func (e EstimateItem) FromInventory() bool {
	return e.SavedThrough == SavedThroughInventory && e.PartNumber != ""
}

// PendingQuantity is the delta not yet reconciled against the ledger.
func (e EstimateItem) PendingQuantity() float64 {
	return e.Quantity - e.TotalQuantity
}

// LineTotal is the pre-tax extended price of the line.
func (e EstimateItem) LineTotal() float64 {
	if e.ItemType == ItemTypeFees {
		return e.FeeAmount
	}
	return e.Quantity * e.PricePerUnit
}
