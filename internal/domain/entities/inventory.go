package entities

// InventoryRecord tracks one part number in one shop.
//
// Storage model (DynamoDB):
//   - PK: shop_id, SK: part_number
//
// Quantity semantics:
//   - Quantity is on-hand stock, decremented only when a finalized job
//     commits its parts.
//   - AvailableQuantity is on-hand minus open reservations; estimate lines
//     reserve from it as they are committed and release back as they shrink
//     or disappear. Overcommitting below zero is allowed and surfaced as an
//     advisory, never an error.
//
// Inventory tracking is opportunistic: parts with no record are simply not
// tracked.

type InventoryRecord struct {
	ShopID            string  `json:"shop_id"`
	PartNumber        string  `json:"part_number"`
	Description       string  `json:"description,omitempty"`
	Quantity          float64 `json:"quantity"`
	AvailableQuantity float64 `json:"available_quantity"`
	Cost              float64 `json:"cost"`
	PartPrice         float64 `json:"part_price"`
	VendorID          string  `json:"vendor_id,omitempty"`
}

// Exists reports whether the record was actually found (repositories return
// the zero value for misses).
func (r InventoryRecord) Exists() bool {
	return r.PartNumber != ""
}
