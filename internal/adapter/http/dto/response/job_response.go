package response

import (
	"time"

	"repairflow/internal/domain/entities"
	"repairflow/internal/usecase"
)

type EstimateLineResponse struct {
	ID            string     `json:"id"`
	JobItemID     string     `json:"job_item_id"`
	ItemType      string     `json:"item_type"`
	Description   string     `json:"description,omitempty"`
	Quantity      float64    `json:"quantity"`
	Cost          float64    `json:"cost"`
	PricePerUnit  float64    `json:"price_per_unit"`
	LineTotal     float64    `json:"line_total"`
	PartNumber    string     `json:"part_number,omitempty"`
	SavedThrough  string     `json:"saved_through,omitempty"`
	TotalQuantity float64    `json:"total_quantity"`
	FeeAmount     float64    `json:"fee_amount,omitempty"`
	BaseItemID    string     `json:"base_item_id,omitempty"`
	NeedsReview   bool       `json:"needs_review,omitempty"`
	OrderedAt     *time.Time `json:"ordered_at,omitempty"`
	ReceivedAt    *time.Time `json:"received_at,omitempty"`
}

type JobItemResponse struct {
	ID            string                 `json:"id"`
	Description   string                 `json:"description,omitempty"`
	State         string                 `json:"state"`
	ApprovalType  string                 `json:"approval_type,omitempty"`
	PackagePrice  *float64               `json:"package_price,omitempty"`
	LaborPrice    *float64               `json:"labor_price,omitempty"`
	Position      int                    `json:"position"`
	EstimateItems []EstimateLineResponse `json:"estimate_items"`
}

type TaxRatesResponse struct {
	Part     float64 `json:"part"`
	Labor    float64 `json:"labor"`
	Supplies float64 `json:"supplies"`
	Fee      float64 `json:"fee"`
}

type JobResponse struct {
	ID              string            `json:"id"`
	ShopID          string            `json:"shop_id"`
	JobNumber       int64             `json:"job_number"`
	LifecycleState  string            `json:"lifecycle_state"`
	CustomerStatus  int               `json:"customer_status"`
	ApprovalStatus  string            `json:"approval_status,omitempty"`
	IsEstimate      bool              `json:"is_estimate"`
	StateClosed     bool              `json:"state_closed"`
	StateColor      string            `json:"state_color"`
	ProfitCenter    string            `json:"profit_center,omitempty"`
	TaxRates        TaxRatesResponse  `json:"tax_rates"`
	Items           []JobItemResponse `json:"items"`
	FinalizedAt     *time.Time        `json:"finalized_at,omitempty"`
	ClosedAt        *time.Time        `json:"closed_at,omitempty"`
	WorkStartedAt   *time.Time        `json:"work_started_at,omitempty"`
	WorkCompletedAt *time.Time        `json:"work_completed_at,omitempty"`
	StateChangedAt  time.Time         `json:"state_changed_at"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	items := make([]JobItemResponse, 0, len(j.Items))
	for _, it := range j.Items {
		items = append(items, fromJobItem(it))
	}
	return JobResponse{
		ID:              j.ID,
		ShopID:          j.ShopID,
		JobNumber:       j.JobNumber,
		LifecycleState:  string(j.LifecycleState),
		CustomerStatus:  int(j.CustomerStatus),
		ApprovalStatus:  string(j.ApprovalStatus),
		IsEstimate:      j.IsEstimate,
		StateClosed:     j.StateClosed,
		StateColor:      j.StateColor(time.Now().UTC()),
		ProfitCenter:    j.ProfitCenter,
		TaxRates:        TaxRatesResponse(j.TaxRates),
		Items:           items,
		FinalizedAt:     j.FinalizedAt,
		ClosedAt:        j.ClosedAt,
		WorkStartedAt:   j.WorkStartedAt,
		WorkCompletedAt: j.WorkCompletedAt,
		StateChangedAt:  j.StateChangedAt,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
}

func fromJobItem(it entities.JobItem) JobItemResponse {
	lines := make([]EstimateLineResponse, 0, len(it.EstimateItems))
	for _, ei := range it.EstimateItems {
		lines = append(lines, EstimateLineResponse{
			ID:            ei.ID,
			JobItemID:     ei.JobItemID,
			ItemType:      string(ei.ItemType),
			Description:   ei.Description,
			Quantity:      ei.Quantity,
			Cost:          ei.Cost,
			PricePerUnit:  ei.PricePerUnit,
			LineTotal:     ei.LineTotal(),
			PartNumber:    ei.PartNumber,
			SavedThrough:  ei.SavedThrough,
			TotalQuantity: ei.TotalQuantity,
			FeeAmount:     ei.FeeAmount,
			BaseItemID:    ei.BaseItemID,
			NeedsReview:   ei.NeedsReview,
			OrderedAt:     ei.OrderedAt,
			ReceivedAt:    ei.ReceivedAt,
		})
	}
	return JobItemResponse{
		ID:            it.ID,
		Description:   it.Description,
		State:         string(it.State),
		ApprovalType:  it.ApprovalType,
		PackagePrice:  it.PackagePrice,
		LaborPrice:    it.LaborPrice,
		Position:      it.Position,
		EstimateItems: lines,
	}
}

// ItemMutationResponse reports the job after a batch of item changes.
type ItemMutationResponse struct {
	Job          JobResponse    `json:"job"`
	AddedItemIDs []string       `json:"added_item_ids,omitempty"`
	NeedsReview  bool           `json:"needs_review"`
	Status       StatusResponse `json:"status"`
}

func FromItemMutation(res usecase.ItemMutationResult) ItemMutationResponse {
	ids := make([]string, 0, len(res.AddedItems))
	for _, it := range res.AddedItems {
		ids = append(ids, it.ID)
	}
	return ItemMutationResponse{
		Job:          FromJob(res.Job),
		AddedItemIDs: ids,
		NeedsReview:  res.NeedsReview,
		Status:       FromSnapshot(res.Snapshot),
	}
}
