package request

import (
	"strings"

	"repairflow/internal/domain/entities"
	"repairflow/internal/domain/pricing"
	"repairflow/internal/usecase"
)

// BaseLineRequest identifies the line a percentage fee applies to.
type BaseLineRequest struct {
	Description string  `json:"description"`
	ItemType    string  `json:"item_type"`
	Quantity    float64 `json:"quantity"`
}

// EstimateLineRequest is one raw estimate line to price and attach.
type EstimateLineRequest struct {
	ItemType      string           `json:"item_type" binding:"required"`
	Description   string           `json:"description"`
	Quantity      float64          `json:"quantity"`
	LaborTime     float64          `json:"labor_time"`
	Cost          *float64         `json:"cost"`
	PricePerUnit  *float64         `json:"price_per_unit"`
	PartNumber    string           `json:"part_number"`
	SavedThrough  string           `json:"saved_through"`
	Additional    bool             `json:"additional"`
	PackageAdd    float64          `json:"package_add"`
	FeeAmount     float64          `json:"fee_amount"`
	FeePercentage float64          `json:"fee_percentage"`
	BaseLine      *BaseLineRequest `json:"base_line"`
}

// AddJobItemRequest is one job item to add with its lines.
type AddJobItemRequest struct {
	Description  string                `json:"description" binding:"required"`
	ApprovalType string                `json:"approval_type"`
	PackagePrice *float64              `json:"package_price"`
	LaborPrice   *float64              `json:"labor_price"`
	Lines        []EstimateLineRequest `json:"lines"`
}

// LineUpdateRequest edits fields of an existing estimate line. Absent fields
// are left alone.
type LineUpdateRequest struct {
	EstimateItemID string   `json:"estimate_item_id" binding:"required"`
	Quantity       *float64 `json:"quantity"`
	Cost           *float64 `json:"cost"`
	PricePerUnit   *float64 `json:"price_per_unit"`
	Ordered        *bool    `json:"ordered"`
	Received       *bool    `json:"received"`
}

// ItemMutationRequest is one batch of item changes for a job.
type ItemMutationRequest struct {
	Add                   []AddJobItemRequest `json:"add"`
	UpdateLines           []LineUpdateRequest `json:"update_lines"`
	RemoveEstimateItemIDs []string            `json:"remove_estimate_item_ids"`
	RemoveJobItemIDs      []string            `json:"remove_job_item_ids"`
	ItemStates            map[string]string   `json:"item_states"`
	ItemApprovals         map[string]string   `json:"item_approvals"`
	ApprovalStatus        *string             `json:"approval_status"`
}

func (r ItemMutationRequest) ToMutation() usecase.ItemMutation {
	m := usecase.ItemMutation{
		RemoveEstimateItemIDs: r.RemoveEstimateItemIDs,
		RemoveJobItemIDs:      r.RemoveJobItemIDs,
		ItemApprovals:         r.ItemApprovals,
	}
	for _, add := range r.Add {
		in := usecase.ItemInput{
			Description:  strings.TrimSpace(add.Description),
			ApprovalType: add.ApprovalType,
			PackagePrice: add.PackagePrice,
			LaborPrice:   add.LaborPrice,
		}
		for _, line := range add.Lines {
			in.Lines = append(in.Lines, line.toSpec())
		}
		m.Add = append(m.Add, in)
	}
	for _, upd := range r.UpdateLines {
		m.UpdateLines = append(m.UpdateLines, usecase.LineUpdate{
			EstimateItemID: upd.EstimateItemID,
			Quantity:       upd.Quantity,
			Cost:           upd.Cost,
			PricePerUnit:   upd.PricePerUnit,
			Ordered:        upd.Ordered,
			Received:       upd.Received,
		})
	}
	if len(r.ItemStates) > 0 {
		m.ItemStates = make(map[string]entities.JobItemState, len(r.ItemStates))
		for id, state := range r.ItemStates {
			m.ItemStates[id] = entities.JobItemState(state)
		}
	}
	if r.ApprovalStatus != nil {
		st := entities.ApprovalStatus(*r.ApprovalStatus)
		m.ApprovalStatus = &st
	}
	return m
}

func (l EstimateLineRequest) toSpec() pricing.Spec {
	s := pricing.Spec{
		ItemType:      entities.ItemType(l.ItemType),
		Description:   strings.TrimSpace(l.Description),
		Quantity:      l.Quantity,
		LaborTime:     l.LaborTime,
		Cost:          l.Cost,
		PricePerUnit:  l.PricePerUnit,
		PartNumber:    strings.TrimSpace(l.PartNumber),
		SavedThrough:  l.SavedThrough,
		Additional:    l.Additional,
		PackageAdd:    l.PackageAdd,
		FeeAmount:     l.FeeAmount,
		FeePercentage: l.FeePercentage,
	}
	if l.BaseLine != nil {
		s.BaseRef = &pricing.LineRef{
			Description: l.BaseLine.Description,
			ItemType:    entities.ItemType(l.BaseLine.ItemType),
			Quantity:    l.BaseLine.Quantity,
		}
	}
	return s
}
