package request

import (
	"strings"

	"repairflow/internal/usecase"
)

// CreateJobRequest opens a repair order, or a draft estimate when
// is_estimate is set.
type CreateJobRequest struct {
	ShopID         string   `json:"shop_id" binding:"required"`
	IsEstimate     bool     `json:"is_estimate"`
	ProfitCenter   string   `json:"profit_center"`
	TechnicianRate *float64 `json:"technician_rate"`
}

func (r CreateJobRequest) ToCommand() usecase.CreateJobCommand {
	return usecase.CreateJobCommand{
		ShopID:         strings.TrimSpace(r.ShopID),
		IsEstimate:     r.IsEstimate,
		ProfitCenter:   strings.TrimSpace(r.ProfitCenter),
		TechnicianRate: r.TechnicianRate,
	}
}
