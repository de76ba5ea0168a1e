package response

import "repairflow/internal/domain/status"

// StatusResponse is the projected status snapshot of a job.
type StatusResponse struct {
	LifecycleState string `json:"lifecycle_state"`
	InternalStatus int    `json:"internal_status"`
	CustomerStatus int    `json:"customer_status"`
}

func FromSnapshot(s status.Snapshot) StatusResponse {
	return StatusResponse{
		LifecycleState: string(s.LifecycleState),
		InternalStatus: int(s.InternalStatus),
		CustomerStatus: int(s.CustomerStatus),
	}
}

// StockCheckResponse lists the part numbers current stock cannot cover.
type StockCheckResponse struct {
	MissingParts []string `json:"missing_parts"`
}
