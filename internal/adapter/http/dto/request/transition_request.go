package request

import "strings"

// TransitionRequest carries one workflow event for a job.
type TransitionRequest struct {
	Event string `json:"event" binding:"required"`
}

func (r TransitionRequest) ResolveEvent() string {
	return strings.TrimSpace(r.Event)
}
