package interfaces

import (
	"context"
	"repairflow/internal/domain/entities"
)

// INotificationDispatcher abstracts the outbound notification queue
// (SMS/email/invoice sends handled elsewhere).
//
// Dispatch is fire-and-forget: the workflow requests a send and moves on.
// Implementations must not block on delivery, and callers treat a returned
// error as log-worthy, never as a reason to fail a transition.

type INotificationDispatcher interface {
	Notify(ctx context.Context, kind entities.NotificationKind, jobID string) error
}
