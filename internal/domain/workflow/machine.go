package workflow

import (
	"fmt"

	"repairflow/internal/domain/entities"
)

// Event is a requested workflow transition.

type Event string

const (
	EventStartDiagnostic Event = "start_diagnostic"
	EventEndDiagnostic   Event = "end_diagnostic"
	EventOrderParts      Event = "order_parts"
	EventDelayParts      Event = "delay_parts"
	EventReceiveParts    Event = "receive_parts"
	EventStartRepair     Event = "start_repair"
	EventCompleteRepair  Event = "complete_repair"
	EventFinalize        Event = "finalize"
	EventDenyRepair      Event = "deny_repair"
)

// Mode selects how the lifecycle state is driven for a shop.

type Mode string

const (
	// ModeExplicit accepts transition events against the table below.
	ModeExplicit Mode = "explicit"
	// ModeSimplified infers the lifecycle state from job-item states on
	// every save instead.
	ModeSimplified Mode = "simplified"
)

// ModeFor resolves the workflow mode from shop configuration.
func ModeFor(shop entities.Shop) Mode {
	if shop.OptionEnabled(entities.OptionSimplifiedStatus) {
		return ModeSimplified
	}
	return ModeExplicit
}

// EffectKind identifies a side effect a transition requires. The machine only
// describes effects; the usecase driver executes them, which keeps the table
// testable without any I/O.

type EffectKind string

const (
	EffectSetFinalizedAt       EffectKind = "set_finalized_at"
	EffectFinalizeJobItems     EffectKind = "finalize_job_items"
	EffectCommitInventory      EffectKind = "commit_inventory"
	EffectSetDeferredApproval  EffectKind = "set_deferred_approval"
	EffectNotify               EffectKind = "notify"
)

// Effect is one side-effect descriptor attached to a transition result.
type Effect struct {
	Kind         EffectKind
	Notification entities.NotificationKind
}

func notify(kind entities.NotificationKind) Effect {
	return Effect{Kind: EffectNotify, Notification: kind}
}

// Result is the outcome of a legal transition.
type Result struct {
	From    entities.LifecycleState
	To      entities.LifecycleState
	Effects []Effect
}

// InvalidTransitionError reports an event that is not legal from the current
// state. The job is left untouched.
type InvalidTransitionError struct {
	State entities.LifecycleState
	Event Event
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: event %q is not allowed from state %q", e.Event, e.State)
}

type transition struct {
	sources []entities.LifecycleState
	target  entities.LifecycleState
	effects []Effect
}

// The transition table. Source-state lists grow as the workflow advances so
// that skipped stages stay reachable; only "finalized" is a dead end.
var transitions = map[Event]transition{
	EventStartDiagnostic: {
		sources: []entities.LifecycleState{
			entities.StateAwaitingDiagnostic,
			entities.StateRepairDenied,
			entities.StateRepairCompleted,
		},
		target: entities.StatePerformingDiagnostic,
	},
	EventEndDiagnostic: {
		sources: []entities.LifecycleState{
			entities.StatePerformingDiagnostic,
			entities.StateAwaitingDiagnostic,
			entities.StateRepairCompleted,
			entities.StateRepairDenied,
		},
		target:  entities.StateDiagnosticComplete,
		effects: []Effect{notify(entities.NotifyDiagnosticComplete)},
	},
	EventOrderParts: {
		sources: []entities.LifecycleState{
			entities.StatePerformingDiagnostic,
			entities.StateAwaitingDiagnostic,
			entities.StateDiagnosticComplete,
			entities.StateRepairCompleted,
			entities.StateRepairDenied,
		},
		target:  entities.StatePartsOrdered,
		effects: []Effect{notify(entities.NotifyPartsOrdered)},
	},
	EventDelayParts: {
		sources: []entities.LifecycleState{
			entities.StatePerformingDiagnostic,
			entities.StateAwaitingDiagnostic,
			entities.StateDiagnosticComplete,
			entities.StatePartsOrdered,
			entities.StateRepairCompleted,
			entities.StateRepairDenied,
		},
		target:  entities.StatePartsDelayed,
		effects: []Effect{notify(entities.NotifyPartsDelayed)},
	},
	EventReceiveParts: {
		sources: []entities.LifecycleState{
			entities.StatePerformingDiagnostic,
			entities.StateAwaitingDiagnostic,
			entities.StateDiagnosticComplete,
			entities.StatePartsOrdered,
			entities.StatePartsDelayed,
			entities.StateRepairCompleted,
			entities.StateRepairDenied,
		},
		target:  entities.StatePartsDelivered,
		effects: []Effect{notify(entities.NotifyPartsDelivered)},
	},
	EventStartRepair: {
		sources: []entities.LifecycleState{
			entities.StatePerformingDiagnostic,
			entities.StateAwaitingDiagnostic,
			entities.StateDiagnosticComplete,
			entities.StatePartsOrdered,
			entities.StatePartsDelayed,
			entities.StatePartsDelivered,
			entities.StateRepairCompleted,
			entities.StateRepairDenied,
		},
		target:  entities.StateRepairInProgress,
		effects: []Effect{notify(entities.NotifyRepairInProgress)},
	},
	EventCompleteRepair: {
		sources: []entities.LifecycleState{
			entities.StatePerformingDiagnostic,
			entities.StateAwaitingDiagnostic,
			entities.StateDiagnosticComplete,
			entities.StatePartsOrdered,
			entities.StatePartsDelayed,
			entities.StatePartsDelivered,
			entities.StateRepairInProgress,
			entities.StateRepairDenied,
		},
		target: entities.StateRepairCompleted,
	},
	EventFinalize: {
		sources: []entities.LifecycleState{
			entities.StatePerformingDiagnostic,
			entities.StateAwaitingDiagnostic,
			entities.StateDiagnosticComplete,
			entities.StatePartsOrdered,
			entities.StatePartsDelayed,
			entities.StatePartsDelivered,
			entities.StateRepairInProgress,
			entities.StateRepairCompleted,
			entities.StateRepairDenied,
		},
		target: entities.StateFinalized,
		effects: []Effect{
			{Kind: EffectSetFinalizedAt},
			{Kind: EffectFinalizeJobItems},
			{Kind: EffectCommitInventory},
			notify(entities.NotifyRepairCompleted),
			notify(entities.NotifyFinalizedInvoice),
		},
	},
	EventDenyRepair: {
		sources: []entities.LifecycleState{
			entities.StatePerformingDiagnostic,
			entities.StateAwaitingDiagnostic,
			entities.StateDiagnosticComplete,
			entities.StatePartsOrdered,
			entities.StatePartsDelayed,
			entities.StatePartsDelivered,
			entities.StateRepairInProgress,
		},
		target:  entities.StateRepairDenied,
		effects: []Effect{{Kind: EffectSetDeferredApproval}},
	},
}

// Events lists every event the machine understands.
func Events() []Event {
	return []Event{
		EventStartDiagnostic,
		EventEndDiagnostic,
		EventOrderParts,
		EventDelayParts,
		EventReceiveParts,
		EventStartRepair,
		EventCompleteRepair,
		EventFinalize,
		EventDenyRepair,
	}
}

// States lists every lifecycle state.
func States() []entities.LifecycleState {
	return []entities.LifecycleState{
		entities.StateAwaitingDiagnostic,
		entities.StatePerformingDiagnostic,
		entities.StateDiagnosticComplete,
		entities.StatePartsOrdered,
		entities.StatePartsDelayed,
		entities.StatePartsDelivered,
		entities.StateRepairInProgress,
		entities.StateRepairCompleted,
		entities.StateRepairDenied,
		entities.StateFinalized,
	}
}

// Transition validates an event against the table. It is pure: on success it
// returns the target state plus the side effects the driver must execute, on
// failure an *InvalidTransitionError and no state change.
func Transition(current entities.LifecycleState, event Event) (Result, error) {
	t, ok := transitions[event]
	if !ok {
		return Result{}, &InvalidTransitionError{State: current, Event: event}
	}
	for _, src := range t.sources {
		if src == current {
			return Result{From: current, To: t.target, Effects: t.effects}, nil
		}
	}
	return Result{}, &InvalidTransitionError{State: current, Event: event}
}

// ParseEvent validates an event name coming off the wire.
func ParseEvent(s string) (Event, bool) {
	e := Event(s)
	_, ok := transitions[e]
	return e, ok
}
