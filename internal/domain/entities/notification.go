package entities

// NotificationKind names the customer/staff notifications the workflow
// requests. Dispatch is fire-and-forget; delivery is someone else's problem.

type NotificationKind string

const (
	NotifyGreetings          NotificationKind = "greetings"
	NotifyDiagnosticComplete NotificationKind = "diagnostic_complete"
	NotifyPartsOrdered       NotificationKind = "parts_ordered"
	NotifyPartsDelayed       NotificationKind = "parts_delayed"
	NotifyPartsDelivered     NotificationKind = "parts_delivered"
	NotifyRepairInProgress   NotificationKind = "repair_in_progress"
	NotifyRepairCompleted    NotificationKind = "repair_completed"
	NotifyFinalizedInvoice   NotificationKind = "finalized_invoice"
)
