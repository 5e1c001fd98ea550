package domain

import "time"

type EventType string

const (
	EventAccountRegistered  EventType = "ACCOUNT_REGISTERED"
	EventDeposited          EventType = "DEPOSITED"
	EventPaymentCleared     EventType = "PAYMENT_CLEARED"
	EventBalanceWithdrawn   EventType = "BALANCE_WITHDRAWN"
	EventItemAdded          EventType = "ITEM_ADDED"
	EventItemMetadataEdited EventType = "ITEM_METADATA_EDITED"
	EventItemStatusEdited   EventType = "ITEM_STATUS_EDITED"
	EventCheckedOut         EventType = "CHECKED_OUT"
	EventCheckedIn          EventType = "CHECKED_IN"
	EventOwnerChanged       EventType = "OWNER_CHANGED"
	EventTreasuryWithdrawn  EventType = "TREASURY_WITHDRAWN"
)

// Event is one notification record emitted by a state-changing operation.
// Delivery is fire-and-forget; emitting never fails the operation.
type Event struct {
	ID         string            `json:"id"`
	Type       EventType         `json:"type"`
	Actor      Identity          `json:"actor"`
	Attributes map[string]string `json:"attributes,omitempty"`
	EmittedAt  time.Time         `json:"emitted_at"`
}
