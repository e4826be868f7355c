package domain

import "time"

// Booking event types written to the audit trail
const (
	EventHoldCreated = "hold_created"
	EventConfirmed   = "confirmed"
	EventCancelled   = "cancelled"
)

// BookingEvent is an append-only audit record of a lifecycle transition.
type BookingEvent struct {
	ID            int64
	ReservationID string
	EventType     string
	EventData     []byte // JSON payload
	CreatedAt     time.Time
}
