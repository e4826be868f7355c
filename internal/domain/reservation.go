package domain

import "time"

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusHold      ReservationStatus = "HOLD"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCancelled ReservationStatus = "CANCELLED"
)

// RefundStatusPending помечает мок-возврат, ожидающий обработки
const RefundStatusPending = "pending"

// Reservation represents a booking of the vessel for a concrete time range.
// Rows are never physically deleted; CANCELLED is terminal.
type Reservation struct {
	ID          string // UUID
	ProductSlug string
	SlotID      SlotID
	StartAt     time.Time
	EndAt       time.Time
	Status      ReservationStatus

	// Set while Status == HOLD; cleared on confirmation
	HoldExpiresAt *time.Time

	TotalAmountCents int64
	Currency         string

	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time
	RefundStatus       *string
	RefundAmountCents  *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range returns the reserved interval as a TimeRange.
func (r *Reservation) Range() TimeRange {
	return TimeRange{Start: r.StartAt, End: r.EndAt}
}

// IsExpiredHold reports whether the reservation is a HOLD past its expiry.
// Expiry is a derived read-time fact: expired holds are never flipped in
// storage, they simply stop blocking and stop being confirmable.
func (r *Reservation) IsExpiredHold(now time.Time) bool {
	return r.Status == StatusHold && r.HoldExpiresAt != nil && !now.Before(*r.HoldExpiresAt)
}

// IsLive reports whether the reservation blocks its time range:
// CONFIRMED, or HOLD with expiry still in the future.
func (r *Reservation) IsLive(now time.Time) bool {
	switch r.Status {
	case StatusConfirmed:
		return true
	case StatusHold:
		return r.HoldExpiresAt != nil && now.Before(*r.HoldExpiresAt)
	default:
		return false
	}
}

// CanBeConfirmed reports whether a confirm transition is allowed.
func (r *Reservation) CanBeConfirmed(now time.Time) bool {
	return r.Status == StatusHold && !r.IsExpiredHold(now)
}

// CanBeCancelled reports whether an admin cancel transition is allowed.
// Only CONFIRMED reservations are cancelled; a HOLD is simply left to expire.
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusConfirmed
}

// ValidStatuses перечисляет допустимые статусы (для валидации на границах)
var ValidStatuses = []ReservationStatus{StatusHold, StatusConfirmed, StatusCancelled}

// ReservationsFilter фильтр выборки бронирований
type ReservationsFilter struct {
	// Окно по времени начала/пересечения, полуоткрытое [From, To)
	From time.Time
	To   time.Time

	// OnlyLive - только блокирующие бронирования:
	// CONFIRMED или HOLD с hold_expires_at > Now
	OnlyLive bool
	Now      time.Time

	// IncludeCancelled - включать отменённые (для админ-листинга)
	IncludeCancelled bool
}
