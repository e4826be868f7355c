package create_hold

import (
	"time"

	"github.com/calypso-charters/CharterBookingService/internal/domain"
)

// Request запрос на создание временного удержания слота
type Request struct {
	ProductSlug string
	SlotID      string
	Date        time.Time

	Guests     int
	Nobu       bool
	Catering   bool
	VeganCount int

	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string
	Notes         *string
}

// BreakdownLine строка детализации стоимости в ответе
type BreakdownLine struct {
	Label       string
	AmountCents int64
}

// Response ответ с созданным удержанием
type Response struct {
	ReservationID string
	Status        string

	StartAt       time.Time
	EndAt         time.Time
	HoldExpiresAt time.Time

	TotalAmountCents int64
	Currency         string
	Breakdown        []BreakdownLine
}

// holdEventPayload полезная нагрузка аудит-события hold_created
type holdEventPayload struct {
	ProductSlug      string        `json:"product_slug"`
	SlotID           domain.SlotID `json:"slot_id"`
	Guests           int           `json:"guests"`
	TotalAmountCents int64         `json:"total_amount_cents"`
	HoldExpiresAt    time.Time     `json:"hold_expires_at"`
}
