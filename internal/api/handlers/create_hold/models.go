package create_hold

import (
	"fmt"
	"time"

	"github.com/calypso-charters/CharterBookingService/internal/domain"
	uc "github.com/calypso-charters/CharterBookingService/internal/usecase/create_hold"
)

// CreateHoldRequest HTTP request model
type CreateHoldRequest struct {
	ProductSlug string `json:"productSlug"`
	SlotID      string `json:"slotId"`
	Date        string `json:"date"` // "2026-03-14"

	Guests     int  `json:"guests"`
	Nobu       bool `json:"nobu,omitempty"`
	Catering   bool `json:"catering,omitempty"`
	VeganCount int  `json:"veganCount,omitempty"`

	CustomerName  *string `json:"customerName,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос usecase
func (r *CreateHoldRequest) ToUseCaseRequest() (*uc.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}

	return &uc.Request{
		ProductSlug:   r.ProductSlug,
		SlotID:        r.SlotID,
		Date:          date,
		Guests:        r.Guests,
		Nobu:          r.Nobu,
		Catering:      r.Catering,
		VeganCount:    r.VeganCount,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
	}, nil
}

// BreakdownLineResponse строка детализации стоимости
type BreakdownLineResponse struct {
	Label       string `json:"label"`
	AmountCents int64  `json:"amountCents"`
}

// CreateHoldResponse HTTP response model
type CreateHoldResponse struct {
	ReservationID string `json:"reservationId"`
	Status        string `json:"status"`

	StartAt       time.Time `json:"startAt"`
	EndAt         time.Time `json:"endAt"`
	HoldExpiresAt time.Time `json:"holdExpiresAt"`

	TotalAmountCents int64                   `json:"totalAmountCents"`
	Currency         string                  `json:"currency"`
	Breakdown        []BreakdownLineResponse `json:"breakdown"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *uc.Response) *CreateHoldResponse {
	breakdown := make([]BreakdownLineResponse, 0, len(resp.Breakdown))
	for _, line := range resp.Breakdown {
		breakdown = append(breakdown, BreakdownLineResponse{Label: line.Label, AmountCents: line.AmountCents})
	}

	return &CreateHoldResponse{
		ReservationID:    resp.ReservationID,
		Status:           resp.Status,
		StartAt:          resp.StartAt,
		EndAt:            resp.EndAt,
		HoldExpiresAt:    resp.HoldExpiresAt,
		TotalAmountCents: resp.TotalAmountCents,
		Currency:         resp.Currency,
		Breakdown:        breakdown,
	}
}
