package models

import (
	"time"

	"github.com/calypso-charters/CharterBookingService/internal/domain"
)

// Request модели

// ConfirmReservationRequest запрос на подтверждение удержания
type ConfirmReservationRequest struct {
	ReservationID string `json:"reservationId"`
}

// CancelReservationRequest запрос администратора на отмену бронирования
type CancelReservationRequest struct {
	ReservationID      string  `json:"reservationId"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// GetByDayRequest запрос бронирований на календарный день
type GetByDayRequest struct {
	Date time.Time `json:"date"`
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID          string `json:"id"`
	ProductSlug string `json:"productSlug"`
	SlotID      string `json:"slotId"`

	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`

	Status        string     `json:"status"`
	HoldExpiresAt *time.Time `json:"holdExpiresAt,omitempty"`

	// Производный флаг: HOLD, чьё время вышло. Такое удержание больше не
	// блокирует слот и не может быть подтверждено
	HoldExpired bool `json:"holdExpired,omitempty"`

	TotalAmountCents int64  `json:"totalAmountCents"`
	Currency         string `json:"currency"`

	CustomerName  *string `json:"customerName,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	RefundStatus       *string    `json:"refundStatus,omitempty"`
	RefundAmountCents  *int64     `json:"refundAmountCents,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует domain модель в response
func FromDomainReservation(r *domain.Reservation, now time.Time) *ReservationResponse {
	return &ReservationResponse{
		ID:                 r.ID,
		ProductSlug:        r.ProductSlug,
		SlotID:             string(r.SlotID),
		StartAt:            r.StartAt,
		EndAt:              r.EndAt,
		Status:             string(r.Status),
		HoldExpiresAt:      r.HoldExpiresAt,
		HoldExpired:        r.IsExpiredHold(now),
		TotalAmountCents:   r.TotalAmountCents,
		Currency:           r.Currency,
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		CustomerPhone:      r.CustomerPhone,
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
		CancelledAt:        r.CancelledAt,
		RefundStatus:       r.RefundStatus,
		RefundAmountCents:  r.RefundAmountCents,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в response
func FromDomainReservationList(list []*domain.Reservation, now time.Time) *ReservationListResponse {
	out := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(list)),
		Total:        len(list),
	}
	for _, r := range list {
		out.Reservations = append(out.Reservations, *FromDomainReservation(r, now))
	}
	return out
}
