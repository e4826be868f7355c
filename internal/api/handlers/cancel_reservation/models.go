package cancel_reservation

import (
	"github.com/calypso-charters/CharterBookingService/internal/service/reservations/models"
)

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelReservationRequest) ToServiceRequest(reservationID string) *models.CancelReservationRequest {
	return &models.CancelReservationRequest{
		ReservationID:      reservationID,
		CancellationReason: r.CancellationReason,
	}
}
