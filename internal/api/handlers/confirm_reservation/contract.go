package confirm_reservation

import (
	"context"

	"github.com/calypso-charters/CharterBookingService/internal/service/reservations/models"
)

type ReservationService interface {
	Confirm(ctx context.Context, reservationID string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
