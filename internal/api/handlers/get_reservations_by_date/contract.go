package get_reservations_by_date

import (
	"context"

	"github.com/calypso-charters/CharterBookingService/internal/service/reservations/models"
)

type ReservationService interface {
	GetByDay(ctx context.Context, req *models.GetByDayRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
