package get_availability

import (
	"context"
	"time"

	"github.com/calypso-charters/CharterBookingService/internal/domain"
	"github.com/calypso-charters/CharterBookingService/internal/integrations/paceservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetWithFilter получает бронирования, пересекающие окно фильтра
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// PaceClient интерфейс клиента партнёрского фида Pace Shuttles
type PaceClient interface {
	GetBusyBlocksWithGracefulDegradation(ctx context.Context, from, to time.Time) []paceservice.BusyBlock
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
