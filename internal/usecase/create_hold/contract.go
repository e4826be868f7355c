package create_hold

import (
	"context"
	"time"

	"github.com/calypso-charters/CharterBookingService/internal/domain"
	"github.com/calypso-charters/CharterBookingService/internal/integrations/paceservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// Create сохраняет новое бронирование
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)

	// GetWithFilter получает бронирования, пересекающие окно фильтра.
	// Внутри транзакции строки блокируются через FOR UPDATE
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)

	// InsertEvent пишет запись аудита жизненного цикла
	InsertEvent(ctx context.Context, event *domain.BookingEvent) error
}

// PaceClient интерфейс клиента партнёрского фида Pace Shuttles
type PaceClient interface {
	GetBusyBlocksWithGracefulDegradation(ctx context.Context, from, to time.Time) []paceservice.BusyBlock
}

// TransactionManager интерфейс менеджера сериализуемых транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
