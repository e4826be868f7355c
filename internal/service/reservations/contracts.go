package reservations

import (
	"context"
	"time"

	"github.com/calypso-charters/CharterBookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	Confirm(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string, reason *string, refundAmountCents int64) error
	GetByDay(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	DeleteExpiredHolds(ctx context.Context, before time.Time) (int64, error)
	InsertEvent(ctx context.Context, event *domain.BookingEvent) error
}

// TransactionManager интерфейс для управления транзакциями
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
