package reservation

import (
	"context"
	"fmt"

	"github.com/calypso-charters/CharterBookingService/internal/domain"
	"github.com/calypso-charters/CharterBookingService/pkg/dbmetrics"
	"github.com/calypso-charters/CharterBookingService/pkg/psqlbuilder"
)

// InsertEvent добавляет запись в журнал событий бронирования (append-only)
func (r *Repository) InsertEvent(ctx context.Context, event *domain.BookingEvent) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_events").
		Columns("reservation_id", "event_type", "event_data").
		Values(event.ReservationID, event.EventType, event.EventData).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: InsertEvent - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: InsertEvent - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
