package get_availability

import (
	"time"

	"github.com/calypso-charters/CharterBookingService/internal/domain"
	"github.com/calypso-charters/CharterBookingService/internal/integrations/paceservice"
)

// collectBusyRanges собирает занятые интервалы из живых бронирований и
// партнёрского фида в один список
func collectBusyRanges(
	reservations []*domain.Reservation,
	blocks []paceservice.BusyBlock,
	now time.Time,
) []domain.TimeRange {
	busy := make([]domain.TimeRange, 0, len(reservations)+len(blocks))

	for _, r := range reservations {
		// Репозиторий уже фильтрует по живым, но статус мог устареть
		// между чтением и вычислением
		if !r.IsLive(now) {
			continue
		}
		busy = append(busy, r.Range())
	}

	for _, b := range blocks {
		if !b.StartAt.Before(b.EndAt) {
			continue
		}
		busy = append(busy, domain.TimeRange{Start: b.StartAt, End: b.EndAt})
	}

	return busy
}

// availabilityForDay вычисляет доступность слотов на один календарный день.
// Слот заблокирован, если его интервал пересекает хотя бы один занятый
// интервал (полуоткрытые интервалы, касание границ не считается)
func availabilityForDay(
	date time.Time,
	slots []domain.SlotDefinition,
	busy []domain.TimeRange,
	loc *time.Location,
) DayAvailability {
	day := DayAvailability{
		Date:           date,
		BlockedSlots:   []domain.SlotID{},
		AvailableSlots: []domain.SlotID{},
	}

	for _, slot := range slots {
		span := slot.SpanOn(date, loc)

		blocked := false
		for _, b := range busy {
			if span.Overlaps(b) {
				blocked = true
				break
			}
		}

		if blocked {
			day.BlockedSlots = append(day.BlockedSlots, slot.ID)
		} else {
			day.AvailableSlots = append(day.AvailableSlots, slot.ID)
		}
	}

	day.SoldOut = len(slots) > 0 && len(day.AvailableSlots) == 0
	return day
}
