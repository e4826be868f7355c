package get_availability

import (
	"time"

	"github.com/calypso-charters/CharterBookingService/internal/domain"
)

// Request запрос доступности слотов за диапазон дат
type Request struct {
	// ProductSlug сужает проверку до слотов продукта; nil - все слоты каталога
	ProductSlug *string

	FromDate time.Time
	ToDate   time.Time
}

// DayAvailability доступность слотов на один календарный день
type DayAvailability struct {
	Date           time.Time
	BlockedSlots   []domain.SlotID
	AvailableSlots []domain.SlotID
	SoldOut        bool
}

// Response ответ с доступностью по дням
type Response struct {
	Days []DayAvailability
}
