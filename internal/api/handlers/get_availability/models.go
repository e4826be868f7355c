package get_availability

import (
	"github.com/calypso-charters/CharterBookingService/internal/domain"
	uc "github.com/calypso-charters/CharterBookingService/internal/usecase/get_availability"
)

// DayAvailabilityResponse доступность на один день
type DayAvailabilityResponse struct {
	Date           string   `json:"date"` // "2026-03-14"
	BlockedSlots   []string `json:"blockedSlots"`
	AvailableSlots []string `json:"availableSlots"`
	SoldOut        bool     `json:"soldOut"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Days []DayAvailabilityResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *uc.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{Days: make([]DayAvailabilityResponse, 0, len(resp.Days))}
	for _, day := range resp.Days {
		out.Days = append(out.Days, DayAvailabilityResponse{
			Date:           day.Date.Format(domain.DateFormat),
			BlockedSlots:   slotIDs(day.BlockedSlots),
			AvailableSlots: slotIDs(day.AvailableSlots),
			SoldOut:        day.SoldOut,
		})
	}
	return out
}

func slotIDs(slots []domain.SlotID) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, string(s))
	}
	return out
}
