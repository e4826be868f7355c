package get_charter_types

import (
	"github.com/calypso-charters/CharterBookingService/internal/domain"
)

// SlotResponse слот продукта с расписанием
type SlotResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	From  string `json:"from"` // "10:00"
	To    string `json:"to"`   // "17:00"
}

// CharterTypeResponse продукт каталога
type CharterTypeResponse struct {
	Slug           string         `json:"slug"`
	Title          string         `json:"title"`
	Slots          []SlotResponse `json:"slots"`
	BasePriceCents int64          `json:"basePriceCents"`
	Currency       string         `json:"currency"`
	IncludedGuests int            `json:"includedGuests"`
	MaxGuests      int            `json:"maxGuests"`
	Bookable       bool           `json:"bookable"`
}

// CharterTypeListResponse список продуктов
type CharterTypeListResponse struct {
	CharterTypes []CharterTypeResponse `json:"charterTypes"`
}

// FromCatalog собирает листинг продуктов из каталога
func FromCatalog(catalog *domain.Catalog) *CharterTypeListResponse {
	products := catalog.Products()
	out := &CharterTypeListResponse{CharterTypes: make([]CharterTypeResponse, 0, len(products))}

	for _, p := range products {
		if !p.Active {
			continue
		}

		slots := make([]SlotResponse, 0, len(p.Slots))
		for _, id := range p.Slots {
			def, err := catalog.Slot(id)
			if err != nil {
				continue
			}
			slots = append(slots, SlotResponse{
				ID:    string(def.ID),
				Label: def.Label,
				From:  def.DailyFrom.String(),
				To:    def.DailyTo.String(),
			})
		}

		out.CharterTypes = append(out.CharterTypes, CharterTypeResponse{
			Slug:           p.Slug,
			Title:          p.Title,
			Slots:          slots,
			BasePriceCents: p.BasePriceCents,
			Currency:       p.Currency,
			IncludedGuests: p.IncludedGuests,
			MaxGuests:      p.MaxGuests,
			Bookable:       p.IsBookable(),
		})
	}

	return out
}
