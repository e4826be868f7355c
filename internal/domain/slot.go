package domain

import (
	"time"

	"github.com/calypso-charters/CharterBookingService/pkg/types"
)

// SlotID identifies a sellable time-of-day window from the catalog.
type SlotID string

// Catalog slot identifiers for the single vessel.
const (
	SlotDay    SlotID = "DAY"
	SlotHalfAM SlotID = "HALF_AM"
	SlotHalfPM SlotID = "HALF_PM"
	SlotSunset SlotID = "SUNSET"
)

// SlotDefinition maps a slot to its wall-clock span.
// Static catalog data, never mutated at runtime.
type SlotDefinition struct {
	ID        SlotID
	Label     string
	DailyFrom types.TimeOfDay
	DailyTo   types.TimeOfDay
}

// SpanOn resolves the slot's wall-clock span on a calendar date in loc.
func (d SlotDefinition) SpanOn(date time.Time, loc *time.Location) TimeRange {
	return TimeRange{
		Start: d.DailyFrom.At(date, loc),
		End:   d.DailyTo.At(date, loc),
	}
}

// CharterProduct is a sellable charter offering owning an ordered set of
// slots it is allowed to sell. A product with no slots (the partner shuttle
// line) is listed but never bookable through this engine.
type CharterProduct struct {
	Slug           string
	Title          string
	Slots          []SlotID
	BasePriceCents int64
	Currency       string
	IncludedGuests int
	MaxGuests      int
	Active         bool
}

// SellsSlot reports whether the product is allowed to sell the given slot.
func (p CharterProduct) SellsSlot(slot SlotID) bool {
	for _, s := range p.Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// IsBookable reports whether the product can be sold through this engine.
func (p CharterProduct) IsBookable() bool {
	return p.Active && len(p.Slots) > 0
}
