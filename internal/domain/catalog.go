package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnknownSlot возвращается при обращении к слоту, которого нет в каталоге
	ErrUnknownSlot = errors.New("domain: unknown slot")

	// ErrUnknownProduct возвращается при обращении к неизвестному продукту
	ErrUnknownProduct = errors.New("domain: unknown charter product")

	// ErrEmptyCatalog возвращается при попытке собрать каталог без слотов
	ErrEmptyCatalog = errors.New("domain: catalog must define at least one slot")
)

// Catalog is the immutable slot/product/pricing catalog for the vessel,
// anchored to one fixed operating timezone. Built once from configuration;
// every scheduling decision resolves wall-clock slots through it so that
// day bucketing and slot spans always agree.
type Catalog struct {
	loc       *time.Location
	slots     map[SlotID]SlotDefinition
	slotOrder []SlotID
	products  map[string]CharterProduct
	prodOrder []string
	rules     []PricingRule
}

// NewCatalog builds and validates a catalog.
func NewCatalog(loc *time.Location, slots []SlotDefinition, products []CharterProduct, rules []PricingRule) (*Catalog, error) {
	if loc == nil {
		return nil, errors.New("domain: catalog requires an operating timezone")
	}
	if len(slots) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		loc:      loc,
		slots:    make(map[SlotID]SlotDefinition, len(slots)),
		products: make(map[string]CharterProduct, len(products)),
		rules:    rules,
	}

	for _, s := range slots {
		if err := s.DailyFrom.Validate(); err != nil {
			return nil, fmt.Errorf("domain: slot %s: %w", s.ID, err)
		}
		if err := s.DailyTo.Validate(); err != nil {
			return nil, fmt.Errorf("domain: slot %s: %w", s.ID, err)
		}
		if !s.DailyFrom.IsBefore(s.DailyTo) {
			return nil, fmt.Errorf("domain: slot %s: start %s must be before end %s",
				s.ID, s.DailyFrom, s.DailyTo)
		}
		if _, dup := c.slots[s.ID]; dup {
			return nil, fmt.Errorf("domain: duplicate slot %s", s.ID)
		}
		c.slots[s.ID] = s
		c.slotOrder = append(c.slotOrder, s.ID)
	}

	for _, p := range products {
		for _, slot := range p.Slots {
			if _, ok := c.slots[slot]; !ok {
				return nil, fmt.Errorf("%w: product %s references slot %s", ErrUnknownSlot, p.Slug, slot)
			}
		}
		if _, dup := c.products[p.Slug]; dup {
			return nil, fmt.Errorf("domain: duplicate product %s", p.Slug)
		}
		c.products[p.Slug] = p
		c.prodOrder = append(c.prodOrder, p.Slug)
	}

	return c, nil
}

// Location returns the vessel's operating timezone.
func (c *Catalog) Location() *time.Location {
	return c.loc
}

// AllSlots returns every slot definition in catalog order.
func (c *Catalog) AllSlots() []SlotDefinition {
	out := make([]SlotDefinition, 0, len(c.slotOrder))
	for _, id := range c.slotOrder {
		out = append(out, c.slots[id])
	}
	return out
}

// Slot looks up a slot definition.
func (c *Catalog) Slot(id SlotID) (SlotDefinition, error) {
	def, ok := c.slots[id]
	if !ok {
		return SlotDefinition{}, fmt.Errorf("%w: %s", ErrUnknownSlot, id)
	}
	return def, nil
}

// Product looks up a charter product by slug.
func (c *Catalog) Product(slug string) (CharterProduct, error) {
	p, ok := c.products[slug]
	if !ok {
		return CharterProduct{}, fmt.Errorf("%w: %s", ErrUnknownProduct, slug)
	}
	return p, nil
}

// Products returns every product in catalog order.
func (c *Catalog) Products() []CharterProduct {
	out := make([]CharterProduct, 0, len(c.prodOrder))
	for _, slug := range c.prodOrder {
		out = append(out, c.products[slug])
	}
	return out
}

// SlotsForProduct returns the slot definitions a product may sell, in order.
func (c *Catalog) SlotsForProduct(slug string) ([]SlotDefinition, error) {
	p, err := c.Product(slug)
	if err != nil {
		return nil, err
	}
	out := make([]SlotDefinition, 0, len(p.Slots))
	for _, id := range p.Slots {
		out = append(out, c.slots[id])
	}
	return out, nil
}

// Resolve anchors a slot's wall-clock span to a calendar date in the
// operating timezone.
func (c *Catalog) Resolve(date time.Time, slot SlotID) (TimeRange, error) {
	def, err := c.Slot(slot)
	if err != nil {
		return TimeRange{}, err
	}
	return def.SpanOn(date, c.loc), nil
}

// DayStart returns midnight of the given date in the operating timezone.
func (c *Catalog) DayStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, c.loc)
}

// Rules returns the configured pricing rules in catalog order.
func (c *Catalog) Rules() []PricingRule {
	return c.rules
}

// Rule looks up an active pricing rule by code.
func (c *Catalog) Rule(code string) (PricingRule, bool) {
	for _, r := range c.rules {
		if r.Code == code && r.Active {
			return r, true
		}
	}
	return PricingRule{}, false
}
