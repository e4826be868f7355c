package domain

// PricingRule is a single configured surcharge applied by the quote engine.
// Rules come from configuration and are applied in catalog order.
type PricingRule struct {
	Code        string
	Label       string
	AmountCents int64

	// EXTRA_GUEST: surcharge applies per guest above Threshold, counting
	// guests up to MaxValue
	Threshold int
	MaxValue  int

	// Slots the rule is legal for; empty means every slot
	AppliesToSlots []SlotID

	Active bool
}

// AppliesTo reports whether the rule may be charged for the given slot.
func (r PricingRule) AppliesTo(slot SlotID) bool {
	if len(r.AppliesToSlots) == 0 {
		return true
	}
	for _, s := range r.AppliesToSlots {
		if s == slot {
			return true
		}
	}
	return false
}
