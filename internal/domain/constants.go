package domain

// Default configuration values
const (
	DefaultHoldMinutes       = 15
	DefaultCurrency          = "USD"
	DefaultOperatingTimezone = "America/Antigua"
	DefaultIncludedGuests    = 6
	DefaultMaxGuests         = 8
)

// Business validation constants
const (
	MinGuests                   = 1
	MaxAvailabilityRangeDays    = 92
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxCustomerNameLength       = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Pricing rule codes understood by the quote engine
const (
	RuleExtraGuest      = "EXTRA_GUEST"
	RuleNobuFuel        = "NOBU_FUEL"
	RuleCateringPerHead = "CATERING_PER_HEAD"
)
