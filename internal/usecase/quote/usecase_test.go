package quote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calypso-charters/CharterBookingService/internal/domain"
	"github.com/calypso-charters/CharterBookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestCatalog(t *testing.T) *domain.Catalog {
	t.Helper()

	loc, err := time.LoadLocation("America/Antigua")
	require.NoError(t, err)

	slots := []domain.SlotDefinition{
		{ID: domain.SlotDay, Label: "Day Charter", DailyFrom: types.TimeOfDay("10:00"), DailyTo: types.TimeOfDay("17:00")},
		{ID: domain.SlotSunset, Label: "Sunset Charter", DailyFrom: types.TimeOfDay("16:30"), DailyTo: types.TimeOfDay("18:30")},
	}
	products := []domain.CharterProduct{
		{Slug: "day", Title: "Day Charter", Slots: []domain.SlotID{domain.SlotDay}, BasePriceCents: 120000, Currency: "USD", IncludedGuests: 6, MaxGuests: 8, Active: true},
		{Slug: "sunset", Title: "Sunset Charter", Slots: []domain.SlotID{domain.SlotSunset}, BasePriceCents: 50000, Currency: "USD", IncludedGuests: 6, MaxGuests: 8, Active: true},
	}
	rules := []domain.PricingRule{
		{Code: domain.RuleExtraGuest, Label: "Extra guests", AmountCents: 10000, Threshold: 6, MaxValue: 8, Active: true},
		{Code: domain.RuleNobuFuel, Label: "Nobu fuel surcharge", AmountCents: 15000, AppliesToSlots: []domain.SlotID{domain.SlotDay}, Active: true},
		{Code: domain.RuleCateringPerHead, Label: "Onboard catering", AmountCents: 4500, AppliesToSlots: []domain.SlotID{domain.SlotDay}, Active: true},
	}

	catalog, err := domain.NewCatalog(loc, slots, products, rules)
	require.NoError(t, err)
	return catalog
}

func TestQuote_Breakdown(t *testing.T) {
	uc := NewUseCase(newTestCatalog(t), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ProductSlug: "day",
		SlotID:      "DAY",
		Guests:      7,
		Nobu:        true,
		Catering:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, "USD", resp.Currency)
	require.Len(t, resp.Breakdown, 4)
	assert.Equal(t, "Day Charter", resp.Breakdown[0].Label)
	assert.Equal(t, int64(120000), resp.Breakdown[0].AmountCents)
	assert.Equal(t, int64(120000+10000+15000+7*4500), resp.TotalAmountCents)
}

func TestQuote_BaseOnly(t *testing.T) {
	uc := NewUseCase(newTestCatalog(t), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ProductSlug: "sunset",
		SlotID:      "SUNSET",
		Guests:      4,
	})
	require.NoError(t, err)

	require.Len(t, resp.Breakdown, 1)
	assert.Equal(t, int64(50000), resp.TotalAmountCents)
}

func TestQuote_ErrorMapping(t *testing.T) {
	uc := NewUseCase(newTestCatalog(t), nopLogger{})

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "unknown product",
			req:     &Request{ProductSlug: "ghost", SlotID: "DAY", Guests: 4},
			wantErr: ErrProductNotFound,
		},
		{
			name:    "slot not sold for product",
			req:     &Request{ProductSlug: "sunset", SlotID: "DAY", Guests: 4},
			wantErr: ErrSlotNotForProduct,
		},
		{
			name:    "too many guests",
			req:     &Request{ProductSlug: "day", SlotID: "DAY", Guests: 9},
			wantErr: ErrInvalidGuests,
		},
		{
			name:    "nobu outside DAY slot",
			req:     &Request{ProductSlug: "sunset", SlotID: "SUNSET", Guests: 4, Nobu: true},
			wantErr: ErrOptionNotAllowed,
		},
		{
			name:    "vegan without catering",
			req:     &Request{ProductSlug: "day", SlotID: "DAY", Guests: 4, VeganCount: 2},
			wantErr: ErrInvalidGuests,
		},
		{
			name:    "missing product",
			req:     &Request{SlotID: "DAY", Guests: 4},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative vegan count",
			req:     &Request{ProductSlug: "day", SlotID: "DAY", Guests: 4, VeganCount: -1},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
