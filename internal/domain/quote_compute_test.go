package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeQuote_BaseOnly(t *testing.T) {
	c := newTestCatalog(t)

	q, err := c.ComputeQuote("day", SlotDay, 4, QuoteOptions{})
	require.NoError(t, err)

	require.Len(t, q.Lines, 1)
	assert.Equal(t, "Day Charter", q.Lines[0].Label)
	assert.Equal(t, int64(120000), q.TotalCents)
	assert.Equal(t, "USD", q.Currency)
}

func TestComputeQuote_ExtraGuests(t *testing.T) {
	c := newTestCatalog(t)

	// 8 гостей при пороге 6: доплата за двоих
	q, err := c.ComputeQuote("day", SlotDay, 8, QuoteOptions{})
	require.NoError(t, err)

	require.Len(t, q.Lines, 2)
	assert.Equal(t, int64(20000), q.Lines[1].AmountCents)
	assert.Equal(t, int64(140000), q.TotalCents)
}

func TestComputeQuote_NoExtraGuestsAtThreshold(t *testing.T) {
	c := newTestCatalog(t)

	q, err := c.ComputeQuote("day", SlotDay, 6, QuoteOptions{})
	require.NoError(t, err)

	require.Len(t, q.Lines, 1)
	assert.Equal(t, int64(120000), q.TotalCents)
}

func TestComputeQuote_AllOptions(t *testing.T) {
	c := newTestCatalog(t)

	q, err := c.ComputeQuote("day", SlotDay, 7, QuoteOptions{Nobu: true, Catering: true, VeganCount: 2})
	require.NoError(t, err)

	// Порядок строк фиксирован: база, гости, Nobu, питание
	require.Len(t, q.Lines, 4)
	assert.Equal(t, int64(120000), q.Lines[0].AmountCents)
	assert.Equal(t, int64(10000), q.Lines[1].AmountCents)
	assert.Equal(t, int64(15000), q.Lines[2].AmountCents)
	assert.Equal(t, int64(7*4500), q.Lines[3].AmountCents)
	assert.Equal(t, int64(120000+10000+15000+7*4500), q.TotalCents)
}

func TestComputeQuote_Deterministic(t *testing.T) {
	c := newTestCatalog(t)

	first, err := c.ComputeQuote("day", SlotDay, 7, QuoteOptions{Nobu: true, Catering: true})
	require.NoError(t, err)

	second, err := c.ComputeQuote("day", SlotDay, 7, QuoteOptions{Nobu: true, Catering: true})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeQuote_MonotonicInGuests(t *testing.T) {
	c := newTestCatalog(t)

	var prev int64
	for guests := 1; guests <= 8; guests++ {
		q, err := c.ComputeQuote("day", SlotDay, guests, QuoteOptions{Catering: true})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, q.TotalCents, prev, "guests=%d", guests)
		prev = q.TotalCents
	}
}

func TestComputeQuote_OptionRestrictions(t *testing.T) {
	c := newTestCatalog(t)

	t.Run("nobu rejected outside DAY slot", func(t *testing.T) {
		_, err := c.ComputeQuote("sunset", SlotSunset, 4, QuoteOptions{Nobu: true})
		assert.ErrorIs(t, err, ErrOptionNotAllowed)
	})

	t.Run("catering rejected outside DAY slot", func(t *testing.T) {
		_, err := c.ComputeQuote("half-day", SlotHalfAM, 4, QuoteOptions{Catering: true})
		assert.ErrorIs(t, err, ErrOptionNotAllowed)
	})
}

func TestComputeQuote_VeganCount(t *testing.T) {
	c := newTestCatalog(t)

	t.Run("vegan within guests is price neutral", func(t *testing.T) {
		with, err := c.ComputeQuote("day", SlotDay, 5, QuoteOptions{Catering: true, VeganCount: 3})
		require.NoError(t, err)
		without, err := c.ComputeQuote("day", SlotDay, 5, QuoteOptions{Catering: true})
		require.NoError(t, err)
		assert.Equal(t, without.TotalCents, with.TotalCents)
	})

	t.Run("vegan above guests rejected", func(t *testing.T) {
		_, err := c.ComputeQuote("day", SlotDay, 4, QuoteOptions{Catering: true, VeganCount: 5})
		assert.ErrorIs(t, err, ErrVeganCountInvalid)
	})

	t.Run("vegan without catering rejected", func(t *testing.T) {
		_, err := c.ComputeQuote("day", SlotDay, 4, QuoteOptions{VeganCount: 2})
		assert.ErrorIs(t, err, ErrVeganCountInvalid)
	})

	t.Run("negative vegan rejected", func(t *testing.T) {
		_, err := c.ComputeQuote("day", SlotDay, 4, QuoteOptions{Catering: true, VeganCount: -1})
		assert.ErrorIs(t, err, ErrVeganCountInvalid)
	})
}

func TestComputeQuote_Rejections(t *testing.T) {
	c := newTestCatalog(t)

	t.Run("unknown product", func(t *testing.T) {
		_, err := c.ComputeQuote("ghost", SlotDay, 4, QuoteOptions{})
		assert.ErrorIs(t, err, ErrUnknownProduct)
	})

	t.Run("shuttle is not bookable", func(t *testing.T) {
		_, err := c.ComputeQuote("restaurant-shuttle", SlotDay, 4, QuoteOptions{})
		assert.ErrorIs(t, err, ErrProductNotBookable)
	})

	t.Run("slot not sold for product", func(t *testing.T) {
		_, err := c.ComputeQuote("sunset", SlotDay, 4, QuoteOptions{})
		assert.ErrorIs(t, err, ErrSlotNotForProduct)
	})

	t.Run("zero guests", func(t *testing.T) {
		_, err := c.ComputeQuote("day", SlotDay, 0, QuoteOptions{})
		assert.ErrorIs(t, err, ErrGuestCountOutOfBounds)
	})

	t.Run("too many guests", func(t *testing.T) {
		_, err := c.ComputeQuote("day", SlotDay, 9, QuoteOptions{})
		assert.ErrorIs(t, err, ErrGuestCountOutOfBounds)
	})
}
