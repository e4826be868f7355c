package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calypso-charters/CharterBookingService/internal/domain"
	"github.com/calypso-charters/CharterBookingService/internal/integrations/paceservice"
	"github.com/calypso-charters/CharterBookingService/pkg/ptr"
	"github.com/calypso-charters/CharterBookingService/pkg/types"
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
	lastFilter   domain.ReservationsFilter
}

func (f *fakeReservationRepo) GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	return f.reservations, f.err
}

type fakePaceClient struct {
	blocks []paceservice.BusyBlock
}

func (f *fakePaceClient) GetBusyBlocksWithGracefulDegradation(ctx context.Context, from, to time.Time) []paceservice.BusyBlock {
	return f.blocks
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

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
		{ID: domain.SlotHalfAM, Label: "Half Day (AM)", DailyFrom: types.TimeOfDay("10:00"), DailyTo: types.TimeOfDay("13:00")},
		{ID: domain.SlotHalfPM, Label: "Half Day (PM)", DailyFrom: types.TimeOfDay("14:00"), DailyTo: types.TimeOfDay("17:00")},
		{ID: domain.SlotSunset, Label: "Sunset Charter", DailyFrom: types.TimeOfDay("16:30"), DailyTo: types.TimeOfDay("18:30")},
	}
	products := []domain.CharterProduct{
		{Slug: "day", Title: "Day Charter", Slots: []domain.SlotID{domain.SlotDay}, BasePriceCents: 120000, Currency: "USD", IncludedGuests: 6, MaxGuests: 8, Active: true},
		{Slug: "sunset", Title: "Sunset Charter", Slots: []domain.SlotID{domain.SlotSunset}, BasePriceCents: 50000, Currency: "USD", IncludedGuests: 6, MaxGuests: 8, Active: true},
		{Slug: "restaurant-shuttle", Title: "Restaurant Shuttle", Currency: "USD", Active: true},
	}

	catalog, err := domain.NewCatalog(loc, slots, products, nil)
	require.NoError(t, err)
	return catalog
}

func newTestUseCase(t *testing.T, repo *fakeReservationRepo, pace *fakePaceClient, now time.Time) *UseCase {
	t.Helper()
	uc := NewUseCase(newTestCatalog(t), repo, pace, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func spanFor(t *testing.T, catalog *domain.Catalog, date time.Time, slot domain.SlotID) domain.TimeRange {
	t.Helper()
	span, err := catalog.Resolve(date, slot)
	require.NoError(t, err)
	return span
}

func TestGetAvailability_AllFree(t *testing.T) {
	date := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	repo := &fakeReservationRepo{}
	uc := newTestUseCase(t, repo, &fakePaceClient{}, now)

	resp, err := uc.Execute(context.Background(), &Request{FromDate: date, ToDate: date})
	require.NoError(t, err)

	require.Len(t, resp.Days, 1)
	day := resp.Days[0]
	assert.Empty(t, day.BlockedSlots)
	assert.Len(t, day.AvailableSlots, 4)
	assert.False(t, day.SoldOut)
	assert.True(t, repo.lastFilter.OnlyLive)
}

func TestGetAvailability_FullDayBlocksEverything(t *testing.T) {
	catalog := newTestCatalog(t)
	date := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	nextDay := date.AddDate(0, 0, 1)
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	daySpan := spanFor(t, catalog, date, domain.SlotDay)
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{ID: "r1", Status: domain.StatusConfirmed, StartAt: daySpan.Start, EndAt: daySpan.End},
		},
	}
	uc := newTestUseCase(t, repo, &fakePaceClient{}, now)

	resp, err := uc.Execute(context.Background(), &Request{FromDate: date, ToDate: nextDay})
	require.NoError(t, err)
	require.Len(t, resp.Days, 2)

	// День с полным чартером распродан целиком
	booked := resp.Days[0]
	assert.Len(t, booked.BlockedSlots, 4)
	assert.Empty(t, booked.AvailableSlots)
	assert.True(t, booked.SoldOut)

	// Соседний день не затронут
	free := resp.Days[1]
	assert.Empty(t, free.BlockedSlots)
	assert.False(t, free.SoldOut)
}

func TestGetAvailability_MorningHoldLeavesAfternoon(t *testing.T) {
	catalog := newTestCatalog(t)
	date := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 6, 10, 8, 0, 0, 0, time.UTC)

	amSpan := spanFor(t, catalog, date, domain.SlotHalfAM)
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{
				ID:            "r1",
				Status:        domain.StatusHold,
				HoldExpiresAt: ptr.Ptr(now.Add(10 * time.Minute)),
				StartAt:       amSpan.Start,
				EndAt:         amSpan.End,
			},
		},
	}
	uc := newTestUseCase(t, repo, &fakePaceClient{}, now)

	resp, err := uc.Execute(context.Background(), &Request{FromDate: date, ToDate: date})
	require.NoError(t, err)

	day := resp.Days[0]
	assert.ElementsMatch(t, []domain.SlotID{domain.SlotDay, domain.SlotHalfAM}, day.BlockedSlots)
	assert.ElementsMatch(t, []domain.SlotID{domain.SlotHalfPM, domain.SlotSunset}, day.AvailableSlots)
	assert.False(t, day.SoldOut)
}

func TestGetAvailability_SunsetBlocksAfternoon(t *testing.T) {
	catalog := newTestCatalog(t)
	date := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	sunsetSpan := spanFor(t, catalog, date, domain.SlotSunset)
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{ID: "r1", Status: domain.StatusConfirmed, StartAt: sunsetSpan.Start, EndAt: sunsetSpan.End},
		},
	}
	uc := newTestUseCase(t, repo, &fakePaceClient{}, now)

	resp, err := uc.Execute(context.Background(), &Request{FromDate: date, ToDate: date})
	require.NoError(t, err)

	// Сансет 16:30-18:30 пересекает DAY и HALF_PM, но не утренний слот
	day := resp.Days[0]
	assert.ElementsMatch(t, []domain.SlotID{domain.SlotDay, domain.SlotHalfPM, domain.SlotSunset}, day.BlockedSlots)
	assert.ElementsMatch(t, []domain.SlotID{domain.SlotHalfAM}, day.AvailableSlots)
}

func TestGetAvailability_ExpiredHoldDoesNotBlock(t *testing.T) {
	catalog := newTestCatalog(t)
	date := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)

	daySpan := spanFor(t, catalog, date, domain.SlotDay)
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{
				ID:            "r1",
				Status:        domain.StatusHold,
				HoldExpiresAt: ptr.Ptr(now.Add(-time.Minute)),
				StartAt:       daySpan.Start,
				EndAt:         daySpan.End,
			},
		},
	}
	uc := newTestUseCase(t, repo, &fakePaceClient{}, now)

	resp, err := uc.Execute(context.Background(), &Request{FromDate: date, ToDate: date})
	require.NoError(t, err)

	assert.Empty(t, resp.Days[0].BlockedSlots)
	assert.False(t, resp.Days[0].SoldOut)
}

func TestGetAvailability_PartnerBlockCounts(t *testing.T) {
	catalog := newTestCatalog(t)
	date := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	pmSpan := spanFor(t, catalog, date, domain.SlotHalfPM)
	pace := &fakePaceClient{
		blocks: []paceservice.BusyBlock{{StartAt: pmSpan.Start, EndAt: pmSpan.End}},
	}
	uc := newTestUseCase(t, &fakeReservationRepo{}, pace, now)

	resp, err := uc.Execute(context.Background(), &Request{FromDate: date, ToDate: date})
	require.NoError(t, err)

	day := resp.Days[0]
	assert.Contains(t, day.BlockedSlots, domain.SlotHalfPM)
	assert.Contains(t, day.BlockedSlots, domain.SlotDay)
	assert.Contains(t, day.AvailableSlots, domain.SlotHalfAM)
}

func TestGetAvailability_ProductFilter(t *testing.T) {
	date := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	uc := newTestUseCase(t, &fakeReservationRepo{}, &fakePaceClient{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ProductSlug: ptr.Ptr("sunset"),
		FromDate:    date,
		ToDate:      date,
	})
	require.NoError(t, err)

	day := resp.Days[0]
	assert.Equal(t, []domain.SlotID{domain.SlotSunset}, day.AvailableSlots)
	assert.Empty(t, day.BlockedSlots)
}

func TestGetAvailability_Rejections(t *testing.T) {
	date := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	uc := newTestUseCase(t, &fakeReservationRepo{}, &fakePaceClient{}, now)

	t.Run("to before from", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{FromDate: date, ToDate: date.AddDate(0, 0, -1)})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("range too large", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{FromDate: date, ToDate: date.AddDate(0, 0, domain.MaxAvailabilityRangeDays)})
		assert.ErrorIs(t, err, ErrRangeTooLarge)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{ProductSlug: ptr.Ptr("ghost"), FromDate: date, ToDate: date})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("shuttle not bookable", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{ProductSlug: ptr.Ptr("restaurant-shuttle"), FromDate: date, ToDate: date})
		assert.ErrorIs(t, err, ErrProductNotBookable)
	})

	t.Run("missing dates", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
