package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/calypso-charters/CharterBookingService/pkg/ptr"
)

func TestReservation_IsLive(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		res  Reservation
		want bool
	}{
		{
			name: "confirmed is live",
			res:  Reservation{Status: StatusConfirmed},
			want: true,
		},
		{
			name: "hold with future expiry is live",
			res:  Reservation{Status: StatusHold, HoldExpiresAt: ptr.Ptr(now.Add(5 * time.Minute))},
			want: true,
		},
		{
			name: "hold with past expiry is not live",
			res:  Reservation{Status: StatusHold, HoldExpiresAt: ptr.Ptr(now.Add(-time.Minute))},
			want: false,
		},
		{
			name: "hold expiring exactly now is not live",
			res:  Reservation{Status: StatusHold, HoldExpiresAt: ptr.Ptr(now)},
			want: false,
		},
		{
			name: "cancelled is not live",
			res:  Reservation{Status: StatusCancelled},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.res.IsLive(now))
		})
	}
}

func TestReservation_CanBeConfirmed(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	live := Reservation{Status: StatusHold, HoldExpiresAt: ptr.Ptr(now.Add(time.Minute))}
	assert.True(t, live.CanBeConfirmed(now))

	expired := Reservation{Status: StatusHold, HoldExpiresAt: ptr.Ptr(now.Add(-time.Minute))}
	assert.False(t, expired.CanBeConfirmed(now))

	confirmed := Reservation{Status: StatusConfirmed}
	assert.False(t, confirmed.CanBeConfirmed(now))

	cancelled := Reservation{Status: StatusCancelled}
	assert.False(t, cancelled.CanBeConfirmed(now))
}

func TestReservation_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Reservation{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Reservation{Status: StatusHold}).CanBeCancelled())
	assert.False(t, (&Reservation{Status: StatusCancelled}).CanBeCancelled())
}
