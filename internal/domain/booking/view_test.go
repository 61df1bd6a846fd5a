//go:build unit

package booking_test

import (
	"testing"
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publicOn(day time.Time, roomID booking.RoomID, start, end int) booking.Public {
	return booking.Public{
		ID:           uuid.New(),
		Date:         day,
		RoomID:       roomID,
		RoomName:     roomID.Name(),
		StartIndex:   start,
		EndIndex:     end,
		CustomerName: booking.RedactedName,
	}
}

func TestBucketByDay(t *testing.T) {
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	late := publicOn(monday, booking.RoomConferenceA, 10, 12)
	early := publicOn(monday, booking.RoomConferenceB, 2, 4)
	sameStart := publicOn(monday, booking.RoomMeetingA, 2, 3)
	other := publicOn(tuesday, booking.RoomConferenceA, 0, 1)

	buckets := booking.BucketByDay([]booking.Public{late, early, sameStart, other})

	// Sorted by start index, then room id for equal starts.
	want := map[string][]booking.Public{
		"2026-03-09": {early, sameStart, late},
		"2026-03-10": {other},
	}
	if diff := cmp.Diff(want, buckets); diff != "" {
		t.Errorf("buckets mismatch (-want +got):\n%s", diff)
	}
}

func TestOccupancy(t *testing.T) {
	grid, err := schedule.NewGrid(8, 24, time.UTC)
	require.NoError(t, err)

	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	days := booking.DaysFrom(monday, 7)

	t.Run("bookings land on their day and slots", func(t *testing.T) {
		b := publicOn(monday, booking.RoomConferenceA, 4, 7)
		o := booking.NewOccupancy(days, grid, []booking.Public{b})

		for i := 4; i <= 7; i++ {
			got, ok := o.At(0, i)
			require.True(t, ok)
			assert.Equal(t, b.ID, got.ID)
		}
		_, ok := o.At(0, 3)
		assert.False(t, ok)
		_, ok = o.At(0, 8)
		assert.False(t, ok)
		_, ok = o.At(1, 4)
		assert.False(t, ok)
	})

	t.Run("out-of-window ranges are clamped for display", func(t *testing.T) {
		b := publicOn(monday, booking.RoomConferenceA, 60, 70)
		o := booking.NewOccupancy(days, grid, []booking.Public{b})

		got, ok := o.At(0, 63)
		require.True(t, ok)
		assert.Equal(t, b.ID, got.ID)
		_, ok = o.At(0, 64)
		assert.False(t, ok)
	})

	t.Run("bookings outside the day window are skipped", func(t *testing.T) {
		outside := publicOn(monday.AddDate(0, 0, 7), booking.RoomConferenceA, 0, 3)
		o := booking.NewOccupancy(days, grid, []booking.Public{outside})

		for di := 0; di < 7; di++ {
			_, ok := o.At(di, 0)
			assert.False(t, ok)
		}
	})

	t.Run("first booking wins a contested cell", func(t *testing.T) {
		first := publicOn(monday, booking.RoomConferenceA, 4, 7)
		second := publicOn(monday, booking.RoomConferenceB, 6, 9)
		o := booking.NewOccupancy(days, grid, []booking.Public{first, second})

		got, ok := o.At(0, 6)
		require.True(t, ok)
		assert.Equal(t, first.ID, got.ID)

		got, ok = o.At(0, 8)
		require.True(t, ok)
		assert.Equal(t, second.ID, got.ID)
	})

	t.Run("cell lookups outside the window are rejected", func(t *testing.T) {
		o := booking.NewOccupancy(days, grid, nil)
		_, ok := o.At(-1, 0)
		assert.False(t, ok)
		_, ok = o.At(7, 0)
		assert.False(t, ok)
		_, ok = o.At(0, -1)
		assert.False(t, ok)
	})

	t.Run("window metadata", func(t *testing.T) {
		o := booking.NewOccupancy(days, grid, nil)
		assert.Equal(t, 64, o.SlotCount())
		require.Len(t, o.Days(), 7)
		assert.Equal(t, "2026-03-09", o.Days()[0])
		assert.Equal(t, "2026-03-15", o.Days()[6])
	})
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "monday maps to itself",
			in:   time.Date(2026, 3, 9, 15, 30, 0, 0, time.UTC),
			want: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "wednesday maps back to monday",
			in:   time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday belongs to the preceding monday",
			in:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.WeekStart(tt.in))
		})
	}
}

func TestMonthRange(t *testing.T) {
	first, n := booking.MonthRange(2026, time.March, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, 31, n)

	_, n = booking.MonthRange(2024, time.February, time.UTC)
	assert.Equal(t, 29, n)

	_, n = booking.MonthRange(2026, time.February, time.UTC)
	assert.Equal(t, 28, n)
}
