//go:build unit

package booking_test

import (
	"testing"
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *booking.Validator {
	t.Helper()
	grid, err := schedule.NewGrid(8, 24, time.UTC)
	require.NoError(t, err)
	return booking.NewValidator(grid)
}

func intPtr(v int) *int { return &v }

func validInput() booking.Input {
	return booking.Input{
		Date:         time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		RoomID:       booking.RoomConferenceA,
		StartIndex:   intPtr(4),
		EndIndex:     intPtr(7),
		CustomerName: "Acme Corp",
		Purpose:      "Quarterly review",
		BookedBy:     "user-1",
	}
}

func existingBooking(id uuid.UUID, roomID booking.RoomID, start, end int) booking.Booking {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return booking.ReconstructBooking(
		id,
		time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		roomID, start, end,
		"Existing Customer", "Standup", "user-2",
		now, now,
	)
}

func TestValidate(t *testing.T) {
	v := newValidator(t)

	t.Run("valid proposal is normalized", func(t *testing.T) {
		in := validInput()
		in.CustomerName = "  Acme Corp  "
		in.Purpose = " Quarterly review "

		got, err := v.Validate(in, nil, uuid.Nil)
		require.NoError(t, err)

		assert.Equal(t, uuid.Nil, got.ID())
		assert.Equal(t, "Acme Corp", got.CustomerName())
		assert.Equal(t, "Quarterly review", got.Purpose())
		assert.Equal(t, 4, got.StartIndex())
		assert.Equal(t, 7, got.EndIndex())
		assert.Equal(t, "user-1", got.BookedBy())
	})

	t.Run("missing fields", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*booking.Input)
		}{
			{name: "zero date", mutate: func(in *booking.Input) { in.Date = time.Time{} }},
			{name: "absent start index", mutate: func(in *booking.Input) { in.StartIndex = nil }},
			{name: "absent end index", mutate: func(in *booking.Input) { in.EndIndex = nil }},
			{name: "empty customer name", mutate: func(in *booking.Input) { in.CustomerName = "" }},
			{name: "whitespace customer name", mutate: func(in *booking.Input) { in.CustomerName = "   " }},
			{name: "unknown room", mutate: func(in *booking.Input) { in.RoomID = 99 }},
			{name: "zero room", mutate: func(in *booking.Input) { in.RoomID = 0 }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				in := validInput()
				tt.mutate(&in)
				_, err := v.Validate(in, nil, uuid.Nil)
				assert.ErrorIs(t, err, booking.ErrMissingFields)
			})
		}
	})

	t.Run("range bounds", func(t *testing.T) {
		tests := []struct {
			name       string
			start, end int
			wantErr    error
		}{
			{name: "single slot", start: 0, end: 0},
			{name: "last slot", start: 63, end: 63},
			{name: "inverted range", start: 7, end: 4, wantErr: booking.ErrInvalidRange},
			{name: "negative start", start: -1, end: 3, wantErr: booking.ErrInvalidRange},
			{name: "end past grid", start: 60, end: 64, wantErr: booking.ErrInvalidRange},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				in := validInput()
				in.StartIndex = intPtr(tt.start)
				in.EndIndex = intPtr(tt.end)
				_, err := v.Validate(in, nil, uuid.Nil)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					return
				}
				assert.NoError(t, err)
			})
		}
	})

	t.Run("duration cap", func(t *testing.T) {
		in := validInput()
		in.StartIndex = intPtr(0)
		in.EndIndex = intPtr(7) // exactly 8 slots, 2 hours

		_, err := v.Validate(in, nil, uuid.Nil)
		assert.NoError(t, err)

		in.EndIndex = intPtr(8) // 9 slots
		_, err = v.Validate(in, nil, uuid.Nil)
		assert.ErrorIs(t, err, booking.ErrDurationExceeded)
	})

	t.Run("check order is fixed", func(t *testing.T) {
		// A proposal failing several checks reports the earliest one.
		in := validInput()
		in.CustomerName = ""
		in.StartIndex = intPtr(7)
		in.EndIndex = intPtr(4)
		_, err := v.Validate(in, nil, uuid.Nil)
		assert.ErrorIs(t, err, booking.ErrMissingFields)

		in = validInput()
		in.StartIndex = intPtr(-1)
		in.EndIndex = intPtr(20) // both out of bounds and over the cap
		_, err = v.Validate(in, nil, uuid.Nil)
		assert.ErrorIs(t, err, booking.ErrInvalidRange)
	})
}

func TestValidateConflicts(t *testing.T) {
	v := newValidator(t)
	occupied := existingBooking(uuid.New(), booking.RoomConferenceA, 4, 7)

	t.Run("overlapping proposal is rejected with the colliding booking", func(t *testing.T) {
		in := validInput()
		in.StartIndex = intPtr(6)
		in.EndIndex = intPtr(9)

		_, err := v.Validate(in, []booking.Booking{occupied}, uuid.Nil)
		require.ErrorIs(t, err, booking.ErrSlotConflict)

		var conflict *booking.SlotConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, occupied.ID(), conflict.Existing.ID())
	})

	t.Run("adjacent proposal passes", func(t *testing.T) {
		in := validInput()
		in.StartIndex = intPtr(8)
		in.EndIndex = intPtr(9)

		_, err := v.Validate(in, []booking.Booking{occupied}, uuid.Nil)
		assert.NoError(t, err)
	})

	t.Run("first conflict in iteration order is reported", func(t *testing.T) {
		first := existingBooking(uuid.New(), booking.RoomConferenceA, 2, 5)
		second := existingBooking(uuid.New(), booking.RoomConferenceA, 6, 9)

		in := validInput()
		in.StartIndex = intPtr(4)
		in.EndIndex = intPtr(8)

		_, err := v.Validate(in, []booking.Booking{first, second}, uuid.Nil)
		var conflict *booking.SlotConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, first.ID(), conflict.Existing.ID())
	})

	t.Run("edit does not conflict with itself", func(t *testing.T) {
		in := validInput()
		in.StartIndex = intPtr(5)
		in.EndIndex = intPtr(8)

		_, err := v.Validate(in, []booking.Booking{occupied}, occupied.ID())
		assert.NoError(t, err)
	})

	t.Run("same edit without the exclusion conflicts with itself", func(t *testing.T) {
		in := validInput()
		in.StartIndex = intPtr(5)
		in.EndIndex = intPtr(8)

		_, err := v.Validate(in, []booking.Booking{occupied}, uuid.Nil)
		assert.ErrorIs(t, err, booking.ErrSlotConflict)
	})

	t.Run("edit still conflicts with other bookings", func(t *testing.T) {
		other := existingBooking(uuid.New(), booking.RoomConferenceA, 10, 12)

		in := validInput()
		in.StartIndex = intPtr(9)
		in.EndIndex = intPtr(11)

		_, err := v.Validate(in, []booking.Booking{occupied, other}, occupied.ID())
		require.ErrorIs(t, err, booking.ErrSlotConflict)

		var conflict *booking.SlotConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, other.ID(), conflict.Existing.ID())
	})
}
