//go:build unit

package booking_test

import (
	"testing"
	"time"

	"roombook/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBooking(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	b := booking.ReconstructBooking(
		uuid.New(),
		time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		booking.RoomConferenceA, 4, 7,
		"Acme Corp", "Planning", "user-1",
		now, now,
	)

	t.Run("derived measures", func(t *testing.T) {
		assert.Equal(t, "2026-03-14", b.DateKey())
		assert.Equal(t, 4, b.SlotCount())
		assert.Equal(t, 60, b.DurationMinutes())
	})

	t.Run("ownership", func(t *testing.T) {
		assert.True(t, b.IsOwnedBy("user-1"))
		assert.False(t, b.IsOwnedBy("user-2"))
		assert.False(t, b.IsOwnedBy(""))
	})

	t.Run("overlap against a proposed range", func(t *testing.T) {
		assert.True(t, b.OverlapsRange(6, 9))
		assert.True(t, b.OverlapsRange(4, 7))
		assert.False(t, b.OverlapsRange(8, 9))
		assert.False(t, b.OverlapsRange(0, 3))
	})
}

func TestRooms(t *testing.T) {
	assert.True(t, booking.RoomConferenceA.IsValid())
	assert.False(t, booking.RoomID(0).IsValid())
	assert.False(t, booking.RoomID(5).IsValid())

	assert.Equal(t, "Conference A", booking.RoomConferenceA.Name())
	assert.Equal(t, "Meeting B", booking.RoomMeetingB.Name())
	assert.Equal(t, "Unknown", booking.RoomID(99).Name())

	assert.Len(t, booking.Rooms(), 4)
}
