//go:build unit

package booking_test

import (
	"testing"
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/domain/principal"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ownedBooking(ownerID string) booking.Booking {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return booking.ReconstructBooking(
		uuid.New(),
		time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		booking.RoomMeetingA, 4, 7,
		"Acme Corp", "Quarterly review", ownerID,
		now, now,
	)
}

func TestRedact(t *testing.T) {
	b := ownedBooking("user-1")

	owner := &principal.Principal{ID: "user-1", Role: principal.RoleMember}
	admin := &principal.Principal{ID: "admin-1", Role: principal.RoleAdmin}
	stranger := &principal.Principal{ID: "user-2", Role: principal.RoleMember}

	t.Run("owner sees the full record", func(t *testing.T) {
		p := booking.Redact(b, owner)
		assert.Equal(t, "Acme Corp", p.CustomerName)
		require.NotNil(t, p.Purpose)
		assert.Equal(t, "Quarterly review", *p.Purpose)
		assert.Equal(t, "user-1", p.BookedBy)
	})

	t.Run("admin sees the full record", func(t *testing.T) {
		p := booking.Redact(b, admin)
		assert.Equal(t, "Acme Corp", p.CustomerName)
		require.NotNil(t, p.Purpose)
		assert.Equal(t, "user-1", p.BookedBy)
	})

	t.Run("other members see only occupancy", func(t *testing.T) {
		p := booking.Redact(b, stranger)
		assert.Equal(t, booking.RedactedName, p.CustomerName)
		assert.Nil(t, p.Purpose)
		assert.Empty(t, p.BookedBy)
	})

	t.Run("anonymous viewers see only occupancy", func(t *testing.T) {
		p := booking.Redact(b, principal.Anonymous())
		assert.Equal(t, booking.RedactedName, p.CustomerName)
		assert.Nil(t, p.Purpose)
		assert.Empty(t, p.BookedBy)
	})

	t.Run("slot range and room survive redaction", func(t *testing.T) {
		p := booking.Redact(b, principal.Anonymous())
		assert.Equal(t, b.ID(), p.ID)
		assert.Equal(t, booking.RoomMeetingA, p.RoomID)
		assert.Equal(t, "Meeting A", p.RoomName)
		assert.Equal(t, 4, p.StartIndex)
		assert.Equal(t, 7, p.EndIndex)
	})

	t.Run("projection is deterministic", func(t *testing.T) {
		first := booking.Redact(b, stranger)
		second := booking.Redact(b, stranger)
		assert.Equal(t, first, second)
	})

	t.Run("ownership requires a non-empty principal id", func(t *testing.T) {
		orphan := ownedBooking("")
		emptyViewer := &principal.Principal{ID: "", Role: principal.RoleMember}
		p := booking.Redact(orphan, emptyViewer)
		assert.Equal(t, booking.RedactedName, p.CustomerName)
	})
}

func TestRedactAll(t *testing.T) {
	mine := ownedBooking("user-1")
	theirs := ownedBooking("user-2")
	viewer := &principal.Principal{ID: "user-1", Role: principal.RoleMember}

	out := booking.RedactAll([]booking.Booking{mine, theirs}, viewer)
	require.Len(t, out, 2)
	assert.Equal(t, "Acme Corp", out[0].CustomerName)
	assert.Equal(t, booking.RedactedName, out[1].CustomerName)
}
