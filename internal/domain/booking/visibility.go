package booking

import (
	"time"

	"roombook/internal/domain/principal"

	"github.com/google/uuid"
)

// RedactedName is what non-owner, non-admin viewers see instead of the
// customer name. Room-level occupancy stays visible to everyone.
const RedactedName = "Booked"

// Public is a booking as exposed to a particular viewer. Owners and admins
// get the full record; everyone else gets the occupied range with the
// sensitive fields stripped.
type Public struct {
	ID           uuid.UUID
	Date         time.Time
	RoomID       RoomID
	RoomName     string
	StartIndex   int
	EndIndex     int
	CustomerName string
	Purpose      *string
	BookedBy     string
}

// Redact projects a booking for a viewer. This is the sole privacy boundary
// in the system and must run server-side; the raw record never transits to
// a client that is not entitled to it.
func Redact(b Booking, viewer principal.Viewer) Public {
	p := Public{
		ID:         b.ID(),
		Date:       b.Date(),
		RoomID:     b.RoomID(),
		RoomName:   b.RoomID().Name(),
		StartIndex: b.StartIndex(),
		EndIndex:   b.EndIndex(),
	}

	if viewer != nil && (viewer.IsAdmin() || b.IsOwnedBy(viewer.ID)) {
		p.CustomerName = b.CustomerName()
		purpose := b.Purpose()
		p.Purpose = &purpose
		p.BookedBy = b.BookedBy()
		return p
	}

	p.CustomerName = RedactedName
	return p
}

// RedactAll projects a booking list for a viewer, preserving order.
func RedactAll(bs []Booking, viewer principal.Viewer) []Public {
	out := make([]Public, len(bs))
	for i, b := range bs {
		out[i] = Redact(b, viewer)
	}
	return out
}
