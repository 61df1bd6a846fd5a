package booking

import (
	"time"

	"roombook/internal/domain/schedule"

	"github.com/google/uuid"
)

// Booking is one reserved slot range in one room on one calendar day.
// The repository owns identity: a booking built by the validator carries
// uuid.Nil until the store assigns an id on insert.
type Booking struct {
	id           uuid.UUID
	date         time.Time
	roomID       RoomID
	startIndex   int
	endIndex     int
	customerName string
	purpose      string
	bookedBy     string
	createdAt    time.Time
	updatedAt    time.Time
}

// ReconstructBooking rehydrates a persisted booking from the store.
func ReconstructBooking(
	id uuid.UUID,
	date time.Time,
	roomID RoomID,
	startIndex, endIndex int,
	customerName, purpose, bookedBy string,
	createdAt, updatedAt time.Time,
) Booking {
	return Booking{
		id:           id,
		date:         date,
		roomID:       roomID,
		startIndex:   startIndex,
		endIndex:     endIndex,
		customerName: customerName,
		purpose:      purpose,
		bookedBy:     bookedBy,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (b Booking) ID() uuid.UUID        { return b.id }
func (b Booking) Date() time.Time      { return b.date }
func (b Booking) RoomID() RoomID       { return b.roomID }
func (b Booking) StartIndex() int      { return b.startIndex }
func (b Booking) EndIndex() int        { return b.endIndex }
func (b Booking) CustomerName() string { return b.customerName }
func (b Booking) Purpose() string      { return b.purpose }
func (b Booking) BookedBy() string     { return b.bookedBy }
func (b Booking) CreatedAt() time.Time { return b.createdAt }
func (b Booking) UpdatedAt() time.Time { return b.updatedAt }

func (b Booking) DateKey() string {
	return b.date.Format(schedule.DateLayout)
}

// SlotCount is the number of slots the booking occupies.
func (b Booking) SlotCount() int {
	return b.endIndex - b.startIndex + 1
}

// DurationMinutes is the booked wall-clock duration.
func (b Booking) DurationMinutes() int {
	return b.SlotCount() * schedule.IntervalMinutes
}

// IsOwnedBy reports whether the given principal id created the booking.
func (b Booking) IsOwnedBy(principalID string) bool {
	return principalID != "" && b.bookedBy == principalID
}

// OverlapsRange reports whether the booking shares a slot with the given
// inclusive range.
func (b Booking) OverlapsRange(startIndex, endIndex int) bool {
	return schedule.Overlaps(b.startIndex, b.endIndex, startIndex, endIndex)
}
