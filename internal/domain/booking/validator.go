package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"roombook/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrMissingFields    = errors.New("missing required fields")
	ErrInvalidRange     = errors.New("invalid slot range")
	ErrDurationExceeded = errors.New("maximum booking duration exceeded")
	ErrSlotConflict     = errors.New("slot conflict")
)

// SlotConflictError carries the first existing booking the proposed range
// collided with, in the iteration order supplied by the caller.
type SlotConflictError struct {
	Existing Booking
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("slot conflict with booking %s (slots %d-%d)",
		e.Existing.ID(), e.Existing.StartIndex(), e.Existing.EndIndex())
}

func (e *SlotConflictError) Is(target error) bool {
	return target == ErrSlotConflict
}

// Input is a proposed booking as it arrives at the validation boundary.
// Slot indices are pointers so that an absent field is distinguishable from
// slot zero.
type Input struct {
	Date         time.Time
	RoomID       RoomID
	StartIndex   *int
	EndIndex     *int
	CustomerName string
	Purpose      string
	BookedBy     string
}

// Validator applies the booking business rules against the slot grid and the
// current booking set for one (room, date). It is advisory only: the store
// remains the final arbiter of non-overlap under concurrent writers.
type Validator struct {
	grid schedule.Grid
}

func NewValidator(grid schedule.Grid) *Validator {
	return &Validator{grid: grid}
}

// Validate checks the proposed booking in a fixed order, short-circuiting on
// the first failure so rejections are deterministic and user-legible:
//
//  1. required fields present
//  2. range well-formed and within grid bounds
//  3. duration cap
//  4. no overlap with existing bookings for the same room and date
//
// existing must already be scoped to the proposal's (room, date); pass the
// booking's own id as excludeID when re-validating an edit so it does not
// conflict with itself. On success the returned booking is normalized
// (strings trimmed) and ready for persistence, with identity left to the
// store.
func (v *Validator) Validate(in Input, existing []Booking, excludeID uuid.UUID) (Booking, error) {
	name := strings.TrimSpace(in.CustomerName)

	if in.Date.IsZero() || in.StartIndex == nil || in.EndIndex == nil || name == "" || !in.RoomID.IsValid() {
		return Booking{}, ErrMissingFields
	}

	start, end := *in.StartIndex, *in.EndIndex
	if start > end || !schedule.WithinGrid(start, end, v.grid.SlotCount()) {
		return Booking{}, ErrInvalidRange
	}

	length, err := schedule.Length(start, end)
	if err != nil {
		return Booking{}, ErrInvalidRange
	}
	if length > schedule.MaxSlotsPerBooking {
		return Booking{}, ErrDurationExceeded
	}

	for _, b := range existing {
		if excludeID != uuid.Nil && b.ID() == excludeID {
			continue
		}
		if b.OverlapsRange(start, end) {
			return Booking{}, &SlotConflictError{Existing: b}
		}
	}

	return Booking{
		date:         in.Date,
		roomID:       in.RoomID,
		startIndex:   start,
		endIndex:     end,
		customerName: name,
		purpose:      strings.TrimSpace(in.Purpose),
		bookedBy:     in.BookedBy,
	}, nil
}
