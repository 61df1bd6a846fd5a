// Package schedule discretizes a business day into fixed-width time slots
// and provides the interval arithmetic bookings are validated against.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

const (
	// IntervalMinutes is the fixed slot width.
	IntervalMinutes = 15

	// MaxBookingMinutes caps a single booking's duration.
	MaxBookingMinutes = 120

	// MaxSlotsPerBooking is the same cap expressed in slots.
	MaxSlotsPerBooking = MaxBookingMinutes / IntervalMinutes

	// DateLayout is the calendar-day wire format.
	DateLayout = "2006-01-02"
)

var (
	ErrSlotOutOfRange = errors.New("slot out of range")
	ErrInvalidGrid    = errors.New("invalid grid bounds")
)

// TimeOfDay is a wall-clock time within (or at the exclusive end of) the
// business day. Hour may be 24 when the grid closes at midnight.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour%24, t.Minute)
}

// Grid maps slot indices to wall-clock times within business hours.
// It is a value object: built once at startup from configuration and shared
// read-only, never mutated.
type Grid struct {
	startHour int
	endHour   int
	loc       *time.Location
}

func NewGrid(startHour, endHour int, loc *time.Location) (Grid, error) {
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return Grid{}, ErrInvalidGrid
	}
	if loc == nil {
		loc = time.Local
	}
	return Grid{startHour: startHour, endHour: endHour, loc: loc}, nil
}

func (g Grid) StartHour() int { return g.startHour }
func (g Grid) EndHour() int   { return g.endHour }

// SlotCount is the number of bookable slots in one business day.
func (g Grid) SlotCount() int {
	return (g.endHour - g.startHour) * 60 / IntervalMinutes
}

// SlotToTime maps a slot index to the wall-clock time at which it begins.
func (g Grid) SlotToTime(index int) (TimeOfDay, error) {
	if index < 0 || index >= g.SlotCount() {
		return TimeOfDay{}, ErrSlotOutOfRange
	}
	total := g.startHour*60 + index*IntervalMinutes
	return TimeOfDay{Hour: total / 60, Minute: total % 60}, nil
}

// SlotEndTime maps a slot index to its exclusive upper boundary, i.e. the
// time at which the slot ends. For the last slot this is END_HOUR:00, which
// is hour 24 when the grid closes at midnight.
func (g Grid) SlotEndTime(index int) (TimeOfDay, error) {
	if index < 0 || index >= g.SlotCount() {
		return TimeOfDay{}, ErrSlotOutOfRange
	}
	total := g.startHour*60 + (index+1)*IntervalMinutes
	return TimeOfDay{Hour: total / 60, Minute: total % 60}, nil
}

// TimeToSlot maps a wall-clock time to the enclosing slot index. Times not
// aligned to the interval round down to the slot they fall inside; the grid
// never rejects a sub-slot time for read mapping, only booking-boundary
// validation does.
func (g Grid) TimeToSlot(hour, minute int) (int, error) {
	if minute < 0 || minute > 59 {
		return 0, ErrSlotOutOfRange
	}
	total := hour*60 + minute
	if total < g.startHour*60 || total >= g.endHour*60 {
		return 0, ErrSlotOutOfRange
	}
	return (total - g.startHour*60) / IntervalMinutes, nil
}

// LocalTimestamp builds a calendar timestamp on the given day without any
// timezone conversion. An hour >= 24 rolls over to the next calendar day,
// which is how a booking ending at the last slot's exclusive boundary is
// represented when the grid closes at midnight.
func (g Grid) LocalTimestamp(date time.Time, hour, minute int) time.Time {
	day := date
	if hour >= 24 {
		day = day.AddDate(0, 0, 1)
		hour -= 24
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, g.loc)
}

// SlotLabel renders a slot's start time as "HH:MM".
func (g Grid) SlotLabel(index int) (string, error) {
	t, err := g.SlotToTime(index)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

// RangeLabel renders an inclusive slot range for display. The upper label is
// the exclusive end boundary: [4,7] on an 8:00 grid reads "09:00 - 10:00".
func (g Grid) RangeLabel(startIndex, endIndex int) (string, error) {
	from, err := g.SlotToTime(startIndex)
	if err != nil {
		return "", err
	}
	to, err := g.SlotEndTime(endIndex)
	if err != nil {
		return "", err
	}
	return from.String() + " - " + to.String(), nil
}

// Location is the single business timezone all calendar days live in.
func (g Grid) Location() *time.Location {
	return g.loc
}

// ParseDate parses a "YYYY-MM-DD" calendar day in the business timezone.
func (g Grid) ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, g.loc)
}
