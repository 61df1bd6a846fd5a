package booking

import (
	"sort"
	"time"

	"roombook/internal/domain/schedule"
)

// BucketByDay folds a flat booking list into day-keyed buckets. A day holds
// a list, not a single value: one room may carry several non-overlapping
// bookings on the same date. Buckets are sorted by start index for stable
// rendering. The input is never mutated.
func BucketByDay(bs []Public) map[string][]Public {
	buckets := make(map[string][]Public)
	for _, b := range bs {
		key := b.Date.Format(schedule.DateLayout)
		buckets[key] = append(buckets[key], b)
	}
	for _, day := range buckets {
		sort.SliceStable(day, func(i, j int) bool {
			if day[i].StartIndex != day[j].StartIndex {
				return day[i].StartIndex < day[j].StartIndex
			}
			return day[i].RoomID < day[j].RoomID
		})
	}
	return buckets
}

// Occupancy is a (dayIndex, slotIndex) lookup over a visible window of days,
// used to render the day and week grids.
type Occupancy struct {
	days  []string
	slots int
	cells map[int]map[int]Public
}

// NewOccupancy projects bookings onto the visible grid window. A booking
// whose range partially falls outside the window is clamped to the visible
// boundary for display; the underlying record is untouched. When bookings in
// different rooms share a cell, the first one in input order wins.
func NewOccupancy(days []time.Time, grid schedule.Grid, bs []Public) *Occupancy {
	o := &Occupancy{
		days:  make([]string, len(days)),
		slots: grid.SlotCount(),
		cells: make(map[int]map[int]Public),
	}
	dayIndex := make(map[string]int, len(days))
	for i, d := range days {
		key := d.Format(schedule.DateLayout)
		o.days[i] = key
		dayIndex[key] = i
	}

	for _, b := range bs {
		di, ok := dayIndex[b.Date.Format(schedule.DateLayout)]
		if !ok {
			continue
		}
		start, end := clampRange(b.StartIndex, b.EndIndex, o.slots)
		if start > end {
			continue
		}
		row := o.cells[di]
		if row == nil {
			row = make(map[int]Public)
			o.cells[di] = row
		}
		for i := start; i <= end; i++ {
			if _, taken := row[i]; !taken {
				row[i] = b
			}
		}
	}
	return o
}

// At returns the booking occupying the cell, if any.
func (o *Occupancy) At(dayIndex, slotIndex int) (Public, bool) {
	if dayIndex < 0 || dayIndex >= len(o.days) || slotIndex < 0 || slotIndex >= o.slots {
		return Public{}, false
	}
	b, ok := o.cells[dayIndex][slotIndex]
	return b, ok
}

// Days returns the window's day keys in order.
func (o *Occupancy) Days() []string {
	return o.days
}

// SlotCount returns the number of slot rows in the grid window.
func (o *Occupancy) SlotCount() int {
	return o.slots
}

func clampRange(start, end, slotCount int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > slotCount-1 {
		end = slotCount - 1
	}
	return start, end
}

// WeekStart normalizes a date to the Monday of its week.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -offset)
}

// DaysFrom enumerates n consecutive calendar days starting at start.
func DaysFrom(start time.Time, n int) []time.Time {
	days := make([]time.Time, n)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// MonthRange returns the first day of the month and the number of days in it.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, int) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return first, first.AddDate(0, 1, -1).Day()
}
