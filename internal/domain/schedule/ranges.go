package schedule

import "errors"

var ErrInvalidRange = errors.New("invalid slot range")

// Overlaps reports whether two inclusive slot ranges share at least one
// slot. Adjacent ranges (one ends at k, the next begins at k+1) do not
// overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart <= bEnd && bStart <= aEnd
}

// Length returns the number of slots an inclusive range covers. A booking
// must cover at least one slot, so a non-positive length is an error.
func Length(start, end int) (int, error) {
	n := end - start + 1
	if n <= 0 {
		return 0, ErrInvalidRange
	}
	return n, nil
}

// WithinGrid reports whether the inclusive range fits inside a grid of
// slotCount slots.
func WithinGrid(start, end, slotCount int) bool {
	return start >= 0 && end < slotCount
}
