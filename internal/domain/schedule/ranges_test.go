//go:build unit

package schedule_test

import (
	"testing"

	"roombook/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{name: "identical ranges", aStart: 0, aEnd: 3, bStart: 0, bEnd: 3, want: true},
		{name: "single shared slot", aStart: 0, aEnd: 4, bStart: 4, bEnd: 7, want: true},
		{name: "adjacent ranges do not overlap", aStart: 0, aEnd: 3, bStart: 4, bEnd: 7, want: false},
		{name: "containment", aStart: 2, aEnd: 10, bStart: 4, bEnd: 6, want: true},
		{name: "disjoint with gap", aStart: 0, aEnd: 2, bStart: 8, bEnd: 10, want: false},
		{name: "single-slot ranges equal", aStart: 5, aEnd: 5, bStart: 5, bEnd: 5, want: true},
		{name: "single-slot ranges adjacent", aStart: 5, aEnd: 5, bStart: 6, bEnd: 6, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schedule.Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, schedule.Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestLength(t *testing.T) {
	n, err := schedule.Length(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = schedule.Length(4, 7)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = schedule.Length(7, 4)
	assert.ErrorIs(t, err, schedule.ErrInvalidRange)
}

func TestWithinGrid(t *testing.T) {
	assert.True(t, schedule.WithinGrid(0, 63, 64))
	assert.True(t, schedule.WithinGrid(0, 0, 64))
	assert.False(t, schedule.WithinGrid(-1, 3, 64))
	assert.False(t, schedule.WithinGrid(0, 64, 64))
}
