package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowStartsInvalid(t *testing.T) {
	w := NewWindow(3)
	assert.Equal(t, []int{Invalid, Invalid, Invalid}, w.Values())
}

func TestWindowSingleValid(t *testing.T) {
	w := NewWindow(3)
	assert.Equal(t, 800, w.Push(800))
}

func TestWindowAllInvalid(t *testing.T) {
	w := NewWindow(3)
	assert.Equal(t, Invalid, w.Push(Invalid))
	assert.Equal(t, Invalid, w.Push(Invalid))
	assert.Equal(t, Invalid, w.Push(Invalid))
}

func TestWindowTwoValidTruncatingMean(t *testing.T) {
	w := NewWindow(3)
	w.Push(5)
	assert.Equal(t, 6, w.Push(8)) // (5+8)/2 truncates
}

func TestWindowDropoutAbsorbed(t *testing.T) {
	w := NewWindow(3)
	w.Push(800)
	w.Push(Invalid)
	assert.Equal(t, 810, w.Push(820))
}

func TestWindowRunningMedian(t *testing.T) {
	w := NewWindow(3)
	w.Push(5)
	w.Push(3)
	assert.Equal(t, 5, w.Push(9), "median of {5,3,9}")
	assert.Equal(t, 7, w.Push(7), "oldest evicted, median of {3,9,7}")
	assert.Equal(t, 7, w.Push(2), "median of {9,7,2}")
}

func TestWindowMedianNotMean(t *testing.T) {
	w := NewWindow(3)
	w.Push(100)
	w.Push(100)
	// A single outlier must not drag the smoothed value.
	assert.Equal(t, 100, w.Push(4000))
}

func TestWindowValuesChronological(t *testing.T) {
	w := NewWindow(3)
	w.Push(1)
	w.Push(2)
	assert.Equal(t, []int{Invalid, 1, 2}, w.Values())

	w.Push(3)
	w.Push(4)
	assert.Equal(t, []int{2, 3, 4}, w.Values())
}
