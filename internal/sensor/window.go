package sensor

import (
	"sort"
	"sync"
)

// Window is a fixed-size circular buffer of recent distance samples. Slots
// start out Invalid, so early smoothed values are drawn from however many
// real samples have arrived. The control loop writes it while the dashboard
// reads it, so access is guarded.
type Window struct {
	mu  sync.RWMutex
	buf []int
	pos int
}

// NewWindow creates a window of the given capacity with every slot Invalid.
func NewWindow(capacity int) *Window {
	buf := make([]int, capacity)
	for i := range buf {
		buf[i] = Invalid
	}
	return &Window{buf: buf}
}

// Push overwrites the oldest slot with the new sample (valid or Invalid) and
// returns the smoothed distance over the current window:
//
//	0 valid slots → Invalid
//	1 valid slot  → that value
//	2 valid slots → truncating integer mean
//	3+            → statistical median
//
// A single echo dropout amid valid readings is absorbed rather than stalling
// the alarm on one bad sample.
func (w *Window) Push(mm int) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.buf[w.pos] = mm
	w.pos = (w.pos + 1) % len(w.buf)
	return w.smoothed()
}

func (w *Window) smoothed() int {
	valid := make([]int, 0, len(w.buf))
	for _, v := range w.buf {
		if v != Invalid {
			valid = append(valid, v)
		}
	}

	switch len(valid) {
	case 0:
		return Invalid
	case 1:
		return valid[0]
	case 2:
		return (valid[0] + valid[1]) / 2
	default:
		sort.Ints(valid)
		return valid[len(valid)/2]
	}
}

// Values returns the window contents in chronological order, oldest first.
// Invalid slots are included.
func (w *Window) Values() []int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]int, 0, len(w.buf))
	result = append(result, w.buf[w.pos:]...)
	result = append(result, w.buf[:w.pos]...)
	return result
}

// Len returns the window capacity.
func (w *Window) Len() int {
	return len(w.buf)
}
