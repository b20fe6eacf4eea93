package sensor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplayYieldsTraceInOrder(t *testing.T) {
	trace := "# recorded approach\n800\n\n750\n-1\n700\n"
	r := NewReplay(strings.NewReader(trace))

	assert.Equal(t, 800, r.Measure())
	assert.Equal(t, 750, r.Measure())
	assert.Equal(t, Invalid, r.Measure())
	assert.Equal(t, 700, r.Measure())
}

func TestReplayInvalidAfterExhaustion(t *testing.T) {
	r := NewReplay(strings.NewReader("500\n"))

	assert.Equal(t, 500, r.Measure())
	assert.Equal(t, Invalid, r.Measure())
	assert.Equal(t, Invalid, r.Measure())
}

func TestReplayBadLineIsDropout(t *testing.T) {
	r := NewReplay(strings.NewReader("not-a-number\n300\n"))

	assert.Equal(t, Invalid, r.Measure())
	assert.Equal(t, 300, r.Measure())
}
