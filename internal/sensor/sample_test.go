package sensor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeToMillimeters(t *testing.T) {
	assert.Equal(t, 0, TimeToMillimeters(0))

	// ~5.83 ms round trip is one meter away.
	assert.Equal(t, 1000, TimeToMillimeters(5831*time.Microsecond))

	// One microsecond rounds to zero.
	assert.Equal(t, 0, TimeToMillimeters(time.Microsecond))
}

func TestBounded(t *testing.T) {
	assert.Equal(t, 0, Bounded(0, 6000))
	assert.Equal(t, 6000, Bounded(6000, 6000))
	assert.Equal(t, Invalid, Bounded(6001, 6000))
	assert.Equal(t, Invalid, Bounded(-5, 6000))
}
