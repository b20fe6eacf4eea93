package sensor

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Replay feeds distances from a recorded trace, one reading per line: a whole
// number of millimeters, or -1 for a dropout. Blank lines and lines starting
// with '#' are skipped. After the trace is exhausted every reading is
// Invalid, which drives the alarm to READY.
type Replay struct {
	scanner *bufio.Scanner
	done    bool
}

// NewReplay creates a rangefinder replaying readings from r.
func NewReplay(r io.Reader) *Replay {
	return &Replay{scanner: bufio.NewScanner(r)}
}

// Measure returns the next reading in the trace, or Invalid once exhausted.
// Unparseable lines count as dropouts.
func (p *Replay) Measure() int {
	if p.done {
		return Invalid
	}

	for p.scanner.Scan() {
		line := strings.TrimSpace(p.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		mm, err := strconv.Atoi(line)
		if err != nil || mm < 0 {
			return Invalid
		}
		return mm
	}

	p.done = true
	return Invalid
}
