package sensor

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"sonarguard/internal/config"
)

// HCSR04 drives an HC-SR04 ultrasonic ranging module over two GPIO lines.
//
// Datasheet: https://cdn.sparkfun.com/datasheets/Sensors/Proximity/HCSR04.pdf
type HCSR04 struct {
	trigger gpio.PinIO
	echo    gpio.PinIO
}

// NewHCSR04 initializes the GPIO host and claims the named trigger and echo
// pins. Pin names are in the format expected by gpioreg.ByName (BCM numbers
// as strings on a Raspberry Pi).
func NewHCSR04(triggerName, echoName string) (*HCSR04, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("gpio host init: %w", err)
	}

	trigger := gpioreg.ByName(triggerName)
	if trigger == nil {
		return nil, fmt.Errorf("no GPIO trigger pin named %q", triggerName)
	}
	echo := gpioreg.ByName(echoName)
	if echo == nil {
		return nil, fmt.Errorf("no GPIO echo pin named %q", echoName)
	}

	if err := trigger.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("trigger pin %q: %w", triggerName, err)
	}
	if err := echo.In(gpio.PullDown, gpio.BothEdges); err != nil {
		return nil, fmt.Errorf("echo pin %q: %w", echoName, err)
	}

	return &HCSR04{trigger: trigger, echo: echo}, nil
}

// Measure performs one pulse-echo cycle. This blocks the caller for up to
// twice the echo timeout; it is the only blocking step in the control loop.
// No retries: a miss simply yields Invalid for this tick.
func (s *HCSR04) Measure() int {
	if err := s.echo.In(gpio.PullDown, gpio.RisingEdge); err != nil {
		return Invalid
	}

	// Settle low, then strobe the trigger.
	_ = s.trigger.Out(gpio.Low)
	time.Sleep(config.TriggerSettle)
	_ = s.trigger.Out(gpio.High)
	time.Sleep(config.TriggerPulse)
	_ = s.trigger.Out(gpio.Low)

	// Rising edge marks the start of the echo pulse.
	if !s.echo.WaitForEdge(config.EchoTimeout) {
		return Invalid
	}
	start := time.Now()

	if err := s.echo.In(gpio.PullDown, gpio.FallingEdge); err != nil {
		return Invalid
	}
	if !s.echo.WaitForEdge(config.EchoTimeout) {
		return Invalid
	}

	return Bounded(TimeToMillimeters(time.Since(start)), config.MaxDistanceMM)
}
