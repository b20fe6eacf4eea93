package alarm

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
)

// GPIOIndicator drives an LED on a GPIO pin.
type GPIOIndicator struct {
	pin gpio.PinIO
}

// NewGPIOIndicator claims the named pin and drives it low.
func NewGPIOIndicator(name string) (*GPIOIndicator, error) {
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("no GPIO pin named %q", name)
	}
	if err := pin.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("indicator pin %q: %w", name, err)
	}
	return &GPIOIndicator{pin: pin}, nil
}

// Set switches the LED. Write failures after a successful claim are not
// actionable mid-cycle and are dropped.
func (i *GPIOIndicator) Set(on bool) {
	_ = i.pin.Out(gpio.Level(on))
}

// PWMTone drives a piezo buzzer with a 50% duty square wave.
type PWMTone struct {
	pin gpio.PinIO
}

// NewPWMTone claims the named pin for PWM output.
func NewPWMTone(name string) (*PWMTone, error) {
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("no GPIO pin named %q", name)
	}
	if err := pin.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("buzzer pin %q: %w", name, err)
	}
	return &PWMTone{pin: pin}, nil
}

// Start sounds the buzzer at the given pitch.
func (t *PWMTone) Start(hz int) {
	_ = t.pin.PWM(gpio.DutyHalf, physic.Frequency(hz)*physic.Hertz)
}

// Stop silences the buzzer.
func (t *PWMTone) Stop() {
	_ = t.pin.Halt()
	_ = t.pin.Out(gpio.Low)
}
