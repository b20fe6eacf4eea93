package config

import "time"

const (
	// Attention zone boundaries
	FarDistanceMM  = 1500 // Alarm zone outer boundary (mm)
	NearDistanceMM = 150  // Cadence saturates at or inside this boundary (mm)

	// Ultrasonic sensing
	MaxDistanceMM = 6000                  // Readings beyond this are spurious echoes
	EchoTimeout   = 38 * time.Millisecond // Bounded echo wait (~6.5m round trip)
	TriggerPulse  = 10 * time.Microsecond // HC-SR04 trigger pulse width
	TriggerSettle = 2 * time.Microsecond  // Low-level settle before the pulse
	WindowSize    = 3                     // Smoothing window (samples)

	// Alarm cadence
	MaxPeriodMS = 1000 // Slowest blink/beep cycle (ms), at the FAR boundary
	MinPeriodMS = 100  // Fastest cycle (ms), at or inside NEAR
	OnFraction  = 0.30 // Fraction of each cycle spent in the ON phase
	ToneMinHz   = 220  // Buzzer pitch at the FAR boundary
	ToneMaxHz   = 1760 // Buzzer pitch at or inside NEAR

	// Control loop
	TickInterval = 30 * time.Millisecond // Inter-tick delay (reporting cadence)

	// Dashboard
	TargetFPS  = 30 // Target frames per second in TUI mode
	LogLines   = 64 // Status lines kept for the dashboard log panel
	SparkSlots = 60 // Distance history kept for the sparkline

	// App
	AppName    = "SONARGUARD"
	AppVersion = "1.0"
)
