package app

import (
	"time"

	"sonarguard/internal/alarm"
)

// TickMsg triggers a frame update for animation.
type TickMsg time.Time

// StatusMsg delivers one control-loop tick's status to the dashboard.
type StatusMsg alarm.Status
