package watering

import "time"

// timerFiredMsg is delivered when a machine timer elapses. owner ties the
// message to the scheduler that created it so a timer from a previous
// screen can never fire into a new one.
type timerFiredMsg struct {
	owner *teaScheduler
	id    int
}

// frameMsg drives the indicator while charging.
type frameMsg struct {
	owner *Screen
	gen   int
	at    time.Time
}
