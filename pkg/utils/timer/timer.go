// Package timer provides elapsed-time tracking for CLI activities.
//
// A Timer measures the total runtime of a command and the runtime of the
// current stage. Stages are advanced with [Timer.NewStage], typically at the
// start of each user-visible activity.
package timer

import "time"

// Timer tracks total and per-stage elapsed time.
type Timer interface {
	// Start begins (or restarts) the timer.
	Start()
	// NewStage marks the beginning of a new stage.
	NewStage()
	// GetTiming returns the total elapsed time and the current stage's elapsed time.
	GetTiming() (total, stage time.Duration)
}

// New creates a started Timer.
func New() Timer {
	t := &clockTimer{now: time.Now}
	t.Start()

	return t
}

// clockTimer implements Timer using the wall clock.
type clockTimer struct {
	now        func() time.Time
	startTime  time.Time
	stageStart time.Time
}

func (t *clockTimer) Start() {
	t.startTime = t.now()
	t.stageStart = t.startTime
}

func (t *clockTimer) NewStage() {
	t.stageStart = t.now()
}

func (t *clockTimer) GetTiming() (time.Duration, time.Duration) {
	current := t.now()

	return current.Sub(t.startTime).Round(time.Millisecond),
		current.Sub(t.stageStart).Round(time.Millisecond)
}
