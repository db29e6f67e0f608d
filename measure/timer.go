// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package measure

import (
	"time"

	"github.com/xmidt-org/measure/clock"
)

// Timer captures a start instant and produces measurements of the time
// elapsed since then.  The two clock reads always bracket exactly the
// intended region, eliminating manual before/after timestamp bookkeeping
// at each call site.
type Timer struct {
	source clock.Interface
	start  time.Time
}

// TimerOption represents a configurable option for creating a timer
type TimerOption func(*Timer)

// WithClock establishes the time source sampled by the timer.  If a nil
// clock is supplied, the system clock is used.
func WithClock(c clock.Interface) TimerOption {
	return func(t *Timer) {
		if c != nil {
			t.source = c
		} else {
			t.source = clock.System()
		}
	}
}

// NewTimer creates a timer and starts it immediately.
func NewTimer(o ...TimerOption) *Timer {
	t := &Timer{
		source: clock.System(),
	}

	for _, f := range o {
		f(t)
	}

	t.start = t.source.Now()
	return t
}

// Reset restarts the timer at the current instant.
func (t *Timer) Reset() {
	t.start = t.source.Now()
}

// Elapsed returns the measurement of the time elapsed since the timer was
// started or last reset.  The timer keeps running, so successive calls
// return successively larger measurements.
func (t *Timer) Elapsed() Measurement {
	return FromDuration(t.source.Now().Sub(t.start))
}

// Time executes fn exactly once in the calling goroutine, returning the
// wall-clock time it took.  The only side effects beyond fn's own are the
// two clock reads bracketing the call.  A panic raised by fn propagates
// unchanged.
func Time(fn func(), o ...TimerOption) Measurement {
	t := NewTimer(o...)
	fn()
	return t.Elapsed()
}

// TimeValue executes fn exactly once, returning its result together with
// the wall-clock time the computation took.
func TimeValue[T any](fn func() T, o ...TimerOption) (T, Measurement) {
	t := NewTimer(o...)
	result := fn()
	return result, t.Elapsed()
}

// TimeErr executes fn exactly once.  If fn succeeds, its result is returned
// together with the computation's measurement.  If fn fails, the error
// propagates unchanged and the Zero measurement is returned: timing is only
// meaningful for a computation that actually completed.
func TimeErr[T any](fn func() (T, error), o ...TimerOption) (T, Measurement, error) {
	t := NewTimer(o...)

	result, err := fn()
	if err != nil {
		return result, Zero, err
	}

	return result, t.Elapsed(), nil
}
