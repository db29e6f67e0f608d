// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package measure

import "time"

// Measurement represents a non-negative span of elapsed wall-clock time with
// nanosecond precision.  It is a defined type over time.Duration, so the
// ordinary comparison operators define the total order over measurements:
// two measurements with equal elapsed values are equal regardless of how
// they were produced.
//
// A Measurement is immutable once constructed.  Arithmetic methods return
// new values, and a Measurement may be freely copied and shared across
// goroutines without synchronization.
type Measurement time.Duration

// Zero is the measurement of an empty interval.  It is also the zero value
// of the Measurement type.
const Zero Measurement = 0

// FromDuration wraps an externally computed duration in a Measurement.  No
// validation or normalization is performed: measurements normally derive
// from the difference of two readings of a monotonic clock, which cannot be
// negative.  Supplying a negative duration is a defect at the call site.
func FromDuration(d time.Duration) Measurement {
	return Measurement(d)
}

// Duration returns the elapsed time as a time.Duration, for interop with
// scheduling and calendar code.
func (m Measurement) Duration() time.Duration {
	return time.Duration(m)
}

// Nanoseconds returns the exact elapsed nanosecond count.
func (m Measurement) Nanoseconds() int64 {
	return int64(m)
}

// Split decomposes the elapsed time into whole seconds and leftover nanoseconds.
func (m Measurement) Split() (secs, nanos int64) {
	return int64(m) / int64(time.Second), int64(m) % int64(time.Second)
}

// Add produces the measurement covering both operands' elapsed time.  If the
// sum exceeds the representable range, roughly 292 years, ErrOverflow is
// returned.
func (m Measurement) Add(o Measurement) (Measurement, error) {
	sum := m + o
	if sum < m {
		return Zero, ErrOverflow
	}

	return sum, nil
}

// Sub produces the measurement of the elapsed time by which m exceeds o.
// Subtracting a larger measurement from a smaller one returns ErrUnderflow.
func (m Measurement) Sub(o Measurement) (Measurement, error) {
	if o > m {
		return Zero, ErrUnderflow
	}

	return m - o, nil
}
