// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package measure

import (
	"strconv"
	"time"
)

// MarshalJSON encodes the measurement as its exact nanosecond count, a JSON
// number, so that encoding and then decoding reproduces the original elapsed
// value with no precision loss.
func (m Measurement) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(m), 10)), nil
}

// UnmarshalJSON permits either: (1) strings of the form accepted by
// time.ParseDuration(), or (2) numeric values, which are assumed to be
// nanoseconds.  Input denoting a negative elapsed time is rejected with
// ErrNegative rather than producing a partial value.
func (m *Measurement) UnmarshalJSON(data []byte) error {
	if data[0] == '"' {
		unwrappedDuration, err := time.ParseDuration(string(data[1 : len(data)-1]))
		if err != nil {
			return err
		}

		if unwrappedDuration < 0 {
			return ErrNegative
		}

		*m = Measurement(unwrappedDuration)
	} else {
		nanos, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return err
		}

		if nanos < 0 {
			return ErrNegative
		}

		*m = Measurement(nanos)
	}

	return nil
}
