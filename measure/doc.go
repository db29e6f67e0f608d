// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package measure provides a precise, ergonomic way to measure the wall-clock
execution time of an arbitrary unit of work and to carry that measurement as
a first-class comparable, displayable, and serializable value.

The central type is Measurement, a non-negative elapsed span of time with
nanosecond precision.  Measurements are produced by the timing harness:

	result, elapsed := measure.TimeValue(func() []byte {
		data, _ := os.ReadFile("go.sum")
		return data
	})

	fmt.Printf("read %d bytes in %s\n", len(result), elapsed)

Measurements support addition and subtraction, compare with the ordinary
relational operators, render themselves with an appropriate time unit, and
round-trip through JSON and msgpack as exact nanosecond counts.
*/
package measure
