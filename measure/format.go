// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package measure

import (
	"fmt"
	"strconv"
	"time"
)

const (
	nsPerMicro  = int64(time.Microsecond)
	nsPerMilli  = int64(time.Millisecond)
	nsPerSecond = int64(time.Second)
)

// String renders the measurement in the coarsest unit that keeps the
// displayed magnitude human-scale:
//
//	< 1000ns        integer nanoseconds, e.g. "999ns"
//	< 1000µs        microseconds with 3 fractional digits, e.g. "1.500µs"
//	< 1000ms        milliseconds with 3 fractional digits, e.g. "12.345ms"
//	otherwise       seconds with 3 fractional digits, e.g. "2.718s"
//
// Exact breakpoint values cross to the next unit.  The rendering uses only
// integer math and is deterministic and locale-independent, making it safe
// for log lines and test assertions.
func (m Measurement) String() string {
	ns := int64(m)

	switch {
	case ns < nsPerMicro:
		return strconv.FormatInt(ns, 10) + "ns"
	case ns < nsPerMilli:
		return fmt.Sprintf("%d.%03dµs", ns/nsPerMicro, ns%nsPerMicro)
	case ns < nsPerSecond:
		return fmt.Sprintf("%d.%03dms", ns/nsPerMilli, (ns%nsPerMilli)/nsPerMicro)
	default:
		return fmt.Sprintf("%d.%03ds", ns/nsPerSecond, (ns%nsPerSecond)/nsPerMilli)
	}
}
