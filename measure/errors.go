// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package measure

import "errors"

var (
	// ErrUnderflow is returned by Sub when the subtracted measurement exceeds the
	// receiver.  A negative elapsed time is semantically meaningless, so this case
	// is surfaced as an error rather than being clamped to zero.
	ErrUnderflow = errors.New("The subtracted measurement exceeds the measurement it is subtracted from")

	// ErrOverflow is returned by Add when the sum of two measurements exceeds the
	// representable range of elapsed time.
	ErrOverflow = errors.New("The sum of the measurements exceeds the representable elapsed time")

	// ErrNegative is returned by the decoding and parsing boundaries when the
	// input denotes a negative elapsed time.
	ErrNegative = errors.New("An elapsed time cannot be negative")

	// ErrInvalidFormat is returned when an unrecognized Format constant is used
	// with the codec functions.
	ErrInvalidFormat = errors.New("No codec handle is associated with that format")
)
