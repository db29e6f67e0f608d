// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package measure

import (
	"io"

	"github.com/ugorji/go/codec"
)

// Format indicates which serialization format is desired for a measurement
// crossing a structured persistence or transmission boundary.
type Format int

const (
	JSON Format = iota
	Msgpack
)

var (
	// handles contains the canonical codec.Handle for each supported format,
	// in order of the Format constants
	handles = []codec.Handle{
		&codec.JsonHandle{},
		&codec.MsgpackHandle{},
	}
)

// handle looks up the appropriate codec.Handle for this format constant.
// This method returns nil if the format value is invalid.
func (f Format) handle() codec.Handle {
	if f >= 0 && int(f) < len(handles) {
		return handles[f]
	}

	return nil
}

// Encode writes the measurement to the given writer as its exact nanosecond
// count in the desired format.
func (m Measurement) Encode(output io.Writer, f Format) error {
	h := f.handle()
	if h == nil {
		return ErrInvalidFormat
	}

	return codec.NewEncoder(output, h).Encode(int64(m))
}

// EncodeBytes works like Encode, except that it appends to a byte slice.
func (m Measurement) EncodeBytes(output *[]byte, f Format) error {
	h := f.handle()
	if h == nil {
		return ErrInvalidFormat
	}

	return codec.NewEncoderBytes(output, h).Encode(int64(m))
}

// Decode reads a measurement previously written by Encode.  Malformed input
// surfaces as the underlying codec error, while input denoting a negative
// elapsed time is rejected with ErrNegative.
func Decode(input io.Reader, f Format) (Measurement, error) {
	h := f.handle()
	if h == nil {
		return Zero, ErrInvalidFormat
	}

	var nanos int64
	if err := codec.NewDecoder(input, h).Decode(&nanos); err != nil {
		return Zero, err
	}

	if nanos < 0 {
		return Zero, ErrNegative
	}

	return Measurement(nanos), nil
}

// DecodeBytes works like Decode, except that it reads from a byte slice.
func DecodeBytes(input []byte, f Format) (Measurement, error) {
	h := f.handle()
	if h == nil {
		return Zero, ErrInvalidFormat
	}

	var nanos int64
	if err := codec.NewDecoderBytes(input, h).Decode(&nanos); err != nil {
		return Zero, err
	}

	if nanos < 0 {
		return Zero, ErrNegative
	}

	return Measurement(nanos), nil
}
