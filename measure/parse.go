package measure

import (
	"github.com/spf13/cast"
)

// Parse coerces an arbitrary value into a Measurement.  Strings are parsed
// with time.ParseDuration syntax, while numeric values are interpreted as
// nanosecond counts.  Values denoting a negative elapsed time are rejected
// with ErrNegative.
func Parse(value interface{}) (Measurement, error) {
	if m, ok := value.(Measurement); ok {
		return m, nil
	}

	d, err := cast.ToDurationE(value)
	if err != nil {
		return Zero, err
	}

	if d < 0 {
		return Zero, ErrNegative
	}

	return FromDuration(d), nil
}
