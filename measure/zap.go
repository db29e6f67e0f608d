package measure

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field produces a zap field rendering the measurement with its unit-scaled
// String form, suitable for direct inclusion in log lines.
func Field(key string, m Measurement) zap.Field {
	return zap.Stringer(key, m)
}

// MarshalLogObject lets a Measurement be logged as a structured zap object
// carrying both the exact nanosecond count and the unit-scaled rendering,
// for example via zap.Object("elapsed", m).
func (m Measurement) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt64("nanos", m.Nanoseconds())
	enc.AddString("elapsed", m.String())
	return nil
}
