package measure

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

var measurementType = reflect.TypeOf(Zero)

// StringToMeasurementHookFunc returns a mapstructure decode hook that
// converts configuration values into Measurements using Parse semantics.
// It is the analog of mapstructure.StringToTimeDurationHookFunc for
// Measurement-typed fields.
func StringToMeasurementHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != measurementType || from == measurementType {
			return data, nil
		}

		return Parse(data)
	}
}

// Unmarshal populates target from a (possibly nil) Viper instance, honoring
// Measurement-typed fields in the target struct.
func Unmarshal(v *viper.Viper, target interface{}) error {
	if v == nil {
		return nil
	}

	return v.Unmarshal(target, viper.DecodeHook(StringToMeasurementHookFunc()))
}
