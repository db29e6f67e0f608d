package measure

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON(t *testing.T) {
	testData := []struct {
		value    Measurement
		expected string
	}{
		{Zero, "0"},
		{Measurement(999), "999"},
		{FromDuration(1500 * time.Microsecond), "1500000"},
		{FromDuration(time.Second), "1000000000"},
		{FromDuration(3*time.Hour + 3*time.Minute), "10980000000000"},
	}

	for _, record := range testData {
		t.Run(record.expected, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			actual, err := json.Marshal(record.value)
			require.NoError(err)
			assert.Equal(record.expected, string(actual))
		})
	}
}

func TestUnmarshalJSON(t *testing.T) {
	testData := []struct {
		input    string
		expected Measurement
	}{
		{"0", Zero},
		{"999", Measurement(999)},
		{"10980000000000", FromDuration(3*time.Hour + 3*time.Minute)},
		{`"150ms"`, FromDuration(150 * time.Millisecond)},
		{`"1.5s"`, FromDuration(1500 * time.Millisecond)},
		{`"0s"`, Zero},
	}

	for _, record := range testData {
		t.Run(record.input, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			var actual Measurement
			require.NoError(json.Unmarshal([]byte(record.input), &actual))
			assert.Equal(record.expected, actual)
		})
	}
}

func TestUnmarshalJSONRejectsNegative(t *testing.T) {
	for _, input := range []string{"-1", `"-5s"`} {
		t.Run(input, func(t *testing.T) {
			assert := assert.New(t)

			var actual Measurement
			assert.Equal(ErrNegative, actual.UnmarshalJSON([]byte(input)))
			assert.Equal(Zero, actual)
		})
	}
}

func TestUnmarshalJSONMalformed(t *testing.T) {
	for _, input := range []string{"not a number", `"not a duration"`, "1.5.7"} {
		t.Run(input, func(t *testing.T) {
			assert := assert.New(t)

			var actual Measurement
			assert.Error(actual.UnmarshalJSON([]byte(input)))
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	for _, d := range sampleDurations {
		expected := FromDuration(d)

		data, err := json.Marshal(expected)
		require.NoError(err)

		var actual Measurement
		require.NoError(json.Unmarshal(data, &actual))
		assert.Equal(expected, actual, fmt.Sprintf("round trip failed for %s", expected))
	}
}
