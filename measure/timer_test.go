package measure

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xmidt-org/measure/clock/clocktest"
)

var testStart = time.Date(2023, 6, 14, 9, 30, 0, 0, time.UTC)

func TestTimerElapsed(t *testing.T) {
	var (
		assert = assert.New(t)
		c      = new(clocktest.Mock)
	)

	c.OnNow(testStart).Once()
	c.OnNow(testStart.Add(100 * time.Millisecond)).Once()

	timer := NewTimer(WithClock(c))
	assert.Equal(FromDuration(100*time.Millisecond), timer.Elapsed())
	c.AssertExpectations(t)
}

func TestTimerReset(t *testing.T) {
	var (
		assert = assert.New(t)
		c      = new(clocktest.Mock)
	)

	c.OnNow(testStart).Once()
	c.OnNow(testStart.Add(time.Second)).Once()
	c.OnNow(testStart.Add(3 * time.Second)).Once()

	timer := NewTimer(WithClock(c))
	timer.Reset()
	assert.Equal(FromDuration(2*time.Second), timer.Elapsed())
	c.AssertExpectations(t)
}

func TestWithClockNil(t *testing.T) {
	assert := assert.New(t)

	timer := NewTimer(WithClock(nil))
	assert.True(timer.Elapsed() >= Zero)
}

func TestTime(t *testing.T) {
	var (
		assert = assert.New(t)
		ran    = false
	)

	const pause = 10 * time.Millisecond
	m := Time(func() {
		ran = true
		time.Sleep(pause)
	})

	assert.True(ran)
	assert.True(m.Duration() >= pause)
	assert.True(strings.HasSuffix(m.String(), "ms"))
}

func TestTimeValue(t *testing.T) {
	var (
		assert = assert.New(t)
		c      = new(clocktest.Mock)
	)

	c.OnNow(testStart).Once()
	c.OnNow(testStart.Add(time.Second)).Once()

	result, m := TimeValue(func() int { return 42 }, WithClock(c))
	assert.Equal(42, result)
	assert.Equal(FromDuration(time.Second), m)
	c.AssertExpectations(t)
}

func TestTimeErr(t *testing.T) {
	var (
		assert = assert.New(t)
		c      = new(clocktest.Mock)
	)

	c.OnNow(testStart).Once()
	c.OnNow(testStart.Add(250 * time.Millisecond)).Once()

	result, m, err := TimeErr(func() (string, error) { return "done", nil }, WithClock(c))
	assert.NoError(err)
	assert.Equal("done", result)
	assert.Equal(FromDuration(250*time.Millisecond), m)
	c.AssertExpectations(t)
}

func TestTimeErrFailure(t *testing.T) {
	assert := assert.New(t)

	expectedErr := errors.New("expected")
	result, m, err := TimeErr(func() (string, error) { return "", expectedErr })

	// the computation's failure passes through unchanged, and no
	// measurement is produced
	assert.Equal(expectedErr, err)
	assert.Equal("", result)
	assert.Equal(Zero, m)
}

func TestTimePanic(t *testing.T) {
	assert := assert.New(t)

	assert.Panics(func() {
		Time(func() { panic("propagated") })
	})
}
