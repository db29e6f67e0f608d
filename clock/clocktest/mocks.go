package clocktest

import (
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/measure/clock"
)

// Mock is a stretchr mock for a clock.  In addition to implementing clock.Interface and supplying
// mock behavior, other methods that make mocking a bit easier are supplied.
type Mock struct {
	mock.Mock
}

var _ clock.Interface = (*Mock)(nil)

func (m *Mock) Now() time.Time {
	return m.Called().Get(0).(time.Time)
}

func (m *Mock) OnNow(v time.Time) *mock.Call {
	return m.On("Now").Return(v)
}

func (m *Mock) Sleep(d time.Duration) {
	m.Called(d)
}

func (m *Mock) OnSleep(d time.Duration) *mock.Call {
	return m.On("Sleep", d)
}
