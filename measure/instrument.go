package measure

import (
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Observer represents a metric sink for elapsed-time observations.  Go-kit's
// metrics.Histogram and metrics.Summary, as well as several prometheus
// types, implement this interface.
type Observer interface {
	Observe(float64)
}

// ReporterOption represents a configurable option for building a Reporter
type ReporterOption func(*Reporter)

// WithObserver establishes the metric that receives each reported
// measurement, as a count of seconds.  If a nil observer is supplied,
// observations are discarded.
func WithObserver(o Observer) ReporterOption {
	return func(r *Reporter) {
		if o != nil {
			r.observer = o
		} else {
			r.observer = discard.NewHistogram()
		}
	}
}

// WithLogger establishes the logger that receives a debug entry for each
// reported measurement.  If a nil logger is supplied, entries are discarded.
func WithLogger(l log.Logger) ReporterOption {
	return func(r *Reporter) {
		if l != nil {
			r.logger = l
		} else {
			r.logger = log.NewNopLogger()
		}
	}
}

// WithName sets the name under which measurements are reported.
func WithName(name string) ReporterOption {
	return func(r *Reporter) {
		r.name = name
	}
}

// Reporter publishes measurements to a metric sink and a logger.  It holds
// no mutable state of its own and is safe for concurrent use whenever its
// configured observer and logger are.
type Reporter struct {
	observer Observer
	logger   log.Logger
	name     string
}

// NewReporter constructs a Reporter from a set of options.  With no options,
// all reported measurements are discarded.
func NewReporter(o ...ReporterOption) *Reporter {
	r := &Reporter{
		observer: discard.NewHistogram(),
		logger:   log.NewNopLogger(),
		name:     "measurement",
	}

	for _, f := range o {
		f(r)
	}

	return r
}

// Report publishes a single measurement.
func (r *Reporter) Report(m Measurement) {
	r.observer.Observe(m.Duration().Seconds())
	level.Debug(r.logger).Log("name", r.name, "elapsed", m)
}

// Time measures fn as Time does, then reports the resulting measurement
// before returning it.
func (r *Reporter) Time(fn func(), o ...TimerOption) Measurement {
	m := Time(fn, o...)
	r.Report(m)
	return m
}
