package service

import (
	"time"

	"cadastro/internal/core/domain"
	"cadastro/internal/core/port"
	tel "cadastro/internal/core/telemetry"
)

type Option func(*options)

type options struct {
	now       func() time.Time
	telemetry port.Telemetry
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func WithTelemetry(telemetry port.Telemetry) Option {
	return func(o *options) {
		if telemetry != nil {
			o.telemetry = telemetry
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		now:       domain.Now,
		telemetry: tel.NewNoOpProbe(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// finish closes span. A missing entity is an expected outcome and leaves the
// span ok.
func finish(span port.Span, err error) {
	if err != nil && !domain.IsNotFound(err) {
		span.RecordError(err)
		span.SetStatus("error", err.Error())
	} else {
		span.SetStatus("ok", "")
	}

	span.End()
}
