package sdmgo

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures SDM constructor behavior.
type Option func(*options)

// WithLogger configures the structured logger used for operation tracing.
// Passing nil keeps the no-op default.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Passing nil keeps the no-op default.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc != nil {
			o.metricsCollector = mc
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
