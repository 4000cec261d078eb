package bibgo

import (
	"log/slog"
	"time"

	"github.com/hupe1980/bibgo/codec"
	"github.com/hupe1980/bibgo/resource"
)

type options struct {
	codec            codec.Codec
	metricsCollector MetricsCollector
	logger           *Logger
	clock            func() time.Time
	identifierValid  func(string) bool
	resources        *resource.Controller
	rebuildWorkers   int
}

// Option configures a Catalog.
type Option func(*options)

// WithCodec sets the codec used for Export, Import and archive payloads.
// The default is codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithMetricsCollector sets the metrics collector for operational metrics.
// The default is NoopMetricsCollector.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger sets the logger for structured logging.
// The default discards all log output.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel enables text logging to stderr at the given level.
// Shorthand for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithClock sets the time source used to stamp LastUpdated on writes.
// Tests use this to get deterministic timestamps. The default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithIdentifierValidator sets an extra validity check applied to record
// identifiers on every write, for example biblio.ISBNValidator. The default
// accepts any non-empty identifier.
func WithIdentifierValidator(isValid func(string) bool) Option {
	return func(o *options) {
		o.identifierValid = isValid
	}
}

// WithResourceController sets the resource controller that gates index
// rebuilds behind the background slot. A nil controller (the default)
// disables gating.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

// WithRebuildWorkers sets the number of workers used to tokenize records
// during an index rebuild. Values below one select runtime.GOMAXPROCS(0).
func WithRebuildWorkers(n int) Option {
	return func(o *options) {
		o.rebuildWorkers = n
	}
}

func applyOptions(optFns ...Option) options {
	opts := options{
		codec:            codec.Default,
		metricsCollector: NoopMetricsCollector{},
		clock:            time.Now,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.logger == nil {
		opts.logger = NoopLogger()
	}

	return opts
}
