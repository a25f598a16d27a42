package options

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Option configures a processor.
type Option func(*Options)

// Options holds all configuration of a processor.
type Options struct {
	// Sink receives one rendering per requested output name.
	Sink io.Writer
	// Logger receives debug traces of classification, resets and renderings.
	Logger logrus.FieldLogger
	// Match selects name resolution strategies for struct targets.
	Match MatchEnum
	// Render selects the output renderer.
	Render RenderEnum
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		Sink:   os.Stdout,
		Logger: logrus.StandardLogger(),
		Match:  MatchAll,
		Render: RenderPlain,
	}
}

// Apply builds Options from defaults and the given options.
func Apply(opts ...Option) *Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return o
}

// WithSink sets the output sink. A nil writer discards output.
func WithSink(w io.Writer) Option {
	return func(o *Options) {
		if w == nil {
			w = io.Discard
		}
		o.Sink = w
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Options) {
		if logger == nil {
			discard := logrus.New()
			discard.SetOutput(io.Discard)
			logger = discard
		}
		o.Logger = logger
	}
}

// WithMatch sets the name resolution strategies.
func WithMatch(match MatchEnum) Option {
	return func(o *Options) {
		o.Match = match
	}
}

// WithRender sets the output renderer.
func WithRender(render RenderEnum) Option {
	return func(o *Options) {
		o.Render = render
	}
}
