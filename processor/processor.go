// Package processor resets and prints named fields of arbitrary values.
//
// A call validates every requested name before touching anything, then resets the
// cleanup names to the defaults of their kinds and finally renders the output names,
// one line each, to the configured sink:
//
//	head := fixture.NewNode("some_key", 42, fixture.NewNode("irrelevant_key", 427, nil))
//	err := processor.Cleanup(head, []string{"value", "next"}, nil)
//
// Supported targets are structs (passed by pointer when anything is reset), maps with
// string keys and values implementing node.Object. Any other value declares no names.
package processor

import (
	"errors"
	"field-processor/node"
	"field-processor/options"
	"field-processor/render"
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	SetCleanup = "cleanup"
	SetOutput  = "output"
)

var (
	ErrInvalidArgument = node.ErrInvalidArgument
	ErrUnknownName     = node.ErrUnknownName
	ErrNilReference    = node.ErrNilReference
	ErrNotAddressable  = node.ErrNotAddressable
	ErrNilTarget       = node.ErrNilTarget
)

// Processor is immutable after New and may be shared between goroutines,
// provided they do not process the same target concurrently.
type Processor struct {
	opts *options.Options
}

// New creates a Processor.
func New(opts ...options.Option) *Processor {
	return &Processor{opts: options.Apply(opts...)}
}

// Cleanup is a shorthand for New(opts...).Cleanup.
func Cleanup(target any, cleanupNames, outputNames []string, opts ...options.Option) error {
	return New(opts...).Cleanup(target, cleanupNames, outputNames)
}

// Cleanup resets every field or key named in cleanupNames to its default and then writes
// the rendering of every field or key named in outputNames to the sink.
//
// When any name of either set is unknown, the returned error wraps ErrInvalidArgument
// and nothing is reset or written.
func (p *Processor) Cleanup(target any, cleanupNames, outputNames []string) error {
	t, err := node.New(target, p.opts.Match)
	if err != nil {
		return err
	}

	log := p.opts.Logger.WithFields(logrus.Fields{
		"target": t.Type(),
		"shape":  t.Shape().String(),
	})
	log.Debug("target classified")

	resets, err := p.resolve(t, SetCleanup, cleanupNames, log)
	if err != nil {
		return err
	}

	outputs, err := p.resolve(t, SetOutput, outputNames, log)
	if err != nil {
		return err
	}

	for _, f := range resets {
		if !f.CanReset() {
			log.WithField("name", f.Name).Debug("target is not addressable")
			return fmt.Errorf("%w: cannot reset %q on %s, pass a pointer", ErrNotAddressable, f.Name, t.Type())
		}
	}

	for _, f := range resets {
		if err := f.Reset(); err != nil {
			return fmt.Errorf("reset %q: %w", f.Name, err)
		}

		log.WithFields(logrus.Fields{"name": f.Name, "kind": f.Kind.String()}).Debug("field reset")
	}

	for _, f := range outputs {
		text := render.Value(f.Value(), f.Kind, p.opts.Render)
		if _, err := fmt.Fprintln(p.opts.Sink, text); err != nil {
			return fmt.Errorf("write %q: %w", f.Name, err)
		}

		log.WithField("name", f.Name).Debug("field rendered")
	}

	return nil
}

// Validate checks that target declares every name. It never modifies target.
func (p *Processor) Validate(target any, names []string) error {
	t, err := node.New(target, p.opts.Match)
	if err != nil {
		return err
	}

	_, err = p.resolve(t, "", names, p.opts.Logger)

	return err
}

// resolve resolves names in order, skipping duplicates, and stops at the first failure.
func (p *Processor) resolve(t node.Target, set string, names []string, log logrus.FieldLogger) ([]node.Field, error) {
	fields := make([]node.Field, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		f, err := t.Resolve(name)
		if err != nil {
			var unknown *node.UnknownNameError
			if errors.As(err, &unknown) {
				unknown.Set = set
			}

			log.WithError(err).WithFields(logrus.Fields{"name": name, "set": set}).Debug("name validation failed")

			return nil, err
		}

		fields = append(fields, f)
	}

	return fields, nil
}
