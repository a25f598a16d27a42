// Package main provides the CLI entrypoint for field-processor.
//
// field-processor loads a JSON or YAML document as a key/value mapping, resets the keys
// named by -cleanup, prints the values of the keys named by -output, one per line, and
// with -emit writes the resulting document back to stdout.
//
//	field-processor -in config.yaml -cleanup password,token -output user -emit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"field-processor/options"
	"field-processor/processor"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var ErrUnknownFormat = errors.New("unknown document format")

type config struct {
	in      string
	format  string
	cleanup []string
	output  []string
	emit    bool
	dump    bool
	verbose bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)

	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return exitUsage
	}

	if cfg.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	data, err := readInput(cfg.in, stdin)
	if err != nil {
		logger.WithError(err).Error("read input")
		return exitFailure
	}

	doc, err := decode(data, cfg.format)
	if err != nil {
		logger.WithError(err).WithField("format", cfg.format).Error("decode document")
		return exitFailure
	}

	render := options.RenderPlain
	if cfg.dump {
		render = options.RenderDump
	}

	p := processor.New(
		options.WithSink(stdout),
		options.WithLogger(logger),
		options.WithRender(render),
	)

	if err := p.Cleanup(doc, cfg.cleanup, cfg.output); err != nil {
		logger.WithError(err).Error("process document")
		if errors.Is(err, processor.ErrInvalidArgument) {
			return exitUsage
		}
		return exitFailure
	}

	if !cfg.emit {
		return exitOK
	}

	out, err := encode(doc, cfg.format)
	if err != nil {
		logger.WithError(err).Error("encode document")
		return exitFailure
	}

	if _, err := stdout.Write(out); err != nil {
		logger.WithError(err).Error("write document")
		return exitFailure
	}

	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var (
		cfg             config
		cleanup, output string
	)

	fs := flag.NewFlagSet("field-processor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.in, "in", "-", "input document, - for stdin")
	fs.StringVar(&cfg.format, "format", "", "document format: json or yaml (default: from -in extension, else json)")
	fs.StringVar(&cleanup, "cleanup", "", "comma separated keys to reset")
	fs.StringVar(&output, "output", "", "comma separated keys to print")
	fs.BoolVar(&cfg.emit, "emit", false, "write the processed document to stdout")
	fs.BoolVar(&cfg.dump, "dump", false, "print values as detailed dumps")
	fs.BoolVar(&cfg.verbose, "v", false, "log every step to stderr")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return config{}, err
	}

	cfg.cleanup = splitNames(cleanup)
	cfg.output = splitNames(output)

	if cfg.format == "" {
		cfg.format = formatFromPath(cfg.in)
	}

	if cfg.format != formatJSON && cfg.format != formatYAML {
		err := fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.format)
		fmt.Fprintln(stderr, err)
		return config{}, err
	}

	return cfg, nil
}

func splitNames(list string) []string {
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	return names
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

func decode(data []byte, format string) (map[string]any, error) {
	doc := map[string]any{}

	var err error
	switch format {
	case formatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}

	if err != nil {
		return nil, err
	}

	return doc, nil
}

func encode(doc map[string]any, format string) ([]byte, error) {
	switch format {
	case formatYAML:
		return yaml.Marshal(doc)
	default:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	}
}
