// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/Cuauhtlidp/emd-optimizer/report"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	ExitSuccess           = 0
	ExitComputeFailure    = 1
	ExitInvalidInvocation = 2
	ExitConfigError       = 3
	ExitInputError        = 4
	ExitInternalError     = 5
)

// Config is the YAML configuration file layout. Explicit flags override it.
type Config struct {
	Input         string  `yaml:"input"`
	Format        string  `yaml:"format"`
	LogLevel      string  `yaml:"log_level"`
	LogJSON       bool    `yaml:"log_json"`
	Header        *bool   `yaml:"header"`
	MaxIterations int     `yaml:"max_iterations"`
	Epsilon       float64 `yaml:"epsilon"`
}

// Invocation is the canonical description of one run.
type Invocation struct {
	InputPath     string // "-" reads stdin
	Format        report.Format
	LogLevel      zerolog.Level
	LogJSON       bool
	Header        bool
	MaxIterations int // 0 ⇒ solver default
	Epsilon       float64
}

// InvocationError carries the exit code for argument and config problems.
// A help request is reported as an InvocationError with ExitSuccess whose
// Message is the flag usage.
type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

func configErrorf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitConfigError, Message: fmt.Sprintf(format, args...)}
}

// LoadConfig reads a YAML config file. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, configErrorf("open config: %v", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, configErrorf("parse config %s: %v", path, err)
	}

	return cfg, nil
}

// ParseInvocation parses CLI flags, merging an optional -config file
// underneath them, into an Invocation.
func ParseInvocation(args []string) (Invocation, error) {
	fs := flag.NewFlagSet("emd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		configPath string
		input      string
		format     string
		logLevel   string
		logJSON    bool
		header     bool
		maxIter    int
		eps        float64
	)
	fs.StringVar(&configPath, "config", "", "YAML config file (optional).")
	fs.StringVar(&input, "input", "", "CSV file with 2, 4 or 6 coordinate columns, or - for stdin. Required.")
	fs.StringVar(&format, "format", string(report.FormatText), "Output format: text|json|cbor")
	fs.StringVar(&logLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	fs.BoolVar(&logJSON, "log-json", false, "Emit JSON logs instead of console output.")
	fs.BoolVar(&header, "header", true, "First CSV row is a header.")
	fs.IntVar(&maxIter, "max-iterations", 0, "Cap on solver cover passes (0 = default).")
	fs.Float64Var(&eps, "epsilon", 0, "Zero tolerance for reduced costs.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			var usage strings.Builder
			usage.WriteString("Usage: emd -input <file.csv> [flags]\n")
			fs.SetOutput(&usage)
			fs.PrintDefaults()
			return Invocation{}, &InvocationError{ExitCode: ExitSuccess, Message: strings.TrimRight(usage.String(), "\n")}
		}
		return Invocation{}, invalidInvocationf("%v", err)
	}
	if fs.NArg() != 0 {
		return Invocation{}, invalidInvocationf("unexpected positional arguments: %q", strings.Join(fs.Args(), " "))
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if configPath != "" {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			return Invocation{}, err
		}
		if !set["input"] && cfg.Input != "" {
			input = cfg.Input
		}
		if !set["format"] && cfg.Format != "" {
			format = cfg.Format
		}
		if !set["log-level"] && cfg.LogLevel != "" {
			logLevel = cfg.LogLevel
		}
		if !set["log-json"] && cfg.LogJSON {
			logJSON = true
		}
		if !set["header"] && cfg.Header != nil {
			header = *cfg.Header
		}
		if !set["max-iterations"] && cfg.MaxIterations != 0 {
			maxIter = cfg.MaxIterations
		}
		if !set["epsilon"] && cfg.Epsilon != 0 {
			eps = cfg.Epsilon
		}
	}

	if input == "" {
		return Invocation{}, invalidInvocationf("--input is required")
	}
	f, err := report.ParseFormat(format)
	if err != nil {
		return Invocation{}, invalidInvocationf("--format: %v", err)
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(logLevel))
	if err != nil || lvl == zerolog.NoLevel {
		return Invocation{}, invalidInvocationf("--log-level: unknown level %q", logLevel)
	}
	if maxIter < 0 {
		return Invocation{}, invalidInvocationf("--max-iterations must be >= 0 (got %d)", maxIter)
	}
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return Invocation{}, invalidInvocationf("--epsilon must be >= 0 (got %g)", eps)
	}

	return Invocation{
		InputPath:     input,
		Format:        f,
		LogLevel:      lvl,
		LogJSON:       logJSON,
		Header:        header,
		MaxIterations: maxIter,
		Epsilon:       eps,
	}, nil
}
