package evaluation

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/brocs/coloring"
)

// Config describes an evaluation run. Zero fields take the values of
// DefaultConfig when loaded through LoadConfig.
//
//	inputs: [testdata/graphs, extra/k5.npy]
//	algorithms: [brooks, cs]
//	repeat: 5
//	seed: 42
//	timeout: 30s
//	csv: out/
//	metrics_file: out/brocs.prom
//	report: out/report.yaml
//	log:
//	  level: info
//	  format: text
type Config struct {
	Inputs      []string      `yaml:"inputs"`
	Algorithms  []string      `yaml:"algorithms"`
	Repeat      int           `yaml:"repeat"`
	Seed        *int64        `yaml:"seed"`
	Timeout     time.Duration `yaml:"timeout"`
	CSV         string        `yaml:"csv"`
	MetricsFile string        `yaml:"metrics_file"`
	Report      string        `yaml:"report"`
	Log         LogConfig     `yaml:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Log formats.
const (
	LogText = "text"
	LogJSON = "json"
)

// DefaultConfig returns both algorithms, one repetition and text logs at
// info level.
func DefaultConfig() Config {
	return Config{
		Algorithms: coloring.Algorithms(),
		Repeat:     1,
		Log:        LogConfig{Level: "info", Format: LogText},
	}
}

// LoadConfig reads a YAML config over DefaultConfig and validates it.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	return DecodeConfig(f)
}

// DecodeConfig is LoadConfig for an arbitrary reader. An empty document
// yields DefaultConfig.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the algorithms, repetition count, timeout and log
// settings. Inputs may be empty: the CLI supplies them from arguments.
func (c Config) Validate() error {
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("no algorithms: %w", ErrInvalidConfig)
	}
	for _, a := range c.Algorithms {
		if _, err := coloring.New(a); err != nil {
			return fmt.Errorf("%v: %w", err, ErrInvalidConfig)
		}
	}
	if c.Repeat < 1 {
		return fmt.Errorf("repeat %d: %w", c.Repeat, ErrInvalidConfig)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout %s: %w", c.Timeout, ErrInvalidConfig)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", LogText, LogJSON:
	default:
		return fmt.Errorf("log format %q: %w", c.Log.Format, ErrInvalidConfig)
	}

	return nil
}

// EvaluatorOptions turns the timeout and seed into Evaluator options.
func (c Config) EvaluatorOptions() []Option {
	opts := []Option{WithTimeout(c.Timeout)}
	if c.Seed != nil {
		opts = append(opts, WithSeed(*c.Seed))
	}

	return opts
}

func (l LogConfig) level() (slog.Level, error) {
	var lvl slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", l.Level, ErrInvalidConfig)
	}

	return lvl, nil
}

// NewLogger builds a slog logger writing to w.
func (l LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	lvl, err := l.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(l.Format) {
	case "", LogText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case LogJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("log format %q: %w", l.Format, ErrInvalidConfig)
	}
}
