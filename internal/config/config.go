package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalid is returned for configuration values that cannot be used
var ErrInvalid = errors.New("invalid configuration")

// IsolationMode selects whether tests run in child processes
type IsolationMode string

const (
	IsolationAuto IsolationMode = "auto"
	IsolationOn   IsolationMode = "on"
	IsolationOff  IsolationMode = "off"
)

// ColorMode is the colour preference for console output
type ColorMode string

const (
	ColorAuto ColorMode = "auto"
	ColorYes  ColorMode = "yes"
	ColorNo   ColorMode = "no"
)

// Config holds all configuration for a run. It is built once and not
// modified while tests execute.
type Config struct {
	// Selection
	Filter string

	// Ordering
	Repeat  int
	Shuffle bool
	Seed    uint64 // 0 picks a time based seed

	// Execution
	Isolation IsolationMode
	Timeout   time.Duration
	Worker    int

	// Output
	Color      ColorMode
	ListOnly   bool
	Progress   bool
	ReportPath string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Filter    string
	Repeat    int
	Shuffle   bool
	Seed      uint64
	Isolation string
	NoExec    bool
	Color     string
	List      bool
	Timeout   time.Duration
	Progress  bool
	Report    string
	Worker    int
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		Filter:    DefaultFilter,
		Repeat:    DefaultRepeat,
		Isolation: DefaultIsolation,
		Color:     DefaultColor,
		Worker:    NoWorker,
	}
}

// Load creates a config from defaults, the dotenv file at envFile and the
// EZC_* environment variables. A missing dotenv file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := New()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvFilter); ok {
		c.Filter = v
	}
	if v, ok := lookup(EnvRepeat); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalid, EnvRepeat, v)
		}
		c.Repeat = n
	}
	if v, ok := lookup(EnvShuffle); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalid, EnvShuffle, v)
		}
		c.Shuffle = b
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an unsigned number", ErrInvalid, EnvSeed, v)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvIsolation); ok && v != "" {
		c.Isolation = IsolationMode(strings.ToLower(v))
	}
	if v, ok := lookup(EnvColor); ok && v != "" {
		c.Color = ColorMode(strings.ToLower(v))
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvTimeout, v, err)
		}
		c.Timeout = d
	}
	if v, ok := lookup(EnvReport); ok {
		c.ReportPath = v
	}
	return nil
}

// DefaultFlags returns flags whose values mirror c, so flags that are not
// given on the command line keep the loaded value.
func (c *Config) DefaultFlags() Flags {
	return Flags{
		Filter:    c.Filter,
		Repeat:    c.Repeat,
		Shuffle:   c.Shuffle,
		Seed:      c.Seed,
		Isolation: string(c.Isolation),
		Color:     string(c.Color),
		List:      c.ListOnly,
		Timeout:   c.Timeout,
		Progress:  c.Progress,
		Report:    c.ReportPath,
		Worker:    c.Worker,
	}
}

// Apply copies parsed command-line flags over the loaded configuration.
func (c *Config) Apply(flags Flags) {
	c.Flags = flags
	c.Filter = flags.Filter
	c.Repeat = flags.Repeat
	c.Shuffle = flags.Shuffle
	c.Seed = flags.Seed
	c.Isolation = IsolationMode(strings.ToLower(flags.Isolation))
	if flags.NoExec {
		c.Isolation = IsolationOff
	}
	c.Color = ColorMode(strings.ToLower(flags.Color))
	c.ListOnly = flags.List
	c.Timeout = flags.Timeout
	c.Progress = flags.Progress
	c.ReportPath = flags.Report
	c.Worker = flags.Worker
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	if c.Repeat < 1 {
		return fmt.Errorf("%w: repeat must be at least 1, got %d", ErrInvalid, c.Repeat)
	}
	switch c.Isolation {
	case IsolationAuto, IsolationOn, IsolationOff:
	default:
		return fmt.Errorf("%w: isolation must be auto, on or off, got %q", ErrInvalid, c.Isolation)
	}
	switch c.Color {
	case ColorAuto, ColorYes, ColorNo:
	default:
		return fmt.Errorf("%w: color must be auto, yes or no, got %q", ErrInvalid, c.Color)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative, got %s", ErrInvalid, c.Timeout)
	}
	if c.Worker < NoWorker {
		return fmt.Errorf("%w: worker ordinal must not be negative, got %d", ErrInvalid, c.Worker)
	}
	return nil
}

// IsWorker reports whether this process is an isolated child.
func (c *Config) IsWorker() bool {
	return c.Worker != NoWorker
}

// ChildArgs returns the arguments an isolated child receives to locate the
// test at ordinal. Every field the child validates is forwarded with its
// resolved value so inherited EZC_* variables the parent overrode cannot
// reject the child. The timeout stays with the parent.
func (c *Config) ChildArgs(ordinal int) []string {
	return []string{
		"run",
		fmt.Sprintf("--worker=%d", ordinal),
		fmt.Sprintf("--filter=%s", c.Filter),
		fmt.Sprintf("--color=%s", c.Color),
		"--isolation=" + string(IsolationOff),
		"--repeat=1",
		"--shuffle=false",
		"--timeout=0s",
		"--progress=false",
		"--report=",
	}
}
