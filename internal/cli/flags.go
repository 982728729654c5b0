package cli

import (
	"strings"
	"time"

	"github.com/spf13/pflag"

	"ezc/internal/config"
)

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
	Summary   bool
}

// FromConfigFlags seeds flags with loaded configuration values
func FromConfigFlags(f config.Flags) Flags {
	return Flags{
		Filter:    f.Filter,
		Repeat:    f.Repeat,
		Shuffle:   f.Shuffle,
		Seed:      f.Seed,
		Isolation: f.Isolation,
		NoExec:    f.NoExec,
		Color:     f.Color,
		List:      f.List,
		Timeout:   f.Timeout,
		Progress:  f.Progress,
		Report:    f.Report,
		Worker:    f.Worker,
	}
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Filter:    f.Filter,
		Repeat:    f.Repeat,
		Shuffle:   f.Shuffle,
		Seed:      f.Seed,
		Isolation: f.Isolation,
		NoExec:    f.NoExec,
		Color:     f.Color,
		List:      f.List,
		Timeout:   f.Timeout,
		Progress:  f.Progress,
		Report:    f.Report,
		Worker:    f.Worker,
	}
}

var legacyNames = map[string]string{
	"ezctest_filter":     "filter",
	"ezctest_repeat":     "repeat",
	"ezctest_shuffle":    "shuffle",
	"ezctest_color":      "color",
	"ezctest_list_tests": "list",
	"ezctest_no_exec":    "no-exec",
	"ezctest_worker":     "worker",
}

// NormalizeFlagName maps the long-form --ezctest_* names onto the current
// flags and accepts underscores in place of dashes.
func NormalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if mapped, ok := legacyNames[name]; ok {
		name = mapped
	}
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
