package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"ezc/internal/cli"
	"ezc/internal/config"
	"ezc/internal/domain"
	"ezc/internal/registry"
)

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
	View *ViewCommand

	errOut   io.Writer
	flags    *cli.Flags
	exitCode int
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, reg *registry.Registry, out, errOut io.Writer) *Commands {
	c := &Commands{errOut: errOut}
	c.Run = NewRunCommand(cfg, reg, out, errOut, c.setExitCode)
	c.List = NewListCommand(cfg, reg, out)
	c.View = NewViewCommand(out)
	return c
}

// ExitCode returns the exit code of the last executed command
func (c *Commands) ExitCode() int {
	return c.exitCode
}

func (c *Commands) setExitCode(code int) {
	c.exitCode = code
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	c.flags = flags

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run registered tests",
		Long: `Run every registered test matching the filter.

Filter patterns:
  *          Match any characters
  ?          Match single character
  :          Separate multiple patterns
  -PATTERN   Exclude tests matching PATTERN

By default tests run in separate processes. Isolation is disabled
automatically for a single test or when a debugger is attached.`,
		Example: `  ezc run --filter='MyTest.*'
  ezc run --filter='*Fast*:*Quick*'
  ezc run --filter='*:-*Slow*' --repeat=3 --shuffle`,
		Args: cobra.NoArgs,
		RunE: c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Apply(flags.ToConfigFlags())
			return cfg.Validate()
		},
	}
	runCmd.Flags().StringVarP(&flags.Filter, "filter", "f", flags.Filter, "Run only tests matching the pattern list")
	runCmd.Flags().IntVarP(&flags.Repeat, "repeat", "r", flags.Repeat, "Run the tests COUNT times")
	runCmd.Flags().BoolVar(&flags.Shuffle, "shuffle", flags.Shuffle, "Randomize test order once before the first pass")
	runCmd.Flags().Uint64Var(&flags.Seed, "seed", flags.Seed, "Seed for --shuffle (0 picks one from the clock)")
	runCmd.Flags().StringVar(&flags.Isolation, "isolation", flags.Isolation, "Process isolation: auto, on or off")
	runCmd.Flags().BoolVar(&flags.NoExec, "no-exec", flags.NoExec, "Disable process isolation (same as --isolation=off)")
	runCmd.Flags().StringVar(&flags.Color, "color", flags.Color, "Colored output: auto, yes or no")
	runCmd.Flags().BoolVar(&flags.List, "list", flags.List, "List matching tests without running them")
	runCmd.Flags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Kill an isolated test after this long (0 = no timeout)")
	runCmd.Flags().BoolVar(&flags.Progress, "progress", flags.Progress, "Show a progress bar on stderr")
	runCmd.Flags().StringVar(&flags.Report, "report", flags.Report, "Write a JSON run report to this path")
	runCmd.Flags().IntVar(&flags.Worker, "worker", flags.Worker, "Run only the test at this ordinal (used by isolated children)")
	runCmd.Flags().MarkHidden("worker")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered tests",
		Long:  "List the tests matching the filter grouped by suite without running them",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Apply(flags.ToConfigFlags())
			return cfg.Validate()
		},
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", flags.Filter, "List only tests matching the pattern list")
	listCmd.Flags().StringVar(&flags.Color, "color", flags.Color, "Colored output: auto, yes or no")
	rootCmd.AddCommand(listCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view <report.json>",
		Short: "View test failures interactively",
		Long:  "Display the failures of an exported run report in an interactive viewer",
		Args:  cobra.ExactArgs(1),
		RunE:  c.View.Execute,
	}
	viewCmd.Flags().BoolVar(&flags.Summary, "summary", false, "Print the report summary and exit without opening the viewer")
	c.View.summaryOnly = &flags.Summary
	rootCmd.AddCommand(viewCmd)

	// Applies to every flag registered above
	rootCmd.SetGlobalNormalizationFunc(cli.NormalizeFlagName)
}

// Execute runs rootCmd with args and returns the process exit code.
func (c *Commands) Execute(rootCmd *cobra.Command, args []string) int {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.SetArgs(DefaultToRun(args))
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(c.errOut, "Error: %v\n", err)
	}
	return exitCodeFor(err, c.exitCode, c.isWorker())
}

// isWorker reports whether the parsed flags carry a worker ordinal. The
// parent passes --worker first, so it is set even when a later flag fails.
func (c *Commands) isWorker() bool {
	return c.flags != nil && c.flags.Worker != config.NoWorker
}

// DefaultToRun prepends the run command when args start with a flag or are
// empty, so the binary runs its tests when invoked bare.
func DefaultToRun(args []string) []string {
	if len(args) == 0 {
		return []string{"run"}
	}
	first := args[0]
	switch first {
	case "-h", "--help", "--version", "help", "completion":
		return args
	}
	if strings.HasPrefix(first, "-") {
		return append([]string{"run"}, args...)
	}
	return args
}

// exitCodeFor maps a finished command to the process exit code.
func exitCodeFor(err error, code int, worker bool) int {
	switch {
	case err == nil:
		return code
	case worker:
		return domain.ExitWorkerUsage
	default:
		return domain.ExitUsage
	}
}
