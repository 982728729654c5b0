// Package ezc registers tests and runs them with failure containment and
// optional process isolation.
//
// A test binary registers its suites, usually from init functions, and
// hands control to Main:
//
//	func init() {
//		ezc.Test("Math", "Add", func(t *ezc.T) {
//			ezc.ExpectEqual(t, 1+1, 2)
//		})
//	}
//
//	func main() {
//		os.Exit(ezc.Main())
//	}
package ezc

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ezc/internal/cli"
	"ezc/internal/cli/commands"
	"ezc/internal/config"
	"ezc/internal/containment"
	"ezc/internal/domain"
	"ezc/internal/registry"
)

var version = "dev"

// T is the handle a test body receives.
type T = containment.T

// Registry holds tests and fixtures.
type Registry = registry.Registry

// Default is the registry the package-level functions use.
var Default = registry.New()

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return registry.New()
}

// Test registers body as suite.name in Default. A full registry is
// reported and the test is dropped.
func Test(suite, name string, body func(t *T)) {
	if _, err := Default.Register(suite, name, body); err != nil {
		warn(err)
	}
}

// Setup binds fn to run before every test of suite.
func Setup(suite string, fn func()) {
	if err := Default.BindSetup(suite, fn); err != nil {
		warn(err)
	}
}

// Teardown binds fn to run after every test of suite.
func Teardown(suite string, fn func()) {
	if err := Default.BindTeardown(suite, fn); err != nil {
		warn(err)
	}
}

// Disable excludes suite.name from every run.
func Disable(suite, name string) bool {
	return Default.Disable(suite, name)
}

// Main runs the tests in Default with the process arguments and returns
// the exit code.
func Main() int {
	return Run(Default, os.Args[1:])
}

// Run runs the tests in reg with args.
func Run(reg *Registry, args []string) int {
	return Execute(reg, args, os.Stdout, os.Stderr)
}

// Execute runs the tests in reg with args, writing to out and errOut.
// Isolated children write to the same writers.
func Execute(reg *Registry, args []string, out, errOut io.Writer) int {
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		color.New(color.FgRed).Fprintf(errOut, "Error: %v\n", err)
		return domain.ExitUsage
	}

	rootCmd := &cobra.Command{
		Use:     "ezc",
		Short:   "Run registered tests with failure containment",
		Long:    `Runs registered tests one at a time. Fatal assertions, panics and runtime faults fail only the test that raised them, and by default every test runs in its own child process so even a crash cannot stop the run.`,
		Version: version,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	flags := cli.FromConfigFlags(cfg.DefaultFlags())
	cmds := commands.NewCommands(cfg, reg, out, errOut)
	cmds.Register(rootCmd, &flags, cfg)

	return cmds.Execute(rootCmd, args)
}

func warn(err error) {
	color.New(color.FgYellow).Fprintf(os.Stderr, "Warning: %v\n", err)
}
