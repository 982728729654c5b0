package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"ezc/internal/config"
	"ezc/internal/execution"
	"ezc/internal/registry"
	"ezc/internal/storage"
	"ezc/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config   *config.Config
	registry *registry.Registry
	out      io.Writer
	errOut   io.Writer
	done     func(code int)
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	reg *registry.Registry,
	out io.Writer,
	errOut io.Writer,
	done func(code int),
) *RunCommand {
	return &RunCommand{
		config:   cfg,
		registry: reg,
		out:      out,
		errOut:   errOut,
		done:     done,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	colorMode := string(rc.config.Color)
	reporter := ui.NewReporter(rc.out, rc.errOut, colorMode)
	runner := execution.NewRunner(rc.config)
	runner.SetOutput(rc.out, rc.errOut)

	orchestrator := execution.NewOrchestrator(rc.config, rc.registry, reporter, runner)
	orchestrator.SetFormatter(ui.NewFormatter(rc.out, colorMode))

	// Children report through their exit status only.
	if !rc.config.IsWorker() {
		if rc.config.Progress {
			orchestrator.SetProgress(rc.errOut)
		}
		if rc.config.ReportPath != "" {
			orchestrator.SetStorage(storage.NewJSONStorage(rc.config.ReportPath))
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rc.done(orchestrator.Run(ctx))
	return nil
}
