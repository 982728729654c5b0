package commands

import (
	"io"

	"github.com/spf13/cobra"

	"ezc/internal/config"
	"ezc/internal/execution"
	"ezc/internal/registry"
	"ezc/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config   *config.Config
	registry *registry.Registry
	out      io.Writer
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, reg *registry.Registry, out io.Writer) *ListCommand {
	return &ListCommand{
		config:   cfg,
		registry: reg,
		out:      out,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	colorMode := string(lc.config.Color)
	reporter := ui.NewReporter(lc.out, cmd.ErrOrStderr(), colorMode)

	orchestrator := execution.NewOrchestrator(lc.config, lc.registry, reporter, nil)
	orchestrator.SetFormatter(ui.NewFormatter(lc.out, colorMode))
	orchestrator.List()
	return nil
}
