package commands

import (
	"io"

	"github.com/spf13/cobra"

	"ezc/internal/storage"
	"ezc/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	out         io.Writer
	summaryOnly *bool
	newViewer   func(storage.Storage) ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(out io.Writer) *ViewCommand {
	return &ViewCommand{
		out: out,
		newViewer: func(st storage.Storage) ui.Viewer {
			return ui.NewReportViewer(st)
		},
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	st := storage.NewJSONStorage(args[0])
	report, err := st.Load()
	if err != nil {
		return err
	}

	ui.NewFormatter(vc.out, ui.ColorAuto).PrintReportSummary(report)
	if vc.summaryOnly != nil && *vc.summaryOnly {
		return nil
	}
	return vc.newViewer(st).View(report)
}
