package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ezc/internal/domain"
	"ezc/internal/storage"
)

// Viewer displays a run report
type Viewer interface {
	View(report *domain.RunReport) error
}

// ReportViewer browses the failed tests of a report in an interactive TUI.
// Marking a failure as resolved is written back through the storage.
type ReportViewer struct {
	storage storage.Storage
}

// NewReportViewer creates a new ReportViewer
func NewReportViewer(st storage.Storage) *ReportViewer {
	return &ReportViewer{storage: st}
}

// View displays the failures of report
func (rv *ReportViewer) View(report *domain.RunReport) error {
	failed := report.FailedIndexes()
	if len(failed) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i := range failed {
		list.AddItem(listItemText(report, failed, i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(headerText(report, failed))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(failed) {
			record := report.Tests[failed[index]]
			statsView.SetText(formatRecordStats(record, report.Meta))
			detailsView.SetText(formatRecordDetails(record))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(failed) {
					toggleResolved(report, failed[index])
					list.SetItemText(index, listItemText(report, failed, index), "")
					updateHeader()
					updateDetails()
					if err := rv.storage.Save(report); err != nil {
						statsView.SetText(fmt.Sprintf("[red]failed to save: %v[white]", err))
					}
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

func toggleResolved(report *domain.RunReport, index int) {
	report.Tests[index].Resolved = !report.Tests[index].Resolved
}

func countUnresolved(report *domain.RunReport, failed []int) int {
	count := 0
	for _, i := range failed {
		if !report.Tests[i].Resolved {
			count++
		}
	}
	return count
}

func headerText(report *domain.RunReport, failed []int) string {
	return fmt.Sprintf(" Test Failures (%d total, %d unresolved) | Use ↑↓ to navigate, [yellow]R[white] to mark resolved, → to view details, ← to go back, Ctrl+C to exit ",
		len(failed), countUnresolved(report, failed))
}

func listItemText(report *domain.RunReport, failed []int, i int) string {
	record := report.Tests[failed[i]]
	if record.Resolved {
		return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", i+1, tview.Escape(record.Name))
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", i+1, tview.Escape(record.Name))
}

// formatRecordDetails renders a failed record using tview colour tags.
func formatRecordDetails(record domain.TestRecord) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[red]✗ Test: %s[white]\n\n", tview.Escape(record.Name))
	fmt.Fprintf(w, "[cyan]Outcome:\t%s[white]\n", record.State)
	fmt.Fprintf(w, "[cyan]Elapsed:\t%d ms[white]\n", record.ElapsedMS)
	if record.FailedAssertions != nil {
		fmt.Fprintf(w, "[cyan]Failed assertions:\t%d[white]\n", *record.FailedAssertions)
	}
	if record.ExitCode != 0 {
		fmt.Fprintf(w, "[cyan]Child exit code:\t%d[white]\n", record.ExitCode)
	}
	fmt.Fprintf(w, "\n")

	if record.Detail != "" {
		fmt.Fprintf(w, "[yellow]Details:[white]\n%s\n", tview.Escape(record.Detail))
	}

	w.Flush()
	return builder.String()
}

func formatRecordStats(record domain.TestRecord, meta domain.RunMeta) string {
	return fmt.Sprintf("[cyan]suite:[white] [yellow]%s[white]  [cyan]test:[white] [yellow]%s[white]\n[cyan]filter:[white] %s  [cyan]isolation:[white] %s",
		tview.Escape(record.Suite), tview.Escape(record.Test), tview.Escape(orDash(meta.Filter)), onOff(meta.Isolation))
}
