package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"ezc/internal/domain"
)

// ListedTest is the part of a test the list output needs.
type ListedTest struct {
	Suite string
	Name  string
}

// Formatter prints test listings
type Formatter struct {
	out   io.Writer
	suite *color.Color
}

// NewFormatter creates a new Formatter
func NewFormatter(out io.Writer, mode string) *Formatter {
	suite := color.New(color.FgCyan)
	switch mode {
	case ColorYes:
		suite.EnableColor()
	case ColorNo:
		suite.DisableColor()
	}
	return &Formatter{out: out, suite: suite}
}

// PrintTestList prints the tests grouped under a header for every run of
// consecutive tests sharing a suite, followed by the total.
func (f *Formatter) PrintTestList(tests []ListedTest) {
	last := ""
	for i, test := range tests {
		if i == 0 || test.Suite != last {
			f.suite.Fprintf(f.out, "%s.\n", test.Suite)
			last = test.Suite
		}
		fmt.Fprintf(f.out, "  %s\n", test.Name)
	}
	fmt.Fprintf(f.out, "\nTotal: %d test(s)\n", len(tests))
}

// PrintReportSummary prints the statistics block of an exported report.
func (f *Formatter) PrintReportSummary(report *domain.RunReport) {
	meta := report.Meta
	rows := []struct {
		label string
		value string
	}{
		{"Total Tests", fmt.Sprint(meta.TotalTests)},
		{"Passed Tests", fmt.Sprint(meta.PassedTests)},
		{"Failed Tests", fmt.Sprint(meta.FailedTests)},
		{"Assertions", assertionsText(meta)},
		{"Filter", orDash(meta.Filter)},
		{"Iterations", fmt.Sprint(meta.Repeat)},
		{"Process Isolation", onOff(meta.Isolation)},
		{"Duration", fmt.Sprintf("%.2fs", meta.DurationSeconds)},
		{"Timestamp", orDash(meta.Timestamp)},
	}

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	for i, row := range rows {
		fmt.Fprintf(f.out, "│ %-31s │ %-27s │\n", row.label, row.value)
		if i < len(rows)-1 {
			fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
		}
	}
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")
}

func assertionsText(meta domain.RunMeta) string {
	if meta.TotalAssertions == nil || meta.FailedAssertions == nil {
		return "N/A"
	}
	total, failed := *meta.TotalAssertions, *meta.FailedAssertions
	return fmt.Sprintf("%d total, %d failed", total, failed)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
