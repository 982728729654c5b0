package ui

import (
	"strings"
	"testing"

	"github.com/rivo/tview"

	"ezc/internal/domain"
)

func viewerReport() *domain.RunReport {
	one := 1
	return &domain.RunReport{
		Tests: []domain.TestRecord{
			{Name: "A.ok", Suite: "A", Test: "ok", Passed: true},
			{Name: "A.bad", Suite: "A", Test: "bad", State: "fatal_assertion", FailedAssertions: &one},
			{Name: "B.crash", Suite: "B", Test: "crash", State: "process_crash", ExitCode: 2, Detail: "Go runtime [fatal] error"},
		},
	}
}

func TestViewer_ResolvedToggle(t *testing.T) {
	report := viewerReport()
	failed := report.FailedIndexes()

	if got := countUnresolved(report, failed); got != 2 {
		t.Fatalf("expected 2 unresolved, got %d", got)
	}

	toggleResolved(report, failed[0])
	if got := countUnresolved(report, failed); got != 1 {
		t.Errorf("expected 1 unresolved, got %d", got)
	}
	if !strings.HasPrefix(listItemText(report, failed, 0), "[gray]✓") {
		t.Errorf("resolved item should be greyed, got %q", listItemText(report, failed, 0))
	}
	if !strings.Contains(headerText(report, failed), "(2 total, 1 unresolved)") {
		t.Errorf("unexpected header %q", headerText(report, failed))
	}

	toggleResolved(report, failed[0])
	if report.Tests[failed[0]].Resolved {
		t.Error("second toggle should clear resolved")
	}
}

func TestViewer_FormatRecordDetails(t *testing.T) {
	report := viewerReport()

	details := formatRecordDetails(report.Tests[2])
	if !strings.Contains(details, "B.crash") || !strings.Contains(details, "2") {
		t.Errorf("unexpected details %q", details)
	}
	// square brackets in details must not be read as colour tags
	if !strings.Contains(details, "[fatal[]") {
		t.Errorf("detail text should be escaped, got %q", details)
	}
}

func TestViewer_EscapesNames(t *testing.T) {
	report := &domain.RunReport{
		Meta: domain.RunMeta{Filter: "Foo.[blue]*"},
		Tests: []domain.TestRecord{
			{Name: "Foo.[blue]", Suite: "Foo", Test: "[blue]", State: "fatal_assertion"},
		},
	}
	failed := report.FailedIndexes()

	tests := []struct {
		name string
		text string
	}{
		{"list item", listItemText(report, failed, 0)},
		{"details", formatRecordDetails(report.Tests[0])},
		{"stats", formatRecordStats(report.Tests[0], report.Meta)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if strings.Contains(tt.text, "[blue]") {
				t.Errorf("name parsed as a colour tag: %q", tt.text)
			}
			if !strings.Contains(tt.text, tview.Escape("[blue]")) {
				t.Errorf("escaped name missing: %q", tt.text)
			}
		})
	}
}
