package ui

import (
	"bytes"
	"strings"
	"testing"

	"ezc/internal/domain"
)

func TestFormatter_PrintTestList(t *testing.T) {
	var out bytes.Buffer
	f := NewFormatter(&out, ColorNo)

	f.PrintTestList([]ListedTest{
		{"Math", "Add"},
		{"Math", "Sub"},
		{"Str", "Len"},
		{"Math", "Mul"},
	})

	expected := "Math.\n  Add\n  Sub\nStr.\n  Len\nMath.\n  Mul\n\nTotal: 4 test(s)\n"
	if out.String() != expected {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestFormatter_PrintTestListEmpty(t *testing.T) {
	var out bytes.Buffer
	NewFormatter(&out, ColorNo).PrintTestList(nil)

	if out.String() != "\nTotal: 0 test(s)\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestFormatter_PrintReportSummary(t *testing.T) {
	var out bytes.Buffer
	total, failed := 4, 1
	report := &domain.RunReport{Meta: domain.RunMeta{
		TotalTests:       2,
		FailedTests:      1,
		TotalAssertions:  &total,
		FailedAssertions: &failed,
	}}

	NewFormatter(&out, ColorNo).PrintReportSummary(report)

	s := out.String()
	if !strings.Contains(s, "4 total, 1 failed") {
		t.Errorf("missing assertion totals:\n%s", s)
	}
	if !strings.Contains(s, "OFF") {
		t.Errorf("missing isolation row:\n%s", s)
	}
}
