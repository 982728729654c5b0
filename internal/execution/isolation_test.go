package execution

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"ezc/internal/config"
	"ezc/internal/containment"
	"ezc/internal/domain"
	"ezc/internal/registry"
	"ezc/internal/ui"
)

// helperEnv makes the test binary act as an isolated worker child.
const helperEnv = "EZC_HELPER_PROCESS"

func TestMain(m *testing.M) {
	if os.Getenv(helperEnv) == "1" {
		os.Exit(helperMain(os.Args[1:]))
	}
	os.Exit(m.Run())
}

// helperRegistry is registered identically by the parent test and every
// child so ordinals resolve to the same tests.
func helperRegistry() *registry.Registry {
	reg := registry.New()
	reg.Register("Crash", "GoroutinePanic", func(*containment.T) {
		block := make(chan struct{})
		go func() {
			panic("panic on another goroutine")
		}()
		<-block
	})
	reg.Register("Crash", "Passing", func(t *containment.T) {
		t.ExpectTrue(true)
	})
	reg.Register("Crash", "Failing", func(t *containment.T) {
		containment.ExpectEqual(t, 1, 2)
	})
	reg.Register("Signal", "Kill", func(*containment.T) {
		if p, err := os.FindProcess(os.Getpid()); err == nil {
			p.Kill()
		}
		time.Sleep(time.Minute)
	})
	reg.Register("Slow", "Sleep", func(*containment.T) {
		time.Sleep(time.Minute)
	})
	return reg
}

// helperMain parses the child arguments without the cobra tree; the full
// command path is exercised by the pkg/ezc tests.
func helperMain(args []string) int {
	fs := pflag.NewFlagSet("helper", pflag.ContinueOnError)
	worker := fs.Int("worker", config.NoWorker, "")
	filter := fs.String("filter", "", "")
	colorMode := fs.String("color", ui.ColorNo, "")
	// Forwarded run settings a worker ignores.
	fs.String("isolation", "", "")
	fs.Int("repeat", 1, "")
	fs.Bool("shuffle", false, "")
	fs.Duration("timeout", 0, "")
	fs.Bool("progress", false, "")
	fs.String("report", "", "")
	if err := fs.Parse(args); err != nil {
		return domain.ExitUsage
	}

	cfg := config.New()
	cfg.Worker = *worker
	cfg.Filter = *filter
	cfg.Color = config.ColorMode(*colorMode)

	reporter := ui.NewReporter(os.Stdout, os.Stderr, *colorMode)
	return NewOrchestrator(cfg, helperRegistry(), reporter, nil).Run(context.Background())
}

func newIsolatedRun(t *testing.T, filter, executable string, timeout time.Duration) (*Orchestrator, *bytes.Buffer) {
	t.Helper()
	if testing.Short() {
		t.Skip("spawns child processes")
	}

	cfg := config.New()
	cfg.Filter = filter
	cfg.Isolation = config.IsolationOn
	cfg.Color = config.ColorNo
	cfg.Timeout = timeout

	var out bytes.Buffer
	runner := NewRunnerFor(cfg, executable, []string{helperEnv + "=1"})
	runner.SetOutput(&out, &out)
	o := NewOrchestrator(cfg, helperRegistry(), ui.NewReporter(&out, &out, ui.ColorNo), runner)
	o.SetDebuggerProbe(func() bool { return false })
	return o, &out
}

func TestIsolation_CrashDoesNotStopRun(t *testing.T) {
	o, out := newIsolatedRun(t, "Crash.GoroutinePanic:Crash.Passing", "", 0)

	code := o.RunAll(context.Background())

	if code != domain.ExitFailed {
		t.Errorf("expected exit 1, got %d", code)
	}
	stats := o.Results().Stats()
	if stats.TotalTests != 2 || stats.PassedTests != 1 || stats.FailedTests != 1 {
		t.Errorf("expected one failure and one pass, got %+v\n%s", stats, out.String())
	}
	if failed := o.Results().FailedTests(); len(failed) != 1 || failed[0] != "Crash.GoroutinePanic" {
		t.Errorf("unexpected failed list %v", failed)
	}

	s := out.String()
	for _, want := range []string{
		"Test terminated abnormally with exit code 2",
		"Reason: Go runtime fatal error or unrecovered panic",
		"[       OK ] Crash.Passing",
		"Assertions: N/A",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q in:\n%s", want, s)
		}
	}
}

func TestIsolation_ChildReportsContainedFailure(t *testing.T) {
	o, out := newIsolatedRun(t, "Crash.Failing", "", 0)

	o.RunAll(context.Background())

	records := o.Results().Records()
	if len(records) != 1 || records[0].State != domain.FailedInChild.String() || records[0].ExitCode != 1 {
		t.Fatalf("unexpected records %+v\n%s", records, out.String())
	}
	if !strings.Contains(out.String(), "isolation_test.go:") || !strings.Contains(out.String(), "[  FAILED  ] Crash.Failing (") {
		t.Errorf("child output missing:\n%s", out.String())
	}
}

func TestIsolation_SpawnFailureRunsInProcess(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-binary")
	o, out := newIsolatedRun(t, "Crash.Passing:Crash.Failing", missing, 0)

	code := o.RunAll(context.Background())

	if code != domain.ExitFailed {
		t.Errorf("expected exit 1, got %d", code)
	}
	stats := o.Results().Stats()
	if stats.PassedTests != 1 || stats.FailedTests != 1 {
		t.Errorf("fallback must report the true outcomes, got %+v", stats)
	}
	if strings.Count(out.String(), "[ FALLBACK ]") != 2 {
		t.Errorf("expected two fallback lines:\n%s", out.String())
	}
}

func TestIsolation_Timeout(t *testing.T) {
	o, out := newIsolatedRun(t, "Slow.Sleep", "", 300*time.Millisecond)

	start := time.Now()
	o.RunAll(context.Background())

	if time.Since(start) > 30*time.Second {
		t.Fatal("timeout did not stop the child")
	}
	records := o.Results().Records()
	if len(records) != 1 || records[0].State != domain.ProcessCrashed.String() {
		t.Fatalf("unexpected records %+v", records)
	}
	if !strings.Contains(out.String(), "Reason: timed out after 300ms") {
		t.Errorf("missing timeout reason:\n%s", out.String())
	}
}

func TestIsolation_WorkerNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("spawns child processes")
	}
	cfg := config.New()
	cfg.Filter = "Crash.*"

	runner := NewRunnerFor(cfg, "", []string{helperEnv + "=1"})
	var out bytes.Buffer
	runner.SetOutput(&out, &out)

	// The child selects three Crash.* tests, so ordinal 3 resolves to nothing.
	local := registry.New()
	local.Register("Crash", "Ghost", func(*containment.T) {})
	item := discoveryItem(local, 0)
	item.Ordinal = 3

	status, err := runner.Spawn(context.Background(), item)
	if err != nil {
		t.Fatalf("spawn failed: %v", err)
	}
	if status.ExitCode != domain.ExitWorkerNotFound || status.Result() != ChildAbnormal {
		t.Errorf("expected worker-not-found exit, got %+v", status)
	}
	if !strings.Contains(out.String(), "worker test not found") {
		t.Errorf("missing worker error:\n%s", out.String())
	}
}
