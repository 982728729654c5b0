package execution

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"ezc/internal/config"
	"ezc/internal/discovery"
)

// ErrSpawn is returned when a child process could not be created at all.
var ErrSpawn = errors.New("failed to spawn worker process")

// Spawner runs one selected test in a child process.
type Spawner interface {
	Spawn(ctx context.Context, item discovery.Item) (ChildStatus, error)
}

// Runner re-executes the current binary in worker mode for one test.
type Runner struct {
	config     *config.Config
	executable string
	extraEnv   []string
	stdout     io.Writer
	stderr     io.Writer
}

// NewRunner creates a new Runner that spawns the running executable
func NewRunner(cfg *config.Config) *Runner {
	return NewRunnerFor(cfg, "", nil)
}

// NewRunnerFor creates a Runner spawning executable with extraEnv appended
// to the inherited environment. An empty executable means the running one.
func NewRunnerFor(cfg *config.Config, executable string, extraEnv []string) *Runner {
	return &Runner{
		config:     cfg,
		executable: executable,
		extraEnv:   extraEnv,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

// SetOutput redirects the child's stdout and stderr.
func (r *Runner) SetOutput(stdout, stderr io.Writer) {
	r.stdout = stdout
	r.stderr = stderr
}

// Spawn starts the child for item and waits for it. An error wrapping
// ErrSpawn means no child ran; every other outcome is in the status.
func (r *Runner) Spawn(ctx context.Context, item discovery.Item) (ChildStatus, error) {
	executable := r.executable
	if executable == "" {
		exe, err := os.Executable()
		if err != nil {
			return ChildStatus{}, fmt.Errorf("%w: %v", ErrSpawn, err)
		}
		executable = exe
	}

	timeout := r.config.Timeout
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, executable, r.config.ChildArgs(item.Ordinal)...)
	cmd.Env = append(os.Environ(), r.extraEnv...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return ChildStatus{}, fmt.Errorf("%w: %s: %v", ErrSpawn, item.Test.FullName(), err)
	}
	waitErr := cmd.Wait()

	status := decodeExit(cmd.ProcessState)
	status.Elapsed = time.Since(start)

	if timeout > 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		status.TimedOut = true
		status.Reason = fmt.Sprintf("timed out after %s", timeout)
		return status, nil
	}

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) && status.Reason == "" {
		status.Reason = waitErr.Error()
	}
	return status, nil
}
