package exiftool

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"dtc-go/internal/dtc"
)

// ExecRunner executes child processes via os/exec, forwarding every
// line of combined stdout/stderr to the sink as it arrives. Streaming
// matters: a long pass over a large folder must show incremental
// progress rather than appearing to hang.
type ExecRunner struct{}

// NewExecRunner creates the production command runner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts the command, scans its combined output line-by-line into
// the sink, and waits for exit. A non-zero exit is returned as the
// exit code with a nil error; err is reserved for failing to start or
// read the process.
func (*ExecRunner) Run(name string, args []string, emit dtc.LineSink) (int, error) {
	cmd := exec.Command(name, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return -1, fmt.Errorf("creating stdout pipe: %w", err)
	}
	// Share the pipe so diagnostics interleave with output in arrival order.
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("starting %s: %w", name, err)
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		emit(scanner.Text())
	}
	scanErr := scanner.Err()
	if scanErr != nil {
		// The scanner stopped mid-stream (e.g. a line over the buffer
		// cap). Drain the rest so the child can finish writing and
		// Wait does not block on a full pipe.
		io.Copy(io.Discard, stdout)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("waiting for %s: %w", name, err)
	}
	if scanErr != nil {
		return -1, fmt.Errorf("reading %s output: %w", name, scanErr)
	}

	return 0, nil
}

// Compile-time check that ExecRunner implements dtc.CommandRunner
var _ dtc.CommandRunner = (*ExecRunner)(nil)
