package dtc

import (
	"fmt"
	"strings"
)

// ToolUnavailableExitCode is the exit code reported when the metadata
// tool cannot be resolved or installed (conventional "command not
// found").
const ToolUnavailableExitCode = 127

// Runner orchestrates one end-to-end pass: it resolves the external
// metadata tool, assembles the full invocation, executes it, and
// streams output to the caller's sink.
type Runner struct {
	resolver  ToolResolver
	installer ToolInstaller
	cmd       CommandRunner
	logger    Logger
	clock     Clock
	idgen     IDGenerator
}

// NewRunner creates a Runner with the provided dependencies.
func NewRunner(resolver ToolResolver, installer ToolInstaller, cmd CommandRunner, logger Logger, clock Clock, idgen IDGenerator) *Runner {
	return &Runner{
		resolver:  resolver,
		installer: installer,
		cmd:       cmd,
		logger:    logger,
		clock:     clock,
		idgen:     idgen,
	}
}

// ComposeInvocation assembles the full tool argument list for the
// request: scope flags, extension filters, the in-place overwrite
// flag (write mode only — its absence is the structural guarantee
// that a dry run performs no writes), the gating predicate, and the
// assignment plan or dry-run projection, followed by the source root.
func ComposeInvocation(req JobRequest) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	args := []string{"-fast2", "-r"}
	if !req.AllFiles() {
		for _, ext := range req.Extensions {
			args = append(args, "-ext", ext)
		}
	}
	if !req.DryRun {
		args = append(args, "-overwrite_original")
	}

	args = append(args, "-if", BuildPredicate(req.MatchMode, req.MatchDate))

	if req.DryRun {
		proj, err := BuildPreview(req)
		if err != nil {
			return nil, err
		}
		args = append(args, "-p", proj)
	} else {
		plan, err := BuildPlan(req)
		if err != nil {
			return nil, err
		}
		for _, a := range plan {
			args = append(args, a.Arg())
		}
	}

	return append(args, req.SourceRoot), nil
}

// Run executes one job. The returned error is non-nil only for
// invalid requests, which are rejected before any process is started.
// Everything else — including a missing tool and a non-zero tool
// exit — is a definitive JobResult: the tool's exit code is an
// inspectable outcome, not a crash.
func (r *Runner) Run(req JobRequest, emit LineSink) (JobResult, error) {
	args, err := ComposeInvocation(req)
	if err != nil {
		return JobResult{}, fmt.Errorf("invalid request: %w", err)
	}

	jobID := r.idgen.New()
	started := r.clock.Now()
	r.logger.Info("job started",
		"job", jobID,
		"mode", string(req.MatchMode),
		"match_date", string(req.MatchDate),
		"dry_run", req.DryRun,
	)

	var lines []string
	sink := func(line string) {
		lines = append(lines, line)
		if emit != nil {
			emit(line)
		}
	}

	toolPath, ok := r.resolver.Resolve()
	if !ok && r.installer != nil {
		// One-time best-effort bootstrap; the installer emits its own
		// progress lines, if any.
		if r.installer.Install(sink) {
			toolPath, ok = r.resolver.Resolve()
		}
	}
	if !ok {
		sink("ERROR: exiftool not available")
		r.logger.Error("job aborted", "job", jobID, "reason", ErrToolUnavailable.Error())
		return JobResult{Lines: lines, ExitCode: ToolUnavailableExitCode}, nil
	}

	if req.DryRun {
		sink("Preview (no writes):")
	} else {
		sink("Running exiftool writes...")
	}
	sink(toolPath + " " + strings.Join(args, " "))

	exitCode, runErr := r.cmd.Run(toolPath, args, sink)
	if runErr != nil {
		sink(fmt.Sprintf("ERROR: %v", runErr))
	}
	sink(fmt.Sprintf("[exit code %d]", exitCode))

	r.logger.Info("job finished",
		"job", jobID,
		"exit_code", exitCode,
		"duration", r.clock.Now().Sub(started).String(),
	)

	return JobResult{Lines: lines, ExitCode: exitCode}, nil
}
