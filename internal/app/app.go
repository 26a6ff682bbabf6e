package app

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"dtc-go/internal/config"
	"dtc-go/internal/dtc"
	"dtc-go/internal/exiftool"
	"dtc-go/internal/fs"
)

// DTCApp is the application layer between the CLI and the rewrite
// engine. It constructs all dependencies from config, validates raw
// caller input, and owns the poll/drain loop that moves streamed job
// output to the terminal. The caller must call Close when done.
type DTCApp struct {
	cfg          *config.Config
	fsmgr        dtc.FilesystemManager
	resolver     dtc.ToolResolver
	runner       *dtc.Runner
	pollInterval time.Duration
	logFile      *os.File
}

// NewDTCApp creates a fully wired DTCApp from the given config.
// operation identifies the CLI command being run (e.g. "Run", "Check").
func NewDTCApp(cfg *config.Config, operation string) (*DTCApp, error) {
	fsmgr := fs.NewOSFilesystemManager()
	resolver := exiftool.NewResolverFromConfig(cfg.Tool)
	cmdRunner := exiftool.NewExecRunner()

	installer, err := exiftool.NewInstallerFromConfig(cfg.Tool, cmdRunner)
	if err != nil {
		return nil, fmt.Errorf("creating installer: %w", err)
	}

	logDir := cfg.LogDir
	if logDir == "" {
		defaults, err := GetDefaults()
		if err != nil {
			return nil, fmt.Errorf("getting defaults: %w", err)
		}
		logDir = defaults["log_dir"]
	}

	opID := time.Now().UTC().Format("20060102T150405Z")
	logger, logFile, err := newLogger(logDir, opID)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	logger = logger.With("operation", operation)

	runner := dtc.NewRunner(resolver, installer, cmdRunner,
		&slogAdapter{l: logger}, dtc.RealClock{}, dtc.UUIDGenerator{})

	pollInterval := time.Duration(cfg.PollIntervalMS) * time.Millisecond
	if pollInterval <= 0 {
		pollInterval = 150 * time.Millisecond
	}

	return &DTCApp{
		cfg:          cfg,
		fsmgr:        fsmgr,
		resolver:     resolver,
		runner:       runner,
		pollInterval: pollInterval,
		logFile:      logFile,
	}, nil
}

// Config returns the loaded configuration.
func (a *DTCApp) Config() *config.Config { return a.cfg }

// Close releases app resources.
func (a *DTCApp) Close() error {
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}

// RunJob validates the source root, writes the run banner, executes
// the job on a worker goroutine, and renders streamed output to out
// by draining the progress log on a fixed poll interval. The caller's
// goroutine never blocks on the child process itself.
func (a *DTCApp) RunJob(req dtc.JobRequest, out io.Writer) (dtc.JobResult, error) {
	// An empty source root would resolve to the working directory;
	// reject it before any path resolution.
	if req.SourceRoot == "" {
		return dtc.JobResult{}, fmt.Errorf("source folder is required")
	}

	path, err := a.fsmgr.Resolve(req.SourceRoot)
	if err != nil {
		return dtc.JobResult{}, fmt.Errorf("resolving source folder: %w", err)
	}
	if !path.IsDir() {
		return dtc.JobResult{}, fmt.Errorf("source is not a directory: %s", path.String())
	}
	req.SourceRoot = path.String()

	// Reject invalid requests synchronously, before any banner or
	// worker is started.
	if err := req.Validate(); err != nil {
		return dtc.JobResult{}, fmt.Errorf("invalid request: %w", err)
	}

	progress := dtc.NewProgressLog()
	a.writeBanner(progress, req, path)

	done := make(chan struct{})
	var result dtc.JobResult
	var runErr error
	go func() {
		defer close(done)
		result, runErr = a.runner.Run(req, progress.Append)
	}()

	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			renderLines(out, progress.Drain())
		case <-done:
			renderLines(out, progress.Drain())
			if runErr != nil {
				return result, fmt.Errorf("running job: %w", runErr)
			}
			return result, nil
		}
	}
}

// writeBanner emits the resolved parameter set ahead of the tool
// output, the way every run is prefaced in the visible log.
func (a *DTCApp) writeBanner(progress *dtc.ProgressLog, req dtc.JobRequest, path *dtc.Path) {
	target := "(none)"
	if req.TargetDate != "" {
		target = string(req.TargetDate)
	}
	exts := "all"
	if !req.AllFiles() {
		exts = strings.Join(req.Extensions, ",")
	}

	progress.Append(fmt.Sprintf("Folder: %s", req.SourceRoot))
	progress.Append(fmt.Sprintf("Match by: %s", strings.ToUpper(string(req.MatchMode))))
	progress.Append(fmt.Sprintf("Match Date: %s  | Target Date: %s", req.MatchDate, target))
	progress.Append(fmt.Sprintf("Extensions: %s", exts))
	progress.Append(fmt.Sprintf("Set Date Modified to Target: %v", req.SetModified))
	progress.Append(fmt.Sprintf("Also set Date Created = Modified: %v", req.SetCreatedFromModified))
	progress.Append(fmt.Sprintf("Dry run: %v", req.DryRun))

	scope := req.Extensions
	if req.AllFiles() {
		scope = nil
	}
	if count, err := a.fsmgr.CountFiles(path, scope); err == nil {
		progress.Append(fmt.Sprintf("Files in scope: %d", count))
	}
	progress.Append(strings.Repeat("-", 61))
}

func renderLines(out io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}

// CheckTools reports where the external tools resolve to, one line
// per tool, without invoking anything.
func (a *DTCApp) CheckTools() []string {
	lines := make([]string, 0, 2)

	if path, ok := a.resolver.Resolve(); ok {
		lines = append(lines, fmt.Sprintf("exiftool: %s", path))
	} else {
		lines = append(lines, "exiftool: NOT FOUND")
	}

	if path, ok := exiftool.NewResolver("brew").Resolve(); ok {
		lines = append(lines, fmt.Sprintf("brew: %s", path))
	} else {
		lines = append(lines, "brew: NOT FOUND")
	}

	return lines
}
