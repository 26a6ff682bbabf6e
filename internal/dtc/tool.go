package dtc

// ToolResolver locates the external metadata-rewrite tool on the
// execution environment. Implementations live outside the engine so
// the engine never embeds search-path or installer details.
type ToolResolver interface {
	// Resolve returns the absolute path of the tool binary, or
	// ok=false when the tool is not present.
	Resolve() (path string, ok bool)
}

// ToolInstaller performs a one-time best-effort install of the
// metadata tool via the environment's package manager.
type ToolInstaller interface {
	// Install attempts the install and reports whether it succeeded.
	// Its own output may be forwarded to the sink by the caller.
	Install(emit LineSink) bool
}

// LineSink receives human-readable log lines as they become
// available, in arrival order.
type LineSink func(line string)

// CommandRunner executes a child process and forwards every line of
// its combined stdout/stderr to the sink as it arrives. It returns
// the process exit code; err is reserved for failures to start or
// read the process, not for non-zero exits.
type CommandRunner interface {
	Run(name string, args []string, emit LineSink) (exitCode int, err error)
}
