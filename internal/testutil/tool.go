package testutil

import (
	"sync"

	"dtc-go/internal/dtc"
)

// StubResolver resolves the tool to a fixed path, or to nothing.
// ResolveAfterInstall makes resolution start succeeding once Fail is
// cleared, which fakes a successful install.
type StubResolver struct {
	mu   sync.Mutex
	Path string
	Fail bool
}

// NewStubResolver creates a resolver that finds the tool at path.
func NewStubResolver(path string) *StubResolver {
	return &StubResolver{Path: path}
}

// NewAbsentResolver creates a resolver that never finds the tool.
func NewAbsentResolver() *StubResolver {
	return &StubResolver{Fail: true}
}

func (r *StubResolver) Resolve() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return "", false
	}
	return r.Path, true
}

// SetFail toggles resolution failure.
func (r *StubResolver) SetFail(fail bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Fail = fail
}

// StubInstaller reports a scripted install outcome and optionally
// emits installer output lines. OnInstall, when set, runs on each
// attempt (tests use it to flip the paired resolver).
type StubInstaller struct {
	Succeed   bool
	Output    []string
	Calls     int
	OnInstall func()
}

func (i *StubInstaller) Install(emit dtc.LineSink) bool {
	i.Calls++
	for _, line := range i.Output {
		emit(line)
	}
	if i.OnInstall != nil {
		i.OnInstall()
	}
	return i.Succeed
}

// StubCommandRunner replays scripted output lines and an exit code
// instead of starting a real process, and records every invocation.
type StubCommandRunner struct {
	Lines    []string
	ExitCode int
	Err      error

	// Recorded from the last invocation.
	Name string
	Args []string

	Calls int
}

func (r *StubCommandRunner) Run(name string, args []string, emit dtc.LineSink) (int, error) {
	r.Calls++
	r.Name = name
	r.Args = append([]string(nil), args...)
	for _, line := range r.Lines {
		emit(line)
	}
	if r.Err != nil {
		return -1, r.Err
	}
	return r.ExitCode, nil
}

// Compile-time checks against the engine interfaces
var (
	_ dtc.ToolResolver  = (*StubResolver)(nil)
	_ dtc.ToolInstaller = (*StubInstaller)(nil)
	_ dtc.CommandRunner = (*StubCommandRunner)(nil)
)
