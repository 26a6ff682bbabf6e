// Package exiftool provides the real implementations of the engine's
// tool capabilities: locating the exiftool binary, installing it via
// Homebrew, and executing it with streamed output.
package exiftool

import (
	"os"
	"os/exec"
	"path/filepath"
)

// defaultSearchDirs are checked after PATH lookup fails. GUI-launched
// processes often carry a minimal PATH that misses the Homebrew
// prefixes, so the standard locations are probed directly.
var defaultSearchDirs = []string{
	"/opt/homebrew/bin",
	"/usr/local/bin",
	"/usr/bin",
	"/bin",
	"/usr/sbin",
	"/sbin",
}

// Resolver locates a tool binary on the execution environment.
type Resolver struct {
	binary   string
	lookPath func(string) (string, error)
	stat     func(string) (os.FileInfo, error)
}

// NewResolver creates a resolver for the given binary. binary is
// either a bare command name searched on PATH and the default
// locations, or an absolute path used as-is.
func NewResolver(binary string) *Resolver {
	return &Resolver{
		binary:   binary,
		lookPath: exec.LookPath,
		stat:     os.Stat,
	}
}

// Resolve returns the absolute path of the binary, or ok=false when
// it cannot be found anywhere.
func (r *Resolver) Resolve() (string, bool) {
	if filepath.IsAbs(r.binary) {
		if r.isExecutable(r.binary) {
			return r.binary, true
		}
		return "", false
	}

	if p, err := r.lookPath(r.binary); err == nil {
		return p, true
	}

	for _, dir := range defaultSearchDirs {
		full := filepath.Join(dir, r.binary)
		if r.isExecutable(full) {
			return full, true
		}
	}

	return "", false
}

func (r *Resolver) isExecutable(path string) bool {
	info, err := r.stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}

// NewResolverForTests creates a resolver with injectable lookups.
func NewResolverForTests(binary string, lookPath func(string) (string, error), stat func(string) (os.FileInfo, error)) *Resolver {
	return &Resolver{
		binary:   binary,
		lookPath: lookPath,
		stat:     stat,
	}
}
