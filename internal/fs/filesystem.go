package fs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"dtc-go/internal/dtc"
)

// OSFilesystemManager is the real filesystem implementation of
// dtc.FilesystemManager. It performs actual filesystem operations
// using the os package.
type OSFilesystemManager struct{}

// NewOSFilesystemManager creates a filesystem manager that operates on
// the real filesystem.
func NewOSFilesystemManager() *OSFilesystemManager {
	return &OSFilesystemManager{}
}

// Resolve validates a raw path and returns a Path object. An empty
// path is rejected rather than resolved to the working directory.
func (m *OSFilesystemManager) Resolve(rawPath string) (*dtc.Path, error) {
	if rawPath == "" {
		return nil, fmt.Errorf("path is empty")
	}

	absPath, err := filepath.Abs(rawPath)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("stat path: %w", err)
	}

	mode := info.Mode()
	if mode&os.ModeSymlink != 0 {
		return nil, fmt.Errorf("symlinks not supported: %s", absPath)
	}
	if mode&os.ModeDevice != 0 {
		return nil, fmt.Errorf("device files not supported: %s", absPath)
	}
	if mode&os.ModeNamedPipe != 0 {
		return nil, fmt.Errorf("named pipes not supported: %s", absPath)
	}
	if mode&os.ModeSocket != 0 {
		return nil, fmt.Errorf("sockets not supported: %s", absPath)
	}

	return dtc.NewPath(absPath, info.IsDir()), nil
}

// CountFiles reports how many regular files under the directory carry
// one of the given extension tokens (lowercase, dot-free). An empty
// token list counts every regular file. The walk is recursive to
// match the scope the external tool will traverse.
func (m *OSFilesystemManager) CountFiles(path *dtc.Path, extensions []string) (int, error) {
	if !path.IsDir() {
		return 0, fmt.Errorf("path is not a directory: %s", path.String())
	}

	count := 0
	err := filepath.WalkDir(path.String(), func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if matchesExtension(p, extensions) {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("walking directory: %w", err)
	}

	return count, nil
}

// matchesExtension reports whether the file name carries one of the
// extension tokens. Comparison is case-insensitive against the
// dot-free token form.
func matchesExtension(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	for _, want := range extensions {
		if ext == want {
			return true
		}
	}
	return false
}

// Compile-time check that OSFilesystemManager implements dtc.FilesystemManager
var _ dtc.FilesystemManager = (*OSFilesystemManager)(nil)
