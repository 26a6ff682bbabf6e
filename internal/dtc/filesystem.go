package dtc

// FilesystemManager abstracts the source-root checks the caller runs
// before handing a request to the engine. The engine itself never
// walks the tree — traversal belongs to the external tool — but the
// pre-flight validation and scope reporting go through this seam so
// tests never touch the real filesystem.
type FilesystemManager interface {
	// Resolve validates a raw path and returns a Path object.
	// It resolves the path to an absolute path, stats it, and
	// validates it's a regular file or directory.
	Resolve(rawPath string) (*Path, error)

	// CountFiles reports how many regular files under the directory
	// are in scope for the given extension tokens. An empty token
	// list means every file counts.
	CountFiles(path *Path, extensions []string) (int, error)
}
