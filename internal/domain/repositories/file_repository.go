package repositories

// FileRepository abstracts whole-file text access with the degradation
// semantics the hooks rely on: unreadable or undecodable files are skipped
// with a warning instead of aborting the run.
type FileRepository interface {
	// Read returns the UTF-8 content of path. The second result is false
	// when the file cannot be read or decoded; the caller treats that as
	// a skip, not a failure.
	Read(path string) (string, bool)

	// Write overwrites path with content. A permission failure is logged
	// and reported as false.
	Write(path string, content string) bool

	// Exists reports whether path exists.
	Exists(path string) bool
}
