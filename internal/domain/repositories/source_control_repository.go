package repositories

// SourceControlRepository abstracts the read-only version-control queries
// the hooks need. Implementations must never mutate the repository; the
// handle is request-scoped and reused across every file of an invocation.
type SourceControlRepository interface {
	// Changes returns the textual diff of path between the upstream
	// tracking ref and HEAD, falling back to the previous commit when no
	// upstream is configured or HEAD is detached. An empty string means
	// no changes were detected for the path.
	Changes(path string) (string, error)

	// LastAuthoredYear returns the UTC year of the newest commit touching
	// path. The second result is false when the path has no history.
	LastAuthoredYear(path string) (int, bool, error)

	// IsStaged reports whether path has changes recorded in the index
	// relative to HEAD.
	IsStaged(path string) (bool, error)
}
