package filesystem

import (
	"os"
	"unicode/utf8"

	logger "github.com/sirupsen/logrus"
)

const defaultFileMode = 0o644

// FileRepository reads and writes whole files as UTF-8 text. Unreadable,
// undecodable, or unwritable files degrade to a warning so a single bad
// file never aborts a hook run.
type FileRepository struct{}

// NewFileRepository creates a new FileRepository.
func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

// Read returns the content of path, or false when the file cannot be
// read or is not valid UTF-8.
func (it *FileRepository) Read(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warnf("Cannot read %s. Skipping.", path)
		return "", false
	}
	if !utf8.Valid(data) {
		logger.Warnf("Cannot decode %s with 'utf-8'. Skipping.", path)
		return "", false
	}
	return string(data), true
}

// Write overwrites path with content, preserving the existing file mode.
func (it *FileRepository) Write(path string, content string) bool {
	mode := os.FileMode(defaultFileMode)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		logger.Warnf("Cannot write %s. Skipping.", path)
		return false
	}
	return true
}

// Exists reports whether path exists.
func (it *FileRepository) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
