package commands

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/githooks/internal/domain/entities"
	"github.com/rios0rios0/githooks/internal/domain/repositories"
)

// VersionBump is the interface for the check-version-bumped command.
type VersionBump interface {
	Execute(ctx context.Context, settings *entities.Settings, opts VersionBumpOptions) error
}

// VersionBumpOptions holds runtime options for a version bump check.
type VersionBumpOptions struct {
	Files []string
}

// versionPattern matches a version declaration such as
// `version = "1.2.3"` with optional quotes and up to four segments.
var versionPattern = regexp.MustCompile(
	`version = "?(([0-9]+)\.?([0-9+])?\.?([0-9+])?\.?([0-9+])?)"?`,
)

// VersionBumpCommand verifies that a version-declaration file was bumped
// whenever other files in its directory tree changed.
type VersionBumpCommand struct {
	sourceControl repositories.SourceControlRepository
	files         repositories.FileRepository
	out           io.Writer
}

// NewVersionBumpCommand creates a new VersionBumpCommand.
func NewVersionBumpCommand(
	sourceControl repositories.SourceControlRepository,
	files repositories.FileRepository,
	out io.Writer,
) *VersionBumpCommand {
	return &VersionBumpCommand{
		sourceControl: sourceControl,
		files:         files,
		out:           out,
	}
}

// Execute checks every directory touched by a real change for a version
// file whose version entry was not bumped. It returns
// entities.ErrChecksFailed when at least one file needs a bump.
func (it *VersionBumpCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts VersionBumpOptions,
) error {
	pathsToCheck := make(map[string]struct{})
	for _, filename := range opts.Files {
		changes, err := it.sourceControl.Changes(filename)
		if err != nil {
			return fmt.Errorf("failed to diff %s: %w", filename, err)
		}
		if changes == "" {
			// Only filenames with actual changes compared to upstream
			// (or the previous commit on a detached HEAD) matter.
			continue
		}
		// Bubble up from the file to every ancestor directory,
		// excluding the repository root.
		dir := path.Dir(filepath.ToSlash(filename))
		for dir != "." && dir != "/" {
			if _, seen := pathsToCheck[dir]; seen {
				break
			}
			pathsToCheck[dir] = struct{}{}
			dir = path.Dir(dir)
		}
	}

	failed := false
	for dir := range pathsToCheck {
		for _, versionFile := range settings.VersionFiles {
			versionFilePath := path.Join(dir, versionFile)
			if !it.files.Exists(versionFilePath) {
				continue
			}
			ok, err := it.checkVersionFile(versionFilePath)
			if err != nil {
				return err
			}
			if !ok {
				failed = true
			}
		}
	}

	if failed {
		return entities.ErrChecksFailed
	}
	return nil
}

// checkVersionFile checks whether the version entry in a single version
// file has been modified. Files without a version entry are irrelevant
// and pass silently.
func (it *VersionBumpCommand) checkVersionFile(versionFile string) (bool, error) {
	content, readable := it.files.Read(versionFile)
	if !readable {
		return true, nil
	}
	if !versionPattern.MatchString(content) {
		// File doesn't have a version entry.
		return true, nil
	}

	changes, err := it.sourceControl.Changes(versionFile)
	if err != nil {
		return false, fmt.Errorf("failed to diff %s: %w", versionFile, err)
	}
	if versionPattern.MatchString(changes) {
		// Version appears in the diff, so it has been changed.
		it.warnOnNonIncreasingBump(versionFile, changes)
		return true, nil
	}

	fmt.Fprintf(it.out, "Version bumped required in %s\n", versionFile)
	return false, nil
}

// warnOnNonIncreasingBump extracts the removed and added version from the
// diff text and logs a warning when the new version does not compare
// greater. Purely informational; never affects the exit code.
func (it *VersionBumpCommand) warnOnNonIncreasingBump(versionFile, changes string) {
	var oldVer, newVer string
	for _, line := range strings.Split(changes, "\n") {
		if len(line) < 2 || strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++") {
			continue
		}
		m := versionPattern.FindStringSubmatch(line[1:])
		if m == nil {
			continue
		}
		switch line[0] {
		case '-':
			oldVer = m[1]
		case '+':
			newVer = m[1]
		}
	}
	if oldVer == "" || newVer == "" {
		return
	}
	if !semver.IsValid("v"+oldVer) || !semver.IsValid("v"+newVer) {
		return
	}
	if semver.Compare("v"+newVer, "v"+oldVer) <= 0 {
		logger.Warnf(
			"version in %s changed but did not increase (%s -> %s)",
			versionFile, oldVer, newVer,
		)
	}
}
