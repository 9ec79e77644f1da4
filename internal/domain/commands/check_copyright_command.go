package commands

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/githooks/internal/domain/entities"
	"github.com/rios0rios0/githooks/internal/domain/repositories"
)

// Copyright is the interface for the check-copyright command.
type Copyright interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CopyrightOptions) error
}

// CopyrightOptions holds runtime options for a copyright check.
type CopyrightOptions struct {
	Files []string
	Owner string
	// Update enables rewriting stale headers and inserting missing ones.
	Update bool
}

// CopyrightCommand finds, validates, and updates the copyright header of
// each file, based on its extension and modification recency.
type CopyrightCommand struct {
	sourceControl repositories.SourceControlRepository
	files         repositories.FileRepository
	out           io.Writer
}

// NewCopyrightCommand creates a new CopyrightCommand.
func NewCopyrightCommand(
	sourceControl repositories.SourceControlRepository,
	files repositories.FileRepository,
	out io.Writer,
) *CopyrightCommand {
	return &CopyrightCommand{
		sourceControl: sourceControl,
		files:         files,
		out:           out,
	}
}

// Execute runs the copyright check on each file. It returns
// entities.ErrChecksFailed when at least one file had a missing or stale
// header.
func (it *CopyrightCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts CopyrightOptions,
) error {
	pattern := entities.CopyrightPattern(opts.Owner)
	currentYear := time.Now().Year()

	failed := false
	for _, filename := range opts.Files {
		ok, err := it.checkFile(settings, opts, pattern, filename, currentYear)
		if err != nil {
			return err
		}
		if !ok {
			failed = true
		}
	}

	if failed {
		return entities.ErrChecksFailed
	}
	return nil
}

// checkFile checks the copyright of a single file. Unreadable files are
// skipped and count as success.
func (it *CopyrightCommand) checkFile(
	settings *entities.Settings,
	opts CopyrightOptions,
	pattern *regexp.Regexp,
	filename string,
	currentYear int,
) (bool, error) {
	content, readable := it.files.Read(filename)
	if !readable {
		return true, nil
	}

	header, found := entities.FindCopyright(pattern, content)
	if !found {
		return it.reportMissing(settings, opts, filename, currentYear, content), nil
	}

	// The file has a copyright; decide whether it may be out of date and
	// if so renew it.
	recheck, err := it.shouldRecheck(settings, filename, currentYear)
	if err != nil {
		return false, err
	}
	if !recheck || !header.Stale(currentYear) {
		// Copyright is up-to-date or no qualifying change was found.
		return true, nil
	}

	if opts.Update {
		fmt.Fprintf(it.out, "Updating copyright: %s\n", filename)
		loc := pattern.FindStringIndex(content)
		content = content[:loc[0]] + header.Renewed(currentYear) + content[loc[1]:]
		it.files.Write(filename, content)
	} else {
		fmt.Fprintf(it.out, "Copyright is out-of-date: %s\n", filename)
	}
	return false, nil
}

// shouldRecheck applies the configured staleness policy. Under the
// history policy a file qualifies when it has never been committed, was
// last authored this year, or is currently staged.
func (it *CopyrightCommand) shouldRecheck(
	settings *entities.Settings,
	filename string,
	currentYear int,
) (bool, error) {
	if settings.StalenessPolicy == entities.StalenessDiff {
		changes, err := it.sourceControl.Changes(filename)
		if err != nil {
			return false, fmt.Errorf("failed to diff %s: %w", filename, err)
		}
		return changes != "", nil
	}

	authoredYear, inHistory, err := it.sourceControl.LastAuthoredYear(filename)
	if err != nil {
		logger.Warnf("Cannot read git history for %s: %v. Skipping.", filename, err)
		return false, nil
	}
	if !inHistory {
		logger.Debugf("File is not yet in git: %s", filename)
		return true, nil
	}
	if authoredYear == currentYear {
		logger.Debugf("File was updated this year: %s", filename)
		return true, nil
	}

	staged, stagedErr := it.sourceControl.IsStaged(filename)
	if stagedErr != nil {
		logger.Warnf("Cannot read git index for %s: %v. Skipping.", filename, stagedErr)
		return false, nil
	}
	if staged {
		logger.Debugf("File is staged to be committed: %s", filename)
		return true, nil
	}
	return false, nil
}

// reportMissing handles a file without a copyright header: insert one
// when updating and a comment style is registered, otherwise report it.
// Always counts as a failure.
func (it *CopyrightCommand) reportMissing(
	settings *entities.Settings,
	opts CopyrightOptions,
	filename string,
	currentYear int,
	content string,
) bool {
	style, known := settings.StyleFor(filename)
	if !known || !opts.Update {
		fmt.Fprintf(it.out, "Missing copyright for file %s\n", filename)
		return false
	}

	fmt.Fprintf(it.out, "Adding copyright to %s\n", filename)
	wrapped := style.Wrap(entities.NewCopyrightLine(currentYear, opts.Owner))
	it.files.Write(filename, entities.InsertCopyright(content, wrapped))
	return false
}
