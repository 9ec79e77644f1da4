package git

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	godiff "github.com/go-git/go-git/v5/utils/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// GitSourceControlRepository implements
// repositories.SourceControlRepository on top of go-git. The handle is
// read-only and safe to reuse across every file of an invocation.
type GitSourceControlRepository struct {
	repo *gogit.Repository
	root string
}

// NewGitSourceControlRepository opens the repository enclosing the
// current working directory, walking up to find the .git directory.
func NewGitSourceControlRepository() (*GitSourceControlRepository, error) {
	repo, err := gogit.PlainOpenWithOptions(".", &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}
	return newFromRepository(repo)
}

// NewAt opens the repository at the given directory. Used by tests.
func NewAt(dir string) (*GitSourceControlRepository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %s: %w", dir, err)
	}
	return newFromRepository(repo)
}

func newFromRepository(repo *gogit.Repository) (*GitSourceControlRepository, error) {
	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve worktree: %w", err)
	}
	return &GitSourceControlRepository{
		repo: repo,
		root: worktree.Filesystem.Root(),
	}, nil
}

// Changes returns the diff of path between the upstream tracking ref and
// HEAD. When no upstream is configured or HEAD is detached it falls back
// to comparing the previous commit against the current working tree, so
// staged-but-uncommitted edits still count as changes; a failure of the
// fallback propagates to the caller.
func (it *GitSourceControlRepository) Changes(path string) (string, error) {
	rel, err := it.RelPath(path)
	if err != nil {
		return "", err
	}

	head, err := it.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	headCommit, err := it.repo.CommitObject(head.Hash())
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD commit: %w", err)
	}

	baseCommit, upstreamErr := it.upstreamCommit(head)
	if upstreamErr != nil {
		// Upstream is not set or running on a detached HEAD.
		// Fall back to comparing against the previous commit.
		baseCommit, err = headCommit.Parent(0)
		if err != nil {
			return "", fmt.Errorf("failed to resolve previous commit: %w", err)
		}
		return it.diffWorktree(baseCommit, rel)
	}

	return it.diffPath(baseCommit, headCommit, rel)
}

// diffWorktree renders the changed lines of a single path between a
// commit and the current working tree.
func (it *GitSourceControlRepository) diffWorktree(base *object.Commit, rel string) (string, error) {
	baseContent, err := commitFileContent(base, rel)
	if err != nil {
		return "", err
	}

	current := ""
	data, readErr := os.ReadFile(filepath.Join(it.root, filepath.FromSlash(rel)))
	if readErr == nil {
		current = string(data)
	} else if !os.IsNotExist(readErr) {
		return "", fmt.Errorf("failed to read worktree file %s: %w", rel, readErr)
	}

	if baseContent == current {
		return "", nil
	}

	var out strings.Builder
	for _, chunk := range godiff.Do(baseContent, current) {
		var prefix string
		switch chunk.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(chunk.Text, "\n"), "\n") {
			out.WriteString(prefix)
			out.WriteString(line)
			out.WriteString("\n")
		}
	}
	return out.String(), nil
}

// commitFileContent returns the content of rel in the commit's tree, or
// empty when the path did not exist yet.
func commitFileContent(commit *object.Commit, rel string) (string, error) {
	file, err := commit.File(rel)
	if errors.Is(err, object.ErrFileNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s from commit %s: %w", rel, commit.Hash, err)
	}
	content, err := file.Contents()
	if err != nil {
		return "", fmt.Errorf("failed to read %s from commit %s: %w", rel, commit.Hash, err)
	}
	return content, nil
}

// upstreamCommit resolves the commit behind the upstream tracking ref of
// the checked-out branch.
func (it *GitSourceControlRepository) upstreamCommit(head *plumbing.Reference) (*object.Commit, error) {
	if !head.Name().IsBranch() {
		return nil, errors.New("detached HEAD has no upstream")
	}

	branch, err := it.repo.Branch(head.Name().Short())
	if err != nil {
		return nil, fmt.Errorf("branch %s has no configuration: %w", head.Name().Short(), err)
	}
	if branch.Remote == "" || branch.Merge == "" {
		return nil, fmt.Errorf("branch %s has no upstream configured", head.Name().Short())
	}

	remoteRef := plumbing.NewRemoteReferenceName(branch.Remote, branch.Merge.Short())
	ref, err := it.repo.Reference(remoteRef, true)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", remoteRef, err)
	}

	commit, err := it.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream commit: %w", err)
	}
	return commit, nil
}

// diffPath renders the unified diff of a single path between two commits.
func (it *GitSourceControlRepository) diffPath(
	base, head *object.Commit,
	rel string,
) (string, error) {
	baseTree, err := base.Tree()
	if err != nil {
		return "", fmt.Errorf("failed to read base tree: %w", err)
	}
	headTree, err := head.Tree()
	if err != nil {
		return "", fmt.Errorf("failed to read head tree: %w", err)
	}

	changes, err := object.DiffTree(baseTree, headTree)
	if err != nil {
		return "", fmt.Errorf("failed to diff trees: %w", err)
	}

	var out strings.Builder
	for _, change := range changes {
		if change.From.Name != rel && change.To.Name != rel {
			continue
		}
		patch, patchErr := change.Patch()
		if patchErr != nil {
			return "", fmt.Errorf("failed to render patch for %s: %w", rel, patchErr)
		}
		out.WriteString(patch.String())
	}
	return out.String(), nil
}

// LastAuthoredYear returns the UTC year of the newest commit touching
// path, or false when the path has no history.
func (it *GitSourceControlRepository) LastAuthoredYear(path string) (int, bool, error) {
	rel, err := it.RelPath(path)
	if err != nil {
		return 0, false, err
	}

	iter, err := it.repo.Log(&gogit.LogOptions{FileName: &rel})
	if err != nil {
		return 0, false, fmt.Errorf("failed to read log for %s: %w", rel, err)
	}
	defer iter.Close()

	commit, err := iter.Next()
	if errors.Is(err, io.EOF) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read log for %s: %w", rel, err)
	}
	return commit.Author.When.UTC().Year(), true, nil
}

// IsStaged reports whether path has changes recorded in the index
// relative to HEAD.
func (it *GitSourceControlRepository) IsStaged(path string) (bool, error) {
	rel, err := it.RelPath(path)
	if err != nil {
		return false, err
	}

	worktree, err := it.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to resolve worktree: %w", err)
	}
	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to read status: %w", err)
	}

	staging := status.File(rel).Staging
	return staging != gogit.Unmodified && staging != gogit.Untracked, nil
}

// RelPath normalizes an absolute or CWD-relative path to a
// slash-separated path relative to the worktree root.
func (it *GitSourceControlRepository) RelPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %s: %w", path, err)
	}
	rel, err := filepath.Rel(it.root, abs)
	if err != nil {
		return "", fmt.Errorf("%s is outside the repository: %w", path, err)
	}
	return filepath.ToSlash(rel), nil
}
