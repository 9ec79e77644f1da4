package git_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/githooks/internal/infrastructure/repositories/git"
)

// fixture is a temporary git repository with helpers to build history.
type fixture struct {
	t    *testing.T
	dir  string
	repo *gogit.Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	return &fixture{t: t, dir: dir, repo: repo}
}

func (f *fixture) write(name, content string) string {
	f.t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(f.t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (f *fixture) stage(names ...string) {
	f.t.Helper()
	worktree, err := f.repo.Worktree()
	require.NoError(f.t, err)
	for _, name := range names {
		_, err = worktree.Add(name)
		require.NoError(f.t, err)
	}
}

func (f *fixture) commit(message string, when time.Time) plumbing.Hash {
	f.t.Helper()
	worktree, err := f.repo.Worktree()
	require.NoError(f.t, err)
	hash, err := worktree.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{Name: "fake", Email: "fake@example.com", When: when},
	})
	require.NoError(f.t, err)
	return hash
}

// trackUpstream points refs/remotes/origin/master at the given commit and
// configures the checked-out branch to track it.
func (f *fixture) trackUpstream(hash plumbing.Hash) {
	f.t.Helper()
	remoteRef := plumbing.NewRemoteReferenceName("origin", "master")
	require.NoError(f.t, f.repo.Storer.SetReference(plumbing.NewHashReference(remoteRef, hash)))
	require.NoError(f.t, f.repo.CreateBranch(&config.Branch{
		Name:   "master",
		Remote: "origin",
		Merge:  plumbing.NewBranchReferenceName("master"),
	}))
}

func TestGitSourceControlRepositoryChanges(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should fall back to the previous commit without an upstream", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		aPath := f.write("a.py", "print(1)\n")
		f.write("b.py", "print(2)\n")
		f.stage("a.py", "b.py")
		f.commit("initial", now)
		f.write("a.py", "print(1)\nprint(3)\n")
		f.stage("a.py")
		f.commit("change a", now.Add(time.Hour))
		repository, err := git.NewAt(f.dir)
		require.NoError(t, err)

		// when
		changes, err := repository.Changes(aPath)

		// then
		require.NoError(t, err)
		assert.Contains(t, changes, "+print(3)")
	})

	t.Run("should include staged but uncommitted changes in the fallback diff", func(t *testing.T) {
		t.Parallel()

		// given: a pre-commit style state, edits staged on top of HEAD
		f := newFixture(t)
		aPath := f.write("a.py", "one\n")
		f.stage("a.py")
		f.commit("initial", now)
		f.write("b.py", "other\n")
		f.stage("b.py")
		f.commit("add b", now.Add(time.Hour))
		f.write("a.py", "one\ntwo\n")
		f.stage("a.py")
		repository, err := git.NewAt(f.dir)
		require.NoError(t, err)

		// when
		changes, err := repository.Changes(aPath)

		// then
		require.NoError(t, err)
		assert.Contains(t, changes, "+two")
	})

	t.Run("should include unstaged worktree edits in the fallback diff", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		aPath := f.write("a.py", "one\n")
		f.write("b.py", "other\n")
		f.stage("a.py", "b.py")
		f.commit("initial", now)
		f.write("b.py", "other\nmore\n")
		f.stage("b.py")
		f.commit("change b", now.Add(time.Hour))
		f.write("a.py", "one\ntwo\n")
		repository, err := git.NewAt(f.dir)
		require.NoError(t, err)

		// when
		changes, err := repository.Changes(aPath)

		// then
		require.NoError(t, err)
		assert.Contains(t, changes, "+two")
	})

	t.Run("should return an empty diff for an untouched file", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		f.write("a.py", "print(1)\n")
		bPath := f.write("b.py", "print(2)\n")
		f.stage("a.py", "b.py")
		f.commit("initial", now)
		f.write("a.py", "print(1)\nprint(3)\n")
		f.stage("a.py")
		f.commit("change a", now.Add(time.Hour))
		repository, err := git.NewAt(f.dir)
		require.NoError(t, err)

		// when
		changes, err := repository.Changes(bPath)

		// then
		require.NoError(t, err)
		assert.Empty(t, changes)
	})

	t.Run("should diff against the upstream tracking ref when configured", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		aPath := f.write("a.py", "one\n")
		f.stage("a.py")
		base := f.commit("initial", now)
		f.trackUpstream(base)
		f.write("a.py", "one\ntwo\n")
		f.stage("a.py")
		f.commit("second", now.Add(time.Hour))
		f.write("a.py", "one\ntwo\nthree\n")
		f.stage("a.py")
		f.commit("third", now.Add(2*time.Hour))
		repository, err := git.NewAt(f.dir)
		require.NoError(t, err)

		// when
		changes, err := repository.Changes(aPath)

		// then: the whole upstream..HEAD range, not just the last commit
		require.NoError(t, err)
		assert.Contains(t, changes, "+two")
		assert.Contains(t, changes, "+three")
	})

	t.Run("should fail on a root commit without an upstream", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		aPath := f.write("a.py", "print(1)\n")
		f.stage("a.py")
		f.commit("initial", now)
		repository, err := git.NewAt(f.dir)
		require.NoError(t, err)

		// when
		_, err = repository.Changes(aPath)

		// then
		require.Error(t, err)
	})
}

func TestGitSourceControlRepositoryLastAuthoredYear(t *testing.T) {
	t.Parallel()

	t.Run("should return the year of the newest commit touching the file", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		aPath := f.write("a.py", "print(1)\n")
		f.stage("a.py")
		f.commit("initial", time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC))
		f.write("b.py", "print(2)\n")
		f.stage("b.py")
		f.commit("add b", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
		repository, err := git.NewAt(f.dir)
		require.NoError(t, err)

		// when
		year, inHistory, err := repository.LastAuthoredYear(aPath)

		// then: the commit touching b.py does not count for a.py
		require.NoError(t, err)
		require.True(t, inHistory)
		assert.Equal(t, 2020, year)
	})

	t.Run("should report a file without history", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		f.write("a.py", "print(1)\n")
		f.stage("a.py")
		f.commit("initial", time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC))
		freshPath := f.write("fresh.py", "print(3)\n")
		repository, err := git.NewAt(f.dir)
		require.NoError(t, err)

		// when
		_, inHistory, err := repository.LastAuthoredYear(freshPath)

		// then
		require.NoError(t, err)
		assert.False(t, inHistory)
	})
}

func TestGitSourceControlRepositoryIsStaged(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should report a staged modification", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		aPath := f.write("a.py", "print(1)\n")
		f.stage("a.py")
		f.commit("initial", now)
		f.write("a.py", "print(1)\nprint(2)\n")
		f.stage("a.py")
		repository, err := git.NewAt(f.dir)
		require.NoError(t, err)

		// when
		staged, err := repository.IsStaged(aPath)

		// then
		require.NoError(t, err)
		assert.True(t, staged)
	})

	t.Run("should not report a committed file", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		aPath := f.write("a.py", "print(1)\n")
		f.stage("a.py")
		f.commit("initial", now)
		repository, err := git.NewAt(f.dir)
		require.NoError(t, err)

		// when
		staged, err := repository.IsStaged(aPath)

		// then
		require.NoError(t, err)
		assert.False(t, staged)
	})

	t.Run("should not report an untracked file", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		f.write("a.py", "print(1)\n")
		f.stage("a.py")
		f.commit("initial", now)
		freshPath := f.write("fresh.py", "print(3)\n")
		repository, err := git.NewAt(f.dir)
		require.NoError(t, err)

		// when
		staged, err := repository.IsStaged(freshPath)

		// then
		require.NoError(t, err)
		assert.False(t, staged)
	})
}

func TestGitSourceControlRepositoryRelPath(t *testing.T) {
	t.Parallel()

	t.Run("should normalize absolute paths to slash-separated repo paths", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		f.write("a.py", "print(1)\n")
		f.stage("a.py")
		f.commit("initial", time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC))
		repository, err := git.NewAt(f.dir)
		require.NoError(t, err)

		// when
		rel, err := repository.RelPath(filepath.Join(f.dir, "pkg", "a.py"))

		// then
		require.NoError(t, err)
		assert.Equal(t, "pkg/a.py", rel)
	})
}
