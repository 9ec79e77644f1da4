package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/githooks/internal/domain/commands"
	"github.com/rios0rios0/githooks/internal/domain/entities"
	testdoubles "github.com/rios0rios0/githooks/test"
)

func TestVersionBumpCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should pass when the version file diff contains a version change", func(t *testing.T) {
		t.Parallel()

		// given
		sourceControl := &testdoubles.SpySourceControlRepository{
			Diffs: map[string]string{
				"pkg/main.py": "+changed line",
				"pkg/pyproject.toml": `-version = "1.0.0"
+version = "1.0.1"`,
			},
		}
		files := testdoubles.NewFakeFileRepository()
		files.Contents["pkg/pyproject.toml"] = `[project]
version = "1.0.1"
`
		out := &bytes.Buffer{}
		cmd := commands.NewVersionBumpCommand(sourceControl, files, out)

		// when
		err := cmd.Execute(context.Background(), entities.DefaultSettings(), commands.VersionBumpOptions{
			Files: []string{"pkg/main.py"},
		})

		// then
		require.NoError(t, err)
		assert.Empty(t, out.String())
	})

	t.Run("should fail when the version file was not bumped", func(t *testing.T) {
		t.Parallel()

		// given
		sourceControl := &testdoubles.SpySourceControlRepository{
			Diffs: map[string]string{
				"pkg/main.py": "+changed line",
			},
		}
		files := testdoubles.NewFakeFileRepository()
		files.Contents["pkg/pyproject.toml"] = `version = "1.0.0"` + "\n"
		out := &bytes.Buffer{}
		cmd := commands.NewVersionBumpCommand(sourceControl, files, out)

		// when
		err := cmd.Execute(context.Background(), entities.DefaultSettings(), commands.VersionBumpOptions{
			Files: []string{"pkg/main.py"},
		})

		// then
		require.ErrorIs(t, err, entities.ErrChecksFailed)
		assert.Equal(t, "Version bumped required in pkg/pyproject.toml\n", out.String())
	})

	t.Run("should pass when the version file has no version entry", func(t *testing.T) {
		t.Parallel()

		// given
		sourceControl := &testdoubles.SpySourceControlRepository{
			Diffs: map[string]string{"pkg/main.py": "+changed line"},
		}
		files := testdoubles.NewFakeFileRepository()
		files.Contents["pkg/setup.cfg"] = "[metadata]\nname = pkg\n"
		out := &bytes.Buffer{}
		cmd := commands.NewVersionBumpCommand(sourceControl, files, out)

		// when
		err := cmd.Execute(context.Background(), entities.DefaultSettings(), commands.VersionBumpOptions{
			Files: []string{"pkg/main.py"},
		})

		// then
		require.NoError(t, err)
		assert.Empty(t, out.String())
	})

	t.Run("should skip directories whose files have no real changes", func(t *testing.T) {
		t.Parallel()

		// given
		sourceControl := &testdoubles.SpySourceControlRepository{
			Diffs: map[string]string{}, // empty diff for every path
		}
		files := testdoubles.NewFakeFileRepository()
		files.Contents["pkg/pyproject.toml"] = `version = "1.0.0"` + "\n"
		out := &bytes.Buffer{}
		cmd := commands.NewVersionBumpCommand(sourceControl, files, out)

		// when
		err := cmd.Execute(context.Background(), entities.DefaultSettings(), commands.VersionBumpOptions{
			Files: []string{"pkg/main.py"},
		})

		// then
		require.NoError(t, err)
		assert.Empty(t, out.String())
	})

	t.Run("should check every ancestor directory of a changed file", func(t *testing.T) {
		t.Parallel()

		// given
		sourceControl := &testdoubles.SpySourceControlRepository{
			Diffs: map[string]string{
				"services/api/handlers/users.py": "+changed line",
			},
		}
		files := testdoubles.NewFakeFileRepository()
		files.Contents["services/api/pyproject.toml"] = `version = "2.0.0"` + "\n"
		out := &bytes.Buffer{}
		cmd := commands.NewVersionBumpCommand(sourceControl, files, out)

		// when
		err := cmd.Execute(context.Background(), entities.DefaultSettings(), commands.VersionBumpOptions{
			Files: []string{"services/api/handlers/users.py"},
		})

		// then
		require.ErrorIs(t, err, entities.ErrChecksFailed)
		assert.Contains(t, out.String(), "Version bumped required in services/api/pyproject.toml")
	})

	t.Run("should match unquoted version entries", func(t *testing.T) {
		t.Parallel()

		// given
		sourceControl := &testdoubles.SpySourceControlRepository{
			Diffs: map[string]string{"pkg/main.py": "+changed line"},
		}
		files := testdoubles.NewFakeFileRepository()
		files.Contents["pkg/setup.cfg"] = "[metadata]\nversion = 1.2\n"
		out := &bytes.Buffer{}
		cmd := commands.NewVersionBumpCommand(sourceControl, files, out)

		// when
		err := cmd.Execute(context.Background(), entities.DefaultSettings(), commands.VersionBumpOptions{
			Files: []string{"pkg/main.py"},
		})

		// then
		require.ErrorIs(t, err, entities.ErrChecksFailed)
	})

	t.Run("should respect the configured version file list", func(t *testing.T) {
		t.Parallel()

		// given
		sourceControl := &testdoubles.SpySourceControlRepository{
			Diffs: map[string]string{"pkg/main.py": "+changed line"},
		}
		files := testdoubles.NewFakeFileRepository()
		files.Contents["pkg/setup.py"] = `setup(version = "1.0.0")` + "\n"
		out := &bytes.Buffer{}
		cmd := commands.NewVersionBumpCommand(sourceControl, files, out)

		settings := entities.DefaultSettings()
		settings.VersionFiles = []string{"setup.py"}

		// when
		err := cmd.Execute(context.Background(), settings, commands.VersionBumpOptions{
			Files: []string{"pkg/main.py"},
		})

		// then
		require.ErrorIs(t, err, entities.ErrChecksFailed)
		assert.Contains(t, out.String(), "Version bumped required in pkg/setup.py")
	})
}
