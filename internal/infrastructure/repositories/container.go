package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/githooks/internal/domain/repositories"
	"github.com/rios0rios0/githooks/internal/infrastructure/repositories/filesystem"
	gitRepo "github.com/rios0rios0/githooks/internal/infrastructure/repositories/git"
	"github.com/rios0rios0/githooks/internal/infrastructure/repositories/pythonparser"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register implementation constructors
	if err := container.Provide(gitRepo.NewGitSourceControlRepository); err != nil {
		return err
	}
	if err := container.Provide(filesystem.NewFileRepository); err != nil {
		return err
	}
	if err := container.Provide(pythonparser.NewTreeSitterImportParser); err != nil {
		return err
	}
	if err := container.Provide(func() *pythonparser.PathModuleResolver {
		return pythonparser.NewPathModuleResolver([]string{".", "src"})
	}); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(
		func(impl *gitRepo.GitSourceControlRepository) domainRepos.SourceControlRepository {
			return impl
		},
	); err != nil {
		return err
	}
	if err := container.Provide(func(impl *filesystem.FileRepository) domainRepos.FileRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *pythonparser.TreeSitterImportParser) domainRepos.ImportParser {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *pythonparser.PathModuleResolver) domainRepos.ModuleResolver {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
