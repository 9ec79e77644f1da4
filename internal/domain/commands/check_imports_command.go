package commands

import (
	"context"
	"fmt"
	"io"
	"unicode"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/githooks/internal/domain/entities"
	"github.com/rios0rios0/githooks/internal/domain/repositories"
)

// futureModule is Python's future-compatibility pseudo-module. It binds
// compiler directives, not submodules, so it is always skipped.
const futureModule = "__future__"

// ModuleImports is the interface for the check-only-module-imports command.
type ModuleImports interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ModuleImportsOptions) error
}

// ModuleImportsOptions holds runtime options for an import shape check.
type ModuleImportsOptions struct {
	Files       []string
	SkipModules []string
}

// ModuleImportsCommand statically verifies that "from X import Y" style
// imports only reference importable submodules, not objects. Resolution
// is best-effort: modules the resolver cannot locate fall back to a
// naming-convention heuristic.
type ModuleImportsCommand struct {
	files    repositories.FileRepository
	parser   repositories.ImportParser
	resolver repositories.ModuleResolver
	out      io.Writer
}

// NewModuleImportsCommand creates a new ModuleImportsCommand.
func NewModuleImportsCommand(
	files repositories.FileRepository,
	parser repositories.ImportParser,
	resolver repositories.ModuleResolver,
	out io.Writer,
) *ModuleImportsCommand {
	return &ModuleImportsCommand{
		files:    files,
		parser:   parser,
		resolver: resolver,
		out:      out,
	}
}

// Execute checks each file and returns entities.ErrChecksFailed when any
// file contained a flagged import statement.
func (it *ModuleImportsCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts ModuleImportsOptions,
) error {
	if len(settings.ModulePaths) > 0 {
		it.resolver.SetSearchPaths(settings.ModulePaths)
	}

	skip := make(map[string]struct{})
	skip[futureModule] = struct{}{}
	for _, module := range settings.SkipModules {
		skip[module] = struct{}{}
	}
	for _, module := range opts.SkipModules {
		skip[module] = struct{}{}
	}

	failed := false
	for _, filename := range opts.Files {
		if !it.checkFile(filename, skip) {
			failed = true
		}
	}

	if failed {
		return entities.ErrChecksFailed
	}
	return nil
}

// checkFile scans the top-level import-from statements of one file.
func (it *ModuleImportsCommand) checkFile(filename string, skip map[string]struct{}) bool {
	content, readable := it.files.Read(filename)
	if !readable {
		return true
	}

	statements, err := it.parser.ParseImports(content)
	if err != nil {
		logger.Warnf("Cannot parse %s: %v. Skipping.", filename, err)
		return true
	}

	ok := true
	for _, statement := range statements {
		if _, skipped := skip[statement.Module]; skipped {
			continue
		}
		if statement.Relative() {
			// Relative imports need package context to resolve.
			continue
		}

		if !it.resolver.ResolveModule(statement.Module) {
			// The module is not locatable in this environment. Fall back
			// to the convention that modules are all lowercase to catch
			// some object imports anyway.
			for _, name := range statement.Names {
				if name != "*" && startsUpper(name) {
					it.report(statement, filename)
					ok = false
				}
			}
			continue
		}

		for _, name := range statement.Names {
			if name == "*" {
				continue
			}
			if it.resolver.ResolveName(statement.Module, name) == entities.ClassificationNonModule {
				it.report(statement, filename)
				ok = false
			}
		}
	}
	return ok
}

func (it *ModuleImportsCommand) report(statement entities.ImportStatement, filename string) {
	fmt.Fprintf(
		it.out,
		"Found non-module import: '%s' in '%s:%d'\n",
		statement.Text, filename, statement.EndLine,
	)
}

func startsUpper(name string) bool {
	for _, r := range name {
		return unicode.IsUpper(r)
	}
	return false
}
