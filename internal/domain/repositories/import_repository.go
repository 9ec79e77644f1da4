package repositories

import (
	"github.com/rios0rios0/githooks/internal/domain/entities"
)

// ImportParser extracts the top-level "from MODULE import NAMES"
// statements from a source file. Nested statements inside functions or
// classes are not reported.
type ImportParser interface {
	ParseImports(content string) ([]entities.ImportStatement, error)
}

// ModuleResolver classifies imported names without importing anything.
// Resolution is best-effort: the checking environment may lack the
// dependency, in which case everything stays unknown.
type ModuleResolver interface {
	// SetSearchPaths replaces the roots searched for project modules.
	SetSearchPaths(roots []string)

	// ResolveModule reports whether the dotted module path is locatable.
	ResolveModule(module string) bool

	// ResolveName classifies name as a submodule of module. Callers must
	// only pass modules for which ResolveModule returned true.
	ResolveName(module, name string) entities.Classification
}
