package pythonparser

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rios0rios0/githooks/internal/domain/entities"
)

// PathModuleResolver classifies imported names without a Python runtime.
// Project modules are located on the filesystem under the configured
// search roots; standard-library modules come from an embedded table of
// module and submodule names. Anything else stays unknown.
type PathModuleResolver struct {
	roots []string
}

// NewPathModuleResolver creates a resolver searching the given roots.
func NewPathModuleResolver(roots []string) *PathModuleResolver {
	return &PathModuleResolver{roots: roots}
}

// SetSearchPaths replaces the roots searched for project modules.
func (it *PathModuleResolver) SetSearchPaths(roots []string) {
	it.roots = roots
}

// ResolveModule reports whether the dotted module path is locatable,
// either as a project package/file or as a standard-library module.
func (it *PathModuleResolver) ResolveModule(module string) bool {
	if _, _, found := it.locate(module); found {
		return true
	}
	return stdlibModules[module]
}

// ResolveName classifies name as a submodule of module. A plain-file
// module has no submodules, so every name imported from one is an
// object. For standard-library modules the embedded table decides.
func (it *PathModuleResolver) ResolveName(module, name string) entities.Classification {
	if dir, isPackage, found := it.locate(module); found {
		if !isPackage {
			return entities.ClassificationNonModule
		}
		if it.pathIsModule(filepath.Join(dir, name)) {
			return entities.ClassificationModule
		}
		return entities.ClassificationNonModule
	}

	if stdlibModules[module] {
		if stdlibModules[module+"."+name] {
			return entities.ClassificationModule
		}
		return entities.ClassificationNonModule
	}

	return entities.ClassificationUnknown
}

// locate searches the roots for the dotted module. It returns the
// directory of the module (the package dir itself, or the containing dir
// for a plain file) and whether the module is a package.
func (it *PathModuleResolver) locate(module string) (string, bool, bool) {
	relative := filepath.FromSlash(strings.ReplaceAll(module, ".", "/"))
	for _, root := range it.roots {
		candidate := filepath.Join(root, relative)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, true, true
		}
		if _, err := os.Stat(candidate + ".py"); err == nil {
			return filepath.Dir(candidate), false, true
		}
	}
	return "", false, false
}

// pathIsModule reports whether the path names a package directory or a
// .py file.
func (it *PathModuleResolver) pathIsModule(path string) bool {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return true
	}
	_, err := os.Stat(path + ".py")
	return err == nil
}
