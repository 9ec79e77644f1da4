package entities

// Classification is the three-valued outcome of resolving an imported
// name: a confirmed submodule, a confirmed non-module object, or unknown
// when the environment cannot decide either way.
type Classification int

const (
	ClassificationUnknown Classification = iota
	ClassificationModule
	ClassificationNonModule
)

// ImportStatement is a parsed "from MODULE import NAME[, NAME...]"
// statement at the top level of a source file.
type ImportStatement struct {
	Module  string   // dotted module path; empty or "."-prefixed for relative imports
	Names   []string // imported names, "*" for wildcard imports
	Text    string   // statement source text, for reporting
	EndLine int      // 1-based line of the statement end
}

// Relative reports whether the statement uses a relative module path,
// which cannot be resolved without package context.
func (it ImportStatement) Relative() bool {
	return it.Module == "" || it.Module[0] == '.'
}
