package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"strings"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/githooks/internal/domain/entities"
)

// ImportStatementBuilder helps create test import statements with a
// fluent interface.
type ImportStatementBuilder struct {
	*testkit.BaseBuilder
	module  string
	names   []string
	endLine int
}

// NewImportStatementBuilder creates a new statement builder with sensible defaults.
func NewImportStatementBuilder() *ImportStatementBuilder {
	return &ImportStatementBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		module:      "os",
		names:       []string{"path"},
		endLine:     1,
	}
}

// WithModule sets the module path.
func (b *ImportStatementBuilder) WithModule(module string) *ImportStatementBuilder {
	b.module = module
	return b
}

// WithNames sets the imported names.
func (b *ImportStatementBuilder) WithNames(names ...string) *ImportStatementBuilder {
	b.names = names
	return b
}

// WithEndLine sets the statement end line.
func (b *ImportStatementBuilder) WithEndLine(line int) *ImportStatementBuilder {
	b.endLine = line
	return b
}

// Build creates the statement (satisfies testkit.Builder interface).
func (b *ImportStatementBuilder) Build() interface{} {
	return b.BuildImportStatement()
}

// BuildImportStatement creates the statement with a concrete return type.
func (b *ImportStatementBuilder) BuildImportStatement() entities.ImportStatement {
	return entities.ImportStatement{
		Module:  b.module,
		Names:   b.names,
		Text:    fmt.Sprintf("from %s import %s", b.module, strings.Join(b.names, ", ")),
		EndLine: b.endLine,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ImportStatementBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.module = "os"
	b.names = []string{"path"}
	b.endLine = 1
	return b
}

// Clone creates a deep copy of the ImportStatementBuilder.
func (b *ImportStatementBuilder) Clone() testkit.Builder {
	return &ImportStatementBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		module:      b.module,
		names:       append([]string(nil), b.names...),
		endLine:     b.endLine,
	}
}
