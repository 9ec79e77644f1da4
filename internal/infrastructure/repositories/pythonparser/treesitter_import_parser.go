package pythonparser

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/rios0rios0/githooks/internal/domain/entities"
)

// TreeSitterImportParser extracts top-level "from MODULE import NAMES"
// statements from Python source using the tree-sitter grammar. Nested
// statements inside functions or classes are never reported because only
// direct children of the module node are walked.
type TreeSitterImportParser struct {
	parser *sitter.Parser
}

// NewTreeSitterImportParser creates a parser bound to the Python grammar.
func NewTreeSitterImportParser() *TreeSitterImportParser {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())
	return &TreeSitterImportParser{parser: parser}
}

// ParseImports parses the content and returns its top-level import-from
// statements in source order.
func (it *TreeSitterImportParser) ParseImports(content string) ([]entities.ImportStatement, error) {
	src := []byte(content)
	tree, err := it.parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	var statements []entities.ImportStatement
	root := tree.RootNode()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)
		if node.Type() != "import_from_statement" {
			continue
		}
		statements = append(statements, parseImportFrom(node, src))
	}
	return statements, nil
}

func parseImportFrom(node *sitter.Node, src []byte) entities.ImportStatement {
	statement := entities.ImportStatement{
		Text:    text(node, src),
		EndLine: int(node.EndPoint().Row) + 1,
	}

	moduleNode := node.ChildByFieldName("module_name")
	if moduleNode != nil {
		statement.Module = text(moduleNode, src)
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if moduleNode != nil && child.StartByte() == moduleNode.StartByte() {
			continue
		}
		switch child.Type() {
		case "dotted_name", "identifier":
			statement.Names = append(statement.Names, text(child, src))
		case "aliased_import":
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				statement.Names = append(statement.Names, text(nameNode, src))
			}
		case "wildcard_import":
			statement.Names = append(statement.Names, "*")
		}
	}
	return statement
}

func text(node *sitter.Node, src []byte) string {
	return string(src[node.StartByte():node.EndByte()])
}
