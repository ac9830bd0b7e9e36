package syntax

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

const maxSnippetLen = 40

// PythonChecker parses Python source with the Tree-sitter grammar and
// reports the first syntax error with its position.
type PythonChecker struct{}

// NewPythonChecker creates a new Python checker.
func NewPythonChecker() *PythonChecker {
	return &PythonChecker{}
}

// Check parses the code and describes the first syntax error found. The
// tree-sitter parser is not safe for concurrent use, so each call gets its
// own parser instance.
func (c *PythonChecker) Check(ctx context.Context, code string) (string, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, []byte(code))
	if err != nil {
		return "", fmt.Errorf("failed to parse python code: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return "", nil
	}

	node := firstErrorNode(root)
	point := node.StartPoint()
	snippet := errorSnippet(node, []byte(code))

	if node.IsMissing() {
		return fmt.Sprintf("Syntax error in generated code: line %d, column %d: missing %s",
			point.Row+1, point.Column+1, node.Type()), nil
	}
	return fmt.Sprintf("Syntax error in generated code: line %d, column %d near %q",
		point.Row+1, point.Column+1, snippet), nil
}

// firstErrorNode walks the tree depth-first and returns the first ERROR or
// missing node. Falls back to the deepest subtree still carrying the error
// flag when no explicit ERROR node exists.
func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil || !child.HasError() {
			continue
		}
		if found := firstErrorNode(child); found != nil {
			return found
		}
	}
	return node
}

func errorSnippet(node *sitter.Node, source []byte) string {
	start, end := node.StartByte(), node.EndByte()
	if start >= uint32(len(source)) || end > uint32(len(source)) || start >= end {
		return ""
	}
	snippet := string(source[start:end])
	if idx := strings.IndexByte(snippet, '\n'); idx >= 0 {
		snippet = snippet[:idx]
	}
	if len(snippet) > maxSnippetLen {
		snippet = snippet[:maxSnippetLen] + "..."
	}
	return snippet
}
