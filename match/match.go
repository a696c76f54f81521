// Package match filters document traversals with compiled boolean
// expressions.
//
// An expression sees one node at a time through the environment:
//
//	type  - "document", "doctype", "element", "text" or "comment"
//	name  - element tag name, "" for other node kinds
//	text  - trimmed text content for text and comment nodes
//	attr  - attribute map for elements
//
// For example:
//
//	m, err := match.Compile(`type == "element" && attr["href"] != ""`)
//	links, err := m.Select(doc)
package match

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"golang.org/x/net/html"

	"github.com/domstream/go-domstream/debug"
	"github.com/domstream/go-domstream/walk"
)

// Matcher is a compiled node predicate.
type Matcher struct {
	src string
	prg *vm.Program
}

// Compile compiles src into a Matcher. The expression must evaluate to a
// boolean.
func Compile(src string) (*Matcher, error) {
	prg, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("match: compile %q: %w", src, err)
	}
	return &Matcher{src: src, prg: prg}, nil
}

// Match evaluates the predicate against a single node.
func (m *Matcher) Match(n *html.Node) (bool, error) {
	res, err := expr.Run(m.prg, nodeEnv(n))
	if err != nil {
		return false, fmt.Errorf("match: eval %q: %w", m.src, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("match: %q returned %T, want bool", m.src, res)
	}
	if debug.Match() {
		debug.Logf("match: %v -> %v\n", n, b)
	}
	return b, nil
}

// Select walks the tree rooted at root in breadth-first order and returns
// the nodes for which the predicate holds.
func (m *Matcher) Select(root *html.Node) ([]*html.Node, error) {
	var res []*html.Node
	t := walk.NewTraverser(root)
	for n := t.Next(); n != nil; n = t.Next() {
		ok, err := m.Match(n)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, n)
		}
	}
	return res, nil
}

func nodeEnv(n *html.Node) map[string]any {
	env := map[string]any{
		"type": typeName(n.Type),
		"name": "",
		"text": "",
		"attr": map[string]string{},
	}
	switch n.Type {
	case html.ElementNode:
		env["name"] = n.Data
		attrs := make(map[string]string, len(n.Attr))
		for _, a := range n.Attr {
			attrs[a.Key] = a.Val
		}
		env["attr"] = attrs
	case html.TextNode, html.CommentNode:
		env["text"] = strings.TrimSpace(n.Data)
	case html.DoctypeNode:
		env["name"] = n.Data
	}
	return env
}

func typeName(t html.NodeType) string {
	switch t {
	case html.DocumentNode:
		return "document"
	case html.DoctypeNode:
		return "doctype"
	case html.ElementNode:
		return "element"
	case html.TextNode:
		return "text"
	case html.CommentNode:
		return "comment"
	default:
		return "unknown"
	}
}
