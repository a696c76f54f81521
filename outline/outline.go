// Package outline renders the structure of an HTML document as indented
// text, one line per node. The outline is what the domtree CLI prints and
// diffs.
package outline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Line is one entry of a document outline.
type Line struct {
	Depth int
	Node  *html.Node
}

// Lines returns the outline of the tree rooted at root in depth-first
// pre-order. Whitespace-only text nodes are omitted. The walk runs on an
// explicit stack so outline depth is independent of call-stack depth.
func Lines(root *html.Node) []Line {
	if root == nil {
		return nil
	}
	type frame struct {
		n     *html.Node
		depth int
	}
	var res []Line
	stack := []frame{{n: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.n.Type == html.TextNode && strings.TrimSpace(f.n.Data) == "" {
			continue
		}
		res = append(res, Line{Depth: f.depth, Node: f.n})
		// push children in reverse so the leftmost pops first
		var kids []*html.Node
		for c := f.n.FirstChild; c != nil; c = c.NextSibling {
			kids = append(kids, c)
		}
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, frame{n: kids[i], depth: f.depth + 1})
		}
	}
	return res
}

func (l Line) String() string {
	return strings.Repeat("  ", l.Depth) + Label(l.Node)
}

// Label returns the single-line description of n used in outlines.
func Label(n *html.Node) string {
	switch n.Type {
	case html.DocumentNode:
		return "#document"
	case html.DoctypeNode:
		return "<!DOCTYPE " + n.Data + ">"
	case html.ElementNode:
		var b strings.Builder
		b.WriteByte('<')
		b.WriteString(n.Data)
		for _, a := range n.Attr {
			b.WriteByte(' ')
			b.WriteString(a.Key)
			b.WriteByte('=')
			b.WriteString(strconv.Quote(a.Val))
		}
		b.WriteByte('>')
		return b.String()
	case html.CommentNode:
		return "<!--" + n.Data + "-->"
	case html.TextNode:
		return strconv.Quote(strings.TrimSpace(n.Data))
	default:
		return fmt.Sprintf("#node(%d)", n.Type)
	}
}

// Render writes the outline of root to w, one line per node.
func Render(w io.Writer, root *html.Node) error {
	for _, l := range Lines(root) {
		if _, err := fmt.Fprintln(w, l.String()); err != nil {
			return err
		}
	}
	return nil
}

// Text returns the outline of root as one newline-separated string.
func Text(root *html.Node) string {
	lines := Lines(root)
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	return b.String()
}
