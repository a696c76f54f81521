package walk

import (
	"golang.org/x/net/html"

	"github.com/domstream/go-domstream/debug"
)

// Traverser yields the nodes reachable from a root in breadth-first order.
// Exhaustion is terminal; construct a new Traverser to walk the tree again.
type Traverser struct {
	queue []*html.Node
}

// NewTraverser returns a Traverser rooted at root. A nil root yields an
// empty traversal.
func NewTraverser(root *html.Node) *Traverser {
	t := &Traverser{}
	if root != nil {
		t.queue = append(t.queue, root)
	}
	return t
}

// Next returns the next node in level order, or nil once the traversal is
// exhausted.
func (t *Traverser) Next() *html.Node {
	if len(t.queue) == 0 {
		t.queue = nil
		return nil
	}
	n := t.queue[0]
	t.queue[0] = nil // drop the reference so abandoned walks hold nothing
	t.queue = t.queue[1:]
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		t.queue = append(t.queue, c)
	}
	if debug.Walk() {
		debug.Logf("walk: %v (%d queued)\n", n, len(t.queue))
	}
	return n
}
