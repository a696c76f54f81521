package walk

import (
	"iter"

	"golang.org/x/net/html"
)

// Iter is a single-pass forward iterator over a tree's nodes in
// breadth-first order. It is intended for synchronous, single-threaded
// consumption.
type Iter struct {
	t Traverser
}

// NewIter returns an Iter rooted at root.
func NewIter(root *html.Node) *Iter {
	return &Iter{t: *NewTraverser(root)}
}

// Next returns the next node and whether one was available.
func (it *Iter) Next() (*html.Node, bool) {
	n := it.t.Next()
	return n, n != nil
}

// All returns root's nodes in breadth-first order as a sequence. Each range
// over the sequence restarts the traversal from root.
func All(root *html.Node) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		t := NewTraverser(root)
		for n := t.Next(); n != nil; n = t.Next() {
			if !yield(n) {
				return
			}
		}
	}
}
