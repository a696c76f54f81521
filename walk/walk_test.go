package walk

import (
	"testing"

	"golang.org/x/net/html"

	"github.com/domstream/go-domstream/dom"
)

const testHTML = "<html> <head> <title> test </title> </head> </html>"

func parseDoc(t *testing.T, input string) *html.Node {
	t.Helper()
	b := dom.NewTreeBuilder()
	b.WriteChunk([]byte(input))
	doc, err := b.Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	return doc
}

func depth(n *html.Node) int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

func TestTraverserVisitsEveryNodeOnce(t *testing.T) {
	doc := parseDoc(t, testHTML)
	tr := NewTraverser(doc)
	seen := map[*html.Node]bool{}
	for n := tr.Next(); n != nil; n = tr.Next() {
		if seen[n] {
			t.Fatal("node yielded twice")
		}
		seen[n] = true
	}
	if len(seen) != 9 {
		t.Errorf("visited %d nodes, want 9", len(seen))
	}
	// nothing reachable was skipped
	for n := range seen {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !seen[c] {
				t.Error("reachable node was not yielded")
			}
		}
	}
}

func TestTraverserLevelOrder(t *testing.T) {
	doc := parseDoc(t, "<html><body><div><p>a</p><p>b</p></div><span>c</span></body></html>")
	tr := NewTraverser(doc)
	last := -1
	for n := tr.Next(); n != nil; n = tr.Next() {
		d := depth(n)
		if d < last {
			t.Fatalf("depth decreased from %d to %d", last, d)
		}
		last = d
	}
}

func TestTraverserExhaustionIsTerminal(t *testing.T) {
	doc := parseDoc(t, testHTML)
	tr := NewTraverser(doc)
	for tr.Next() != nil {
	}
	for i := 0; i < 3; i++ {
		if tr.Next() != nil {
			t.Fatal("Next() produced a node after exhaustion")
		}
	}
}

func TestTraverserNilRoot(t *testing.T) {
	if n := NewTraverser(nil).Next(); n != nil {
		t.Errorf("Next() = %v, want nil", n)
	}
}

func TestTraverserAbandonReleasesQueue(t *testing.T) {
	doc := parseDoc(t, testHTML)
	tr := NewTraverser(doc)
	tr.Next()
	tr.Next()
	// popped slots must not pin their nodes
	for i := range tr.queue {
		if tr.queue[i] == nil {
			t.Errorf("queue[%d] = nil, live entries only", i)
		}
	}
}
