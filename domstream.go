// Package domstream adapts chunk-oriented input into a parsed HTML document
// and exposes the document's nodes as a lazily produced, breadth-first
// sequence.
//
// The heavy lifting lives in the subpackages:
//
//   - github.com/domstream/go-domstream/parse - the incremental parse engine
//     and its chunk sources
//   - github.com/domstream/go-domstream/dom - the document builder and the
//     synchronous sink adapter
//   - github.com/domstream/go-domstream/walk - breadth-first traversal and
//     its iterator/stream facades
//   - github.com/domstream/go-domstream/match - expression-based node
//     predicates over traversals
//
// This package holds the thin convenience API for the common case of
// parsing a reader and ranging over the result:
//
//	doc, err := domstream.Parse(resp.Body)
//	if err != nil {
//	    return err
//	}
//	for n := range domstream.Nodes(doc) {
//	    if n.Type == html.ElementNode {
//	        fmt.Println(n.Data)
//	    }
//	}
package domstream

import (
	"io"
	"iter"

	"golang.org/x/net/html"

	"github.com/domstream/go-domstream/dom"
	"github.com/domstream/go-domstream/parse"
	"github.com/domstream/go-domstream/walk"
)

// Parse reads r to EOF and returns the parsed document root.
func Parse(r io.Reader) (*html.Node, error) {
	eng := parse.NewEngine(parse.NewReaderSource(r), dom.NewTreeBuilder())
	return eng.Run()
}

// Nodes returns the nodes reachable from doc in breadth-first order. The
// sequence restarts from doc each time it is ranged over.
func Nodes(doc *html.Node) iter.Seq[*html.Node] {
	return walk.All(doc)
}
