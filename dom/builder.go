package dom

import (
	"bytes"

	"golang.org/x/net/html"
)

// Builder is a stateful capability that accepts ordered byte chunks and
// finalizes into a document. Chunks must be written in the order they were
// produced. Finish may be called at most once; writing after Finish or
// finishing twice panics.
type Builder interface {
	WriteChunk(p []byte)
	Finish() (*html.Node, error)
}

// TreeBuilder is a Builder backed by golang.org/x/net/html. Chunks are
// decoded as they arrive; the tree itself is constructed when Finish runs
// the HTML parser over the accumulated text.
type TreeBuilder struct {
	dec     lossyDecoder
	buf     bytes.Buffer
	scratch []byte
	done    bool
}

// NewTreeBuilder returns an empty TreeBuilder.
func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{}
}

// WriteChunk feeds the next chunk of raw bytes to the builder.
func (b *TreeBuilder) WriteChunk(p []byte) {
	if b.done {
		panic("dom: WriteChunk on finished TreeBuilder")
	}
	b.scratch = b.dec.Decode(b.scratch[:0], p)
	b.buf.Write(b.scratch)
}

// Finish consumes the builder and returns the document root.
func (b *TreeBuilder) Finish() (*html.Node, error) {
	if b.done {
		panic("dom: Finish called twice on TreeBuilder")
	}
	b.done = true
	b.scratch = b.dec.Flush(b.scratch[:0])
	b.buf.Write(b.scratch)
	return html.Parse(&b.buf)
}
