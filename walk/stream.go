package walk

import (
	"io"

	"golang.org/x/net/html"
)

// Stream exposes a traversal through the same poll contract the parse
// engine uses. The traversal needs no external input, so every poll
// resolves immediately: Poll returns the next node, or io.EOF once the
// traversal is exhausted, and never "not ready".
type Stream struct {
	t Traverser
}

// NewStream returns a Stream rooted at root.
func NewStream(root *html.Node) *Stream {
	return &Stream{t: *NewTraverser(root)}
}

// Poll returns the next node in level order, or io.EOF at the end of the
// sequence.
func (s *Stream) Poll() (*html.Node, error) {
	if n := s.t.Next(); n != nil {
		return n, nil
	}
	return nil, io.EOF
}
