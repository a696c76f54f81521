package dom

import "golang.org/x/net/html"

// Sink adapts a Builder to io.Writer so callers holding a byte stream can
// push bytes in directly. Write always succeeds synchronously.
type Sink struct {
	b Builder
}

// NewSink wraps b in a Sink.
func NewSink(b Builder) *Sink {
	return &Sink{b: b}
}

// Write feeds p to the underlying builder. It never fails.
func (s *Sink) Write(p []byte) (int, error) {
	s.b.WriteChunk(p)
	return len(p), nil
}

// Finish consumes the sink and returns the document root. It may be called
// at most once.
func (s *Sink) Finish() (*html.Node, error) {
	return s.b.Finish()
}
