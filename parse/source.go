package parse

import (
	"errors"
	"io"
)

// ErrAgain reports that a source has no chunk available right now but may
// produce more later. It is the only non-terminal condition a ChunkSource
// can signal.
var ErrAgain = errors.New("parse: no chunk ready")

// ChunkSource produces successive chunks of input. NextChunk returns the
// next chunk, io.EOF once the source is exhausted (terminal), ErrAgain when
// no data is available yet, or any other error to report failure. Ownership
// of a returned chunk passes to the caller.
type ChunkSource interface {
	NextChunk() ([]byte, error)
}

const defaultChunkSize = 4096

// ReaderSource adapts an io.Reader to a ChunkSource. NextChunk blocks in
// the reader rather than reporting ErrAgain.
type ReaderSource struct {
	r    io.Reader
	size int
}

// SourceOpt configures a ReaderSource.
type SourceOpt func(*ReaderSource)

// ChunkSize sets the maximum size of emitted chunks.
func ChunkSize(n int) SourceOpt {
	return func(s *ReaderSource) {
		if n > 0 {
			s.size = n
		}
	}
}

// NewReaderSource returns a ChunkSource reading from r.
func NewReaderSource(r io.Reader, opts ...SourceOpt) *ReaderSource {
	s := &ReaderSource{r: r, size: defaultChunkSize}
	for _, o := range opts {
		o(s)
	}
	return s
}

// NextChunk reads the next chunk from the reader. Each chunk is freshly
// allocated; the caller owns it.
func (s *ReaderSource) NextChunk() ([]byte, error) {
	buf := make([]byte, s.size)
	for {
		n, err := s.r.Read(buf)
		if n > 0 {
			return buf[:n], nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// SliceSource emits a fixed sequence of chunks and then io.EOF. It is handy
// for exercising chunk-boundary behavior.
type SliceSource struct {
	chunks [][]byte
}

// NewSliceSource returns a source that emits the given chunks in order.
func NewSliceSource(chunks ...[]byte) *SliceSource {
	return &SliceSource{chunks: chunks}
}

// NextChunk returns the next queued chunk.
func (s *SliceSource) NextChunk() ([]byte, error) {
	if len(s.chunks) == 0 {
		return nil, io.EOF
	}
	c := s.chunks[0]
	s.chunks[0] = nil
	s.chunks = s.chunks[1:]
	return c, nil
}

// ChanSource adapts a channel of chunks to a ChunkSource. The receive is
// non-blocking: an open but empty channel reports ErrAgain, a closed and
// drained channel reports io.EOF. This is the poll-friendly source for
// cooperative callers.
type ChanSource struct {
	ch <-chan []byte
}

// NewChanSource returns a source receiving from ch.
func NewChanSource(ch <-chan []byte) *ChanSource {
	return &ChanSource{ch: ch}
}

// NextChunk receives the next chunk without blocking.
func (s *ChanSource) NextChunk() ([]byte, error) {
	select {
	case c, ok := <-s.ch:
		if !ok {
			return nil, io.EOF
		}
		return c, nil
	default:
		return nil, ErrAgain
	}
}
