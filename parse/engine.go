package parse

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/net/html"

	"github.com/domstream/go-domstream/debug"
	"github.com/domstream/go-domstream/dom"
)

// SourceError wraps a failure reported by an engine's ChunkSource.
type SourceError struct {
	Err error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("parse: chunk source: %v", e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Engine incrementally parses the chunks produced by a ChunkSource into a
// document. An Engine runs to completion exactly once; abandoning it before
// completion is fine and needs no shutdown call.
type Engine struct {
	src     ChunkSource
	builder dom.Builder // nil once the engine has completed
}

// NewEngine returns an Engine that feeds src's chunks to b. The builder
// must be fresh: the engine finalizes it on end of source.
func NewEngine(src ChunkSource, b dom.Builder) *Engine {
	return &Engine{src: src, builder: b}
}

// Poll makes as much progress as the source allows. It returns the
// finished document on end of source, ErrAgain if the source has no data
// yet (poll again later), or a *SourceError if the source failed. Both
// outcomes other than ErrAgain are terminal; polling a completed Engine
// panics.
func (e *Engine) Poll() (*html.Node, error) {
	if e.builder == nil {
		panic("parse: Poll on completed Engine")
	}
	for {
		chunk, err := e.src.NextChunk()
		switch {
		case err == nil:
			if debug.Poll() {
				debug.Logf("poll: chunk of %d bytes\n", len(chunk))
			}
			e.builder.WriteChunk(chunk)
		case errors.Is(err, ErrAgain):
			return nil, ErrAgain
		case errors.Is(err, io.EOF):
			b := e.builder
			e.builder = nil
			if debug.Poll() {
				debug.Logf("poll: source exhausted, finalizing\n")
			}
			return b.Finish()
		default:
			e.builder = nil
			if debug.Poll() {
				debug.Logf("poll: source failed: %v\n", err)
			}
			return nil, &SourceError{Err: err}
		}
	}
}

// Run drives Poll to completion. It is meant for sources that block in
// NextChunk; if the source reports ErrAgain instead, Run yields the
// processor and retries.
func (e *Engine) Run() (*html.Node, error) {
	for {
		doc, err := e.Poll()
		if errors.Is(err, ErrAgain) {
			runtime.Gosched()
			continue
		}
		return doc, err
	}
}
