// Package parse turns a sequence of arbitrarily sized byte chunks into a
// parsed HTML document.
//
// The Engine pulls chunks from a ChunkSource and feeds them, in order, to a
// dom.Builder. Progress is made by polling: each Poll either completes with
// the document, reports ErrAgain because the source has no data yet, or
// fails with the source's error wrapped in *SourceError. The engine is the
// single suspension point in the pipeline; everything downstream of the
// source is computation-bound.
//
//	src := parse.NewChanSource(ch)
//	eng := parse.NewEngine(src, dom.NewTreeBuilder())
//	for {
//	    doc, err := eng.Poll()
//	    if errors.Is(err, parse.ErrAgain) {
//	        // wait for more input, then poll again
//	        continue
//	    }
//	    // done: doc or a terminal error
//	    break
//	}
//
// Polling an engine that has already completed, successfully or not, is a
// broken calling contract and panics.
package parse
