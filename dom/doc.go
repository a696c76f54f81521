// Package dom provides the document builder boundary between chunked input
// and the HTML tree representation of golang.org/x/net/html.
//
// A Builder accepts successive byte chunks in the order they arrive and,
// when finished, produces the document root as an *html.Node. The concrete
// TreeBuilder fronts the chunks with a lossy UTF-8 decoder: a multi-byte
// encoding split across a chunk boundary is reassembled, and malformed
// bytes are replaced with U+FFFD rather than rejected, so building never
// fails on encoding errors.
//
// Sink wraps a Builder behind io.Writer for callers that already hold a
// byte stream and want to push it in themselves:
//
//	sink := dom.NewSink(dom.NewTreeBuilder())
//	io.Copy(sink, resp.Body)
//	doc, err := sink.Finish()
//
// Feeding a Builder after Finish, or calling Finish twice, is a broken
// calling contract and panics.
package dom
