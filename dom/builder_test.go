package dom

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
)

const testHTML = "<html> <head> <title> test </title> </head> </html>"

func render(t *testing.T, doc *html.Node) string {
	t.Helper()
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func buildChunked(t *testing.T, input string, size int) *html.Node {
	t.Helper()
	b := NewTreeBuilder()
	for len(input) > 0 {
		n := size
		if n > len(input) {
			n = len(input)
		}
		b.WriteChunk([]byte(input[:n]))
		input = input[n:]
	}
	doc, err := b.Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	return doc
}

func TestTreeBuilderChunkBoundaries(t *testing.T) {
	want := render(t, buildChunked(t, testHTML, len(testHTML)))
	for _, size := range []int{1, 2, 3, 7, 16} {
		got := render(t, buildChunked(t, testHTML, size))
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("chunk size %d: document differs (-single +chunked):\n%s", size, d)
		}
	}
}

func TestTreeBuilderChunkSplitsMultibyte(t *testing.T) {
	input := "<html><body><p>héllo wörld</p></body></html>"
	want := render(t, buildChunked(t, input, len(input)))
	for _, size := range []int{1, 2, 5} {
		got := render(t, buildChunked(t, input, size))
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("chunk size %d: document differs:\n%s", size, d)
		}
	}
}

func TestTreeBuilderFinishTwicePanics(t *testing.T) {
	b := NewTreeBuilder()
	b.WriteChunk([]byte(testHTML))
	if _, err := b.Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic on second Finish")
		}
	}()
	b.Finish()
}

func TestTreeBuilderWriteAfterFinishPanics(t *testing.T) {
	b := NewTreeBuilder()
	if _, err := b.Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic on WriteChunk after Finish")
		}
	}()
	b.WriteChunk([]byte("x"))
}
