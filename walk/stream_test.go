package walk

import (
	"io"
	"testing"
)

func TestStreamPollNeverSuspends(t *testing.T) {
	doc := parseDoc(t, testHTML)
	s := NewStream(doc)
	count := 0
	for {
		n, err := s.Poll()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Poll() error = %v", err)
		}
		if n == nil {
			t.Fatal("Poll() returned nil node without error")
		}
		count++
	}
	if count != 9 {
		t.Errorf("streamed %d nodes, want 9", count)
	}
	// exhaustion is terminal
	if _, err := s.Poll(); err != io.EOF {
		t.Errorf("Poll() after end error = %v, want io.EOF", err)
	}
}

func TestIterSinglePass(t *testing.T) {
	doc := parseDoc(t, testHTML)
	it := NewIter(doc)
	count := 0
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
		count++
	}
	if count != 9 {
		t.Errorf("iterated %d nodes, want 9", count)
	}
	if _, ok := it.Next(); ok {
		t.Error("Next() produced a node after exhaustion")
	}
}

func TestAllRestarts(t *testing.T) {
	doc := parseDoc(t, testHTML)
	seq := All(doc)
	for pass := 0; pass < 2; pass++ {
		count := 0
		for range seq {
			count++
		}
		if count != 9 {
			t.Errorf("pass %d: ranged %d nodes, want 9", pass, count)
		}
	}
	// early break is fine
	count := 0
	for range seq {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("broke after %d nodes, want 3", count)
	}
}
