// Package walk provides breadth-first traversal over an HTML document tree.
//
// The Traverser drives an explicit FIFO work queue instead of recursive
// descent, so traversal never grows the call stack with document depth. A
// node enters the queue exactly once; when it is popped, its children (read
// at pop time) are appended to the tail, which yields level-order
// visitation.
//
// Two facades wrap the Traverser: Iter, a single-pass forward iterator, and
// Stream, a poll-based producer for composition with suspension-aware
// callers. The traversal is pure in-memory work, so Stream resolves on
// every poll and never reports "not ready". All exposes the traversal as a
// restartable iter.Seq.
package walk
