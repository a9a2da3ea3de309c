// Package rope provides an immutable rope for storing editable text.
//
// The rope is a B+ tree whose leaves hold chunks of at most MaxChunkSize
// bytes. Every node caches a TextSummary (bytes, code points, newlines,
// line lengths) of its subtree, so converting between byte offsets, char
// offsets and line starts costs one root-to-leaf descent.
//
// Edits never modify a rope in place:
//
//	r := rope.FromString("hello world")
//	r = r.Insert(5, ",")                  // "hello, world"
//	r = r.Delete(0, 7)                    // "world"
//	off := r.CharToByte(r.LineToChar(0))  // 0
//
// Bytes are stored exactly as given. Callers that need valid UTF-8 must
// check it before building a rope.
package rope
