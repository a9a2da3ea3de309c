// Package buffer provides the text storage of a document: a thread-safe
// wrapper around a rope that is addressed by character index and line.
//
// Lines are the '\n'-separated segments of the text. A line returned by
// Line keeps its terminator; a final segment without one is still a line,
// but an empty final segment is not. So "" has no lines, "abc" and
// "abc\n" have one, and "abc\n\ndef\n" has three.
//
// Content is stored byte for byte. Line endings are never normalized, so
// Bytes returns exactly what was loaded plus the edits made since:
//
//	buf := buffer.NewBufferFromString("hello\nworld\n")
//	_ = buf.Insert(buf.LineToChar(1), "big ")  // "hello\nbig world\n"
//	_ = buf.Delete(0, 5)                       // "big world\n"
//
// Insert and Delete return ErrOutOfRange and leave the text untouched
// when given an index outside the buffer.
package buffer
