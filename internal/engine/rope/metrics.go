package rope

import "unicode/utf8"

// ByteOffset is an absolute byte position in the rope.
type ByteOffset uint64

// CharOffset is an absolute character (code point) position in the rope.
type CharOffset uint64

// TextSummary holds aggregated metrics for a span of text.
// Summaries form a monoid under Add, so every node can carry the
// totals of its subtree.
type TextSummary struct {
	// Bytes is the UTF-8 byte count.
	Bytes ByteOffset

	// Chars is the code point count. Each invalid byte counts as one.
	Chars CharOffset

	// Newlines is the number of '\n' characters.
	Newlines uint32

	// LongestLine is the character length of the longest line.
	LongestLine uint32

	// FirstLineLen is the character length of the first line, excluding '\n'.
	FirstLineLen uint32

	// LastLineLen is the character length of the text after the last '\n'.
	LastLineLen uint32

	// Flags indicate text properties for fast paths.
	Flags TextFlags
}

// TextFlags indicate text properties for fast paths.
type TextFlags uint8

const (
	// FlagASCII indicates every character is ASCII, so bytes equal chars.
	FlagASCII TextFlags = 1 << iota

	// FlagHasNewlines indicates the text contains '\n'.
	FlagHasNewlines
)

// Add combines two summaries.
func (s TextSummary) Add(other TextSummary) TextSummary {
	if s.Bytes == 0 {
		return other
	}
	if other.Bytes == 0 {
		return s
	}

	result := TextSummary{
		Bytes:    s.Bytes + other.Bytes,
		Chars:    s.Chars + other.Chars,
		Newlines: s.Newlines + other.Newlines,
		Flags:    s.Flags & other.Flags & FlagASCII,
	}

	if other.Newlines > 0 {
		// The tail of s is closed by other's first newline.
		joined := s.LastLineLen + other.FirstLineLen
		result.LongestLine = max(s.LongestLine, other.LongestLine, joined)
		if s.Newlines == 0 {
			result.FirstLineLen = joined
		} else {
			result.FirstLineLen = s.FirstLineLen
		}
		result.LastLineLen = other.LastLineLen
	} else {
		joined := s.LastLineLen + other.LastLineLen
		result.LongestLine = max(s.LongestLine, joined)
		if s.Newlines == 0 {
			result.FirstLineLen = joined
		} else {
			result.FirstLineLen = s.FirstLineLen
		}
		result.LastLineLen = joined
	}

	if (s.Flags|other.Flags)&FlagHasNewlines != 0 {
		result.Flags |= FlagHasNewlines
	}
	return result
}

// ComputeSummary calculates the metrics of s.
func ComputeSummary(s string) TextSummary {
	sum := TextSummary{Bytes: ByteOffset(len(s)), Flags: FlagASCII}

	var lineLen uint32
	for _, r := range s {
		sum.Chars++
		if r >= utf8.RuneSelf {
			sum.Flags &^= FlagASCII
		}
		if r != '\n' {
			lineLen++
			continue
		}
		if sum.Newlines == 0 {
			sum.FirstLineLen = lineLen
		}
		sum.Newlines++
		sum.LongestLine = max(sum.LongestLine, lineLen)
		sum.Flags |= FlagHasNewlines
		lineLen = 0
	}

	sum.LastLineLen = lineLen
	sum.LongestLine = max(sum.LongestLine, lineLen)
	if sum.Newlines == 0 {
		sum.FirstLineLen = lineLen
	}
	return sum
}

// nthNewline returns the byte index of the nth '\n' in s (1-indexed),
// or -1 if s has fewer than n newlines.
func nthNewline(s string, n uint32) int {
	if n == 0 {
		return -1
	}
	var count uint32
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			count++
			if count == n {
				return i
			}
		}
	}
	return -1
}

// charToByteIn returns the byte index of the char-th code point in s,
// or len(s) when s has fewer code points.
func charToByteIn(s string, char CharOffset) int {
	var n CharOffset
	for i := range s {
		if n == char {
			return i
		}
		n++
	}
	return len(s)
}
