package buffer

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/quick"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if b.LineCount() != 0 {
		t.Errorf("expected 0 lines, got %d", b.LineCount())
	}
	if _, ok := b.Line(0); ok {
		t.Error("Line(0) of an empty buffer should not exist")
	}
	if b.LineToChar(0) != 0 {
		t.Errorf("LineToChar(0) = %d, want 0", b.LineToChar(0))
	}
}

func TestLineCount(t *testing.T) {
	tests := []struct {
		text  string
		lines int
	}{
		{"", 0},
		{"abc", 1},
		{"abc\n", 1},
		{"abc\ndef", 2},
		{"abc\ndef\n", 2},
		{"abc\n\ndef\n", 3},
		{"\n", 1},
		{"\n\n", 2},
	}

	for _, tt := range tests {
		if got := NewBufferFromString(tt.text).LineCount(); got != tt.lines {
			t.Errorf("LineCount(%q) = %d, want %d", tt.text, got, tt.lines)
		}
	}
}

func TestLine(t *testing.T) {
	b := NewBufferFromString("abc\nde\r\nf")

	tests := []struct {
		i          int
		text       string
		visible    string
		length     int
		visibleLen int
		terminated bool
	}{
		{0, "abc\n", "abc", 4, 3, true},
		{1, "de\r\n", "de\r", 4, 3, true},
		{2, "f", "f", 1, 1, false},
	}

	for _, tt := range tests {
		l, ok := b.Line(tt.i)
		if !ok {
			t.Fatalf("Line(%d) missing", tt.i)
		}
		if l.String() != tt.text || l.Visible() != tt.visible {
			t.Errorf("Line(%d) = %q/%q, want %q/%q", tt.i, l.String(), l.Visible(), tt.text, tt.visible)
		}
		if l.Len() != tt.length || l.VisibleLen() != tt.visibleLen {
			t.Errorf("Line(%d) lengths = %d/%d, want %d/%d", tt.i, l.Len(), l.VisibleLen(), tt.length, tt.visibleLen)
		}
		if l.HasTerminator() != tt.terminated {
			t.Errorf("Line(%d).HasTerminator() = %v", tt.i, l.HasTerminator())
		}
	}

	if _, ok := b.Line(3); ok {
		t.Error("Line(3) should not exist")
	}
	if _, ok := b.Line(-1); ok {
		t.Error("Line(-1) should not exist")
	}
}

func TestLineToChar(t *testing.T) {
	b := NewBufferFromString("añc\n世界\n")

	for i, want := range []int{0, 4, 7} {
		if got := b.LineToChar(i); got != want {
			t.Errorf("LineToChar(%d) = %d, want %d", i, got, want)
		}
	}
	if got := b.LineToChar(10); got != b.LenChars() {
		t.Errorf("LineToChar past end = %d, want %d", got, b.LenChars())
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		at      int
		text    string
		want    string
		err     error
	}{
		{"start", "world", 0, "hello ", "hello world", nil},
		{"end", "hello", 5, "!", "hello!", nil},
		{"between runes", "日本", 1, "x", "日x本", nil},
		{"newline", "abc\ndef\n", 3, "\n", "abc\n\ndef\n", nil},
		{"into empty", "", 0, "x", "x", nil},
		{"past end", "abc", 4, "x", "abc", ErrOutOfRange},
		{"negative", "abc", -1, "x", "abc", ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.initial)
			rev := b.RevisionID()
			err := b.Insert(tt.at, tt.text)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Insert error = %v, want %v", err, tt.err)
			}
			if b.Text() != tt.want {
				t.Errorf("Text() = %q, want %q", b.Text(), tt.want)
			}
			if (err == nil) == (b.RevisionID() == rev) {
				t.Error("revision should change exactly when the text changes")
			}
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name        string
		initial     string
		first, last int
		want        string
		err         error
	}{
		{"single char", "abc", 1, 1, "ac", nil},
		{"range", "hello world", 0, 5, "world", nil},
		{"newline joins", "abc\ndef", 3, 3, "abcdef", nil},
		{"multibyte", "a世b", 1, 1, "ab", nil},
		{"last char", "abc", 2, 2, "ab", nil},
		{"past end", "abc", 3, 3, "abc", ErrOutOfRange},
		{"reversed", "abc", 2, 1, "abc", ErrOutOfRange},
		{"empty buffer", "", 0, 0, "", ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.initial)
			err := b.Delete(tt.first, tt.last)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Delete error = %v, want %v", err, tt.err)
			}
			if b.Text() != tt.want {
				t.Errorf("Text() = %q, want %q", b.Text(), tt.want)
			}
		})
	}
}

func TestCharAt(t *testing.T) {
	b := NewBufferFromString("a\n世")
	for i, want := range []rune{'a', '\n', '世'} {
		if got, ok := b.CharAt(i); !ok || got != want {
			t.Errorf("CharAt(%d) = %q, %v; want %q", i, got, ok, want)
		}
	}
	if _, ok := b.CharAt(3); ok {
		t.Error("CharAt(3) should be out of range")
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"no trailing newline",
		"unix\nlines\n",
		"dos\r\nlines\r\n",
		"mixed\r\nend\nings\r",
		strings.Repeat("ünïcödé 🌍\n", 1000),
	}

	for _, in := range inputs {
		b, err := NewBufferFromReader(strings.NewReader(in))
		if err != nil {
			t.Fatalf("NewBufferFromReader: %v", err)
		}
		if got := b.Bytes(); !bytes.Equal(got, []byte(in)) {
			t.Errorf("round trip of %.20q changed content", in)
		}
		var w bytes.Buffer
		if _, err := b.WriteTo(&w); err != nil || w.String() != in {
			t.Errorf("WriteTo of %.20q = %v", in, err)
		}
	}
}

func TestRoundTripQuick(t *testing.T) {
	f := func(data []byte) bool {
		return bytes.Equal(NewBufferFromBytes(data).Bytes(), data)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestInsertDeleteInverse(t *testing.T) {
	f := func(text string, at uint16, r rune) bool {
		b := NewBufferFromString(text)
		pos := int(at) % (b.LenChars() + 1)
		if err := b.Insert(pos, string(r)); err != nil {
			return false
		}
		if err := b.Delete(pos, pos); err != nil {
			return false
		}
		return b.Text() == text
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestLineEnding(t *testing.T) {
	tests := []struct {
		text string
		want LineEnding
	}{
		{"", LineEndingLF},
		{"a\r\nb\r\nc\n", LineEndingCRLF},
		{"a\nb\r\n", LineEndingLF},
		{"no terminator", LineEndingLF},
	}
	for _, tt := range tests {
		if got := NewBufferFromString(tt.text).Snapshot().LineEnding(); got != tt.want {
			t.Errorf("LineEnding(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestSnapshotIsolation(t *testing.T) {
	b := NewBufferFromString("abc\n")
	snap := b.Snapshot()
	if err := b.Insert(0, "x"); err != nil {
		t.Fatal(err)
	}
	if snap.Text() != "abc\n" {
		t.Errorf("snapshot changed to %q", snap.Text())
	}
	if snap.RevisionID() == b.RevisionID() {
		t.Error("snapshot revision should differ after an edit")
	}
	if l, ok := snap.Line(0); !ok || l.String() != "abc\n" {
		t.Errorf("snapshot Line(0) = %q", l.String())
	}
	if string(snap.Bytes()) != "abc\n" || snap.LineCount() != 1 || snap.LenChars() != 4 {
		t.Errorf("snapshot Bytes()=%q LineCount()=%d LenChars()=%d", snap.Bytes(), snap.LineCount(), snap.LenChars())
	}
}

func TestConcurrentAccess(t *testing.T) {
	b := NewBufferFromString(strings.Repeat("line\n", 100))
	var wg sync.WaitGroup

	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = b.Insert(0, "x")
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = b.LineCount()
				_, _ = b.Line(j)
			}
		}()
	}
	wg.Wait()

	if got := b.LenChars(); got != 500+400 {
		t.Errorf("LenChars() = %d, want 900", got)
	}
}
