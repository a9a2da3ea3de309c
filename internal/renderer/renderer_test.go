package renderer

import (
	"strings"
	"testing"

	"github.com/dshills/reflex/internal/engine"
	"github.com/dshills/reflex/internal/engine/cursor"
	"github.com/dshills/reflex/internal/renderer/backend"
)

// newTestBackend creates and initializes a NullBackend for testing.
func newTestBackend(width, height int) *backend.NullBackend {
	b := backend.NewNullBackend(width, height)
	_ = b.Init()
	return b
}

func testOptions() Options {
	return Options{ShowWelcome: true, Version: "test"}
}

func render(t *testing.T, b *backend.NullBackend, fb *engine.FileBuffer, f Frame) *Renderer {
	t.Helper()
	r := New(b, testOptions())
	fb.ShiftViewport(r.TextAreaSize())
	f.Doc = fb
	if f.Mode == "" {
		f.Mode = "NORMAL"
	}
	r.Render(f)
	return r
}

func TestTextAreaSize(t *testing.T) {
	r := New(newTestBackend(80, 24), testOptions())
	if got := r.TextAreaSize(); got.Width != 80 || got.Height != 22 {
		t.Errorf("TextAreaSize() = %+v, want 80x22", got)
	}

	r = New(newTestBackend(5, 2), testOptions())
	if got := r.TextAreaSize(); got.Height != 1 {
		t.Errorf("TextAreaSize() on tiny screen = %+v", got)
	}
}

func TestRenderLines(t *testing.T) {
	b := newTestBackend(40, 6)
	fb := engine.New(engine.WithContent("hello\nworld\n"))
	r := render(t, b, fb, Frame{})

	want := []string{"hello", "world", "~", "~", " NORMAL [No Name] - 2 lines", ""}
	for row, w := range want {
		if got := strings.TrimRight(b.Row(row), " "); got != w {
			t.Errorf("row %d = %q, want %q", row, got, w)
		}
	}
	if b.Shows() != 1 || r.FrameCount() != 1 {
		t.Errorf("Shows=%d FrameCount=%d", b.Shows(), r.FrameCount())
	}
	if x, y, visible := b.CursorPosition(); !visible || x != 0 || y != 0 {
		t.Errorf("cursor = %d,%d visible=%v", x, y, visible)
	}
}

func TestRenderWelcome(t *testing.T) {
	b := newTestBackend(40, 11)
	render(t, b, engine.New(), Frame{})

	row := b.Row(3)
	if idx := strings.Index(row, "REFLEX -- vtest"); idx != 12 {
		t.Errorf("welcome at column %d in %q, want 12", idx, row)
	}
	if b.GetCell(0, 0).Rune != '~' {
		t.Error("empty buffer rows should show ~")
	}
}

func TestNoWelcomeAfterTyping(t *testing.T) {
	b := newTestBackend(40, 11)
	fb := engine.New()
	fb.Insert('x')
	render(t, b, fb, Frame{})

	for row := 0; row < 9; row++ {
		if strings.Contains(b.Row(row), "REFLEX") {
			t.Fatalf("welcome still shown on row %d", row)
		}
	}
}

func TestNoWelcomeForNamedFile(t *testing.T) {
	b := newTestBackend(40, 11)
	render(t, b, engine.New(engine.WithPath("new.txt")), Frame{})
	if strings.Contains(b.Row(3), "REFLEX") {
		t.Error("welcome shown for a named file")
	}
}

func TestStatusBar(t *testing.T) {
	b := newTestBackend(60, 6)
	fb := engine.New(engine.WithContent("a\nb\nc\n"), engine.WithPath("/tmp/notes.txt"))
	fb.Insert('z')
	fb.AddCursorBelow()
	render(t, b, fb, Frame{Mode: "INSERT"})

	got := strings.TrimRight(b.Row(4), " ")
	want := " INSERT notes.txt (Dirty) - 3 lines [2/2]"
	if got != want {
		t.Errorf("status = %q, want %q", got, want)
	}
	if !b.GetCell(0, 4).Style.Attributes.Has(backend.AttrReverse) {
		t.Error("status bar should be reverse video")
	}
}

func TestStatusBarTruncates(t *testing.T) {
	b := newTestBackend(10, 4)
	render(t, b, engine.New(engine.WithContent("x")), Frame{})
	if got := b.Row(2); got != " NORMAL [N" {
		t.Errorf("status = %q", got)
	}
}

func TestCommandLine(t *testing.T) {
	b := newTestBackend(20, 5)
	render(t, b, engine.New(), Frame{
		Mode:          "COMMAND",
		CommandActive: true,
		Command:       "w out.txt",
		CommandCursor: 1,
		Message:       "hidden",
	})

	if got := strings.TrimRight(b.Row(4), " "); got != ":w out.txt" {
		t.Errorf("command line = %q", got)
	}
	if x, y, _ := b.CursorPosition(); x != 2 || y != 4 {
		t.Errorf("cursor = %d,%d, want 2,4", x, y)
	}
	if b.CursorStyleValue() != backend.CursorBar {
		t.Error("command line uses a bar cursor")
	}
}

func TestErrorMessage(t *testing.T) {
	b := newTestBackend(30, 5)
	render(t, b, engine.New(), Frame{Message: "E37: No write", MessageType: MessageError})

	if got := strings.TrimRight(b.Row(4), " "); got != "E37: No write" {
		t.Errorf("message = %q", got)
	}
	if b.GetCell(0, 4).Style.Foreground != backend.ColorRed {
		t.Error("errors are drawn in red")
	}
}

func TestCursorFollowsScroll(t *testing.T) {
	b := newTestBackend(10, 7)
	fb := engine.New(engine.WithContent(strings.Repeat("0123456789abcdef\n", 20)))
	fb.SetCursor(cursor.At(12, 14))
	render(t, b, fb, Frame{CursorStyle: backend.CursorBlock})

	if x, y, visible := b.CursorPosition(); !visible || x != 9 || y != 4 {
		t.Errorf("cursor = %d,%d visible=%v; want 9,4", x, y, visible)
	}
	if got := b.Row(4); got != "56789abcde" {
		t.Errorf("row 4 = %q", got)
	}
}

func TestWideCharacters(t *testing.T) {
	b := newTestBackend(20, 4)
	fb := engine.New(engine.WithContent("日本語\tx"))
	fb.SetCursor(cursor.At(0, 4))
	render(t, b, fb, Frame{})

	if got := strings.TrimRight(b.Row(0), " "); got != "日本語 x" {
		t.Errorf("row = %q", got)
	}
	if x, _, _ := b.CursorPosition(); x != 7 {
		t.Errorf("cursor x = %d, want 7", x)
	}
}

func TestWideCharactersScroll(t *testing.T) {
	b := newTestBackend(10, 4)
	fb := engine.New(engine.WithContent(strings.Repeat("日", 8) + "\n"))
	fb.SetCursor(cursor.At(0, 6))
	render(t, b, fb, Frame{})

	x, y, visible := b.CursorPosition()
	if !visible || y != 0 || x >= 10 {
		t.Fatalf("cursor = %d,%d visible=%v; want on screen", x, y, visible)
	}
	if x != 8 {
		t.Errorf("cursor x = %d, want 8", x)
	}
	if off := fb.Offset(); off.X != 4 {
		t.Errorf("Offset().X = %d, want 4 cells", off.X)
	}
	if got := strings.TrimRight(b.Row(0), " "); got != "日日日日日" {
		t.Errorf("row = %q", got)
	}
}

func TestDisplayText(t *testing.T) {
	tests := []struct {
		s    string
		skip int
		want string
	}{
		{"abc", 0, "abc"},
		{"abc", 2, "c"},
		{"a\tb", 0, "a b"},
		{"a\r", 0, "a "},
		{"日本", 2, "本"},
		{"日本", 1, " 本"},
		{"ab", 5, ""},
	}
	for _, tt := range tests {
		if got := displayText(tt.s, tt.skip); got != tt.want {
			t.Errorf("displayText(%q, %d) = %q, want %q", tt.s, tt.skip, got, tt.want)
		}
	}
}

func TestStatusBarLineEnding(t *testing.T) {
	b := newTestBackend(60, 4)
	render(t, b, engine.New(engine.WithContent("a\r\nb\r\n")), Frame{})

	if got := strings.TrimRight(b.Row(2), " "); got != " NORMAL [No Name] - 2 lines (crlf)" {
		t.Errorf("status = %q", got)
	}
}
