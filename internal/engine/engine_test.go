package engine

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/quick"

	"github.com/dshills/reflex/internal/engine/cursor"
	"github.com/dshills/reflex/internal/renderer/viewport"
	"github.com/dshills/reflex/internal/vfs"
)

func newTestBuffer(content string) *FileBuffer {
	return New(WithContent(content), WithFS(vfs.NewMemFS()))
}

func TestNew(t *testing.T) {
	fb := New()

	if !fb.IsEmpty() || fb.IsDirty() {
		t.Errorf("IsEmpty=%v IsDirty=%v, want true/false", fb.IsEmpty(), fb.IsDirty())
	}
	if fb.LineCount() != 0 {
		t.Errorf("LineCount() = %d, want 0", fb.LineCount())
	}
	if fb.Name() != "[No Name]" {
		t.Errorf("Name() = %q", fb.Name())
	}
	if fb.ID() == "" || fb.ID() == New().ID() {
		t.Error("each buffer needs a unique ID")
	}
	if got := fb.Primary().Cursor; got != cursor.At(0, 0) {
		t.Errorf("Primary() = %v", got)
	}
}

func TestInsertIntoEmptyBuffer(t *testing.T) {
	fb := New()
	fb.Insert('x')

	if fb.IsEmpty() || !fb.IsDirty() {
		t.Errorf("IsEmpty=%v IsDirty=%v, want false/true", fb.IsEmpty(), fb.IsDirty())
	}
	if fb.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", fb.LineCount())
	}
	if got := fb.Primary().Cursor; !got.SamePlace(cursor.At(0, 1)) {
		t.Errorf("cursor = %v, want (0:1)", got)
	}
	if fb.Text() != "x" {
		t.Errorf("Text() = %q, want %q", fb.Text(), "x")
	}
}

func TestInsertBackspaceOnEmptyBuffer(t *testing.T) {
	for _, r := range "x\né" {
		fb := New()
		fb.Insert(r)
		fb.Delete(true)

		if fb.Text() != "" || fb.LineCount() != 0 {
			t.Errorf("%q: Text()=%q LineCount()=%d, want empty", r, fb.Text(), fb.LineCount())
		}
		if got := fb.Primary().Cursor; !got.SamePlace(cursor.At(0, 0)) {
			t.Errorf("%q: cursor = %v, want (0:0)", r, got)
		}
	}
}

func TestInsertNewlineSplitsLine(t *testing.T) {
	fb := newTestBuffer("abc\ndef\n")
	fb.SetCursor(cursor.At(0, 3))
	fb.Insert('\n')

	if fb.Text() != "abc\n\ndef\n" {
		t.Errorf("Text() = %q", fb.Text())
	}
	if got := fb.Primary().Cursor; got != cursor.At(1, 0) {
		t.Errorf("cursor = %+v, want (1:0)", got)
	}
	if fb.LineCount() != 3 {
		t.Errorf("LineCount() = %d, want 3", fb.LineCount())
	}
}

func TestInsertAtEndOfBuffer(t *testing.T) {
	fb := newTestBuffer("abc\n")
	fb.SetCursor(cursor.At(1, 0))
	fb.InsertString("de")

	if fb.Text() != "abc\nde\n" {
		t.Errorf("Text() = %q", fb.Text())
	}
	if got := fb.Primary().Cursor; !got.SamePlace(cursor.At(1, 2)) {
		t.Errorf("cursor = %v, want (1:2)", got)
	}
}

func TestBackspaceAtOrigin(t *testing.T) {
	fb := newTestBuffer("abc")
	fb.Delete(true)

	if fb.Text() != "abc" || fb.IsDirty() {
		t.Errorf("Text()=%q dirty=%v; want unchanged", fb.Text(), fb.IsDirty())
	}
	if got := fb.Primary().Cursor; got != cursor.At(0, 0) {
		t.Errorf("cursor = %v", got)
	}
}

func TestBackspaceJoinsLines(t *testing.T) {
	fb := newTestBuffer("abc\ndef")
	fb.SetCursor(cursor.At(1, 0))
	fb.Delete(true)

	if fb.Text() != "abcdef" {
		t.Errorf("Text() = %q", fb.Text())
	}
	if fb.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", fb.LineCount())
	}
	if got := fb.Primary().Cursor; !got.SamePlace(cursor.At(0, 3)) {
		t.Errorf("cursor = %v, want (0:3)", got)
	}
}

func TestDeleteForward(t *testing.T) {
	tests := []struct {
		name    string
		content string
		at      cursor.Position
		want    string
		cursor  cursor.Position
		dirty   bool
	}{
		{"middle", "abc", cursor.At(0, 1), "ac", cursor.At(0, 1), true},
		{"joins lines", "ab\ncd", cursor.At(0, 2), "abcd", cursor.At(0, 2), true},
		{"end of text", "ab", cursor.At(0, 2), "ab", cursor.At(0, 2), false},
		{"end of buffer line", "ab\n", cursor.At(1, 0), "ab\n", cursor.At(1, 0), false},
		{"empty", "", cursor.At(0, 0), "", cursor.At(0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := newTestBuffer(tt.content)
			fb.SetCursor(tt.at)
			fb.Delete(false)

			if fb.Text() != tt.want {
				t.Errorf("Text() = %q, want %q", fb.Text(), tt.want)
			}
			if got := fb.Primary().Cursor; !got.SamePlace(tt.cursor) {
				t.Errorf("cursor = %v, want %v", got, tt.cursor)
			}
			if fb.IsDirty() != tt.dirty {
				t.Errorf("IsDirty() = %v, want %v", fb.IsDirty(), tt.dirty)
			}
		})
	}
}

func TestDeleteKeepsEmptyFlag(t *testing.T) {
	fb := New()
	fb.Insert('x')
	fb.Delete(true)
	if fb.IsEmpty() {
		t.Error("a buffer that was typed into is no longer empty")
	}
}

func TestMultiCursorInsert(t *testing.T) {
	for _, order := range []string{"left first", "right first"} {
		t.Run(order, func(t *testing.T) {
			fb := newTestBuffer("0123456789\n")
			a, b := cursor.At(0, 2), cursor.At(0, 6)
			if order == "right first" {
				a, b = b, a
			}
			fb.SetCursor(a)
			fb.AddSelection(cursor.NewCaret(b))
			fb.Insert('x')

			if fb.Text() != "01x2345x6789\n" {
				t.Errorf("Text() = %q", fb.Text())
			}
			cols := map[int]bool{}
			for _, sel := range fb.Selections() {
				cols[sel.Cursor.X] = true
			}
			if !cols[3] || !cols[8] {
				t.Errorf("carets at %v, want columns 3 and 8", fb.Selections())
			}
		})
	}
}

func TestMultiCursorBackspace(t *testing.T) {
	fb := newTestBuffer("0123456789")
	fb.SetCursor(cursor.At(0, 2))
	fb.AddSelection(cursor.NewCaret(cursor.At(0, 6)))
	fb.Delete(true)

	if fb.Text() != "02346789" {
		t.Errorf("Text() = %q", fb.Text())
	}
	sels := fb.Selections()
	if !sels[0].Cursor.SamePlace(cursor.At(0, 1)) || !sels[1].Cursor.SamePlace(cursor.At(0, 4)) {
		t.Errorf("carets = %v", sels)
	}
}

func TestMultiCursorNewlineShiftsLaterLines(t *testing.T) {
	fb := newTestBuffer("ab\ncd\n")
	fb.SetCursor(cursor.At(0, 1))
	fb.AddSelection(cursor.NewCaret(cursor.At(1, 1)))
	fb.Insert('\n')

	if fb.Text() != "a\nb\nc\nd\n" {
		t.Errorf("Text() = %q", fb.Text())
	}
	sels := fb.Selections()
	if sels[0].Cursor != cursor.At(1, 0) || sels[1].Cursor != cursor.At(3, 0) {
		t.Errorf("carets = %v", sels)
	}
}

func TestMultiCursorBackspaceJoin(t *testing.T) {
	fb := newTestBuffer("ab\ncd\nef")
	fb.SetCursor(cursor.At(1, 0))
	fb.AddSelection(cursor.NewCaret(cursor.At(2, 1)))
	fb.Delete(true)

	if fb.Text() != "abcd\nf" {
		t.Errorf("Text() = %q", fb.Text())
	}
	sels := fb.Selections()
	if !sels[0].Cursor.SamePlace(cursor.At(0, 2)) || !sels[1].Cursor.SamePlace(cursor.At(1, 0)) {
		t.Errorf("carets = %v", sels)
	}
}

func TestCoincidentCarets(t *testing.T) {
	fb := newTestBuffer("ab")
	fb.SetCursor(cursor.At(0, 1))
	fb.AddSelection(cursor.NewCaret(cursor.At(0, 1)))
	fb.Insert('x')
	if fb.Text() != "axxb" {
		t.Errorf("Text() = %q", fb.Text())
	}
	fb.Delete(true)
	fb.Delete(true)
	if fb.Text() != "b" {
		t.Errorf("Text() after two backspaces = %q", fb.Text())
	}
	for _, sel := range fb.Selections() {
		if !sel.Cursor.SamePlace(cursor.At(0, 0)) {
			t.Errorf("caret %v, want (0:0)", sel)
		}
	}
}

func TestMoveCursors(t *testing.T) {
	fb := newTestBuffer("abcd\nab\nabcdef")
	fb.SetCursor(cursor.At(0, 4))

	steps := []struct {
		dir  cursor.Direction
		want cursor.Position
	}{
		{cursor.Right, cursor.At(0, 4)},
		{cursor.Down, cursor.At(1, 2)},
		{cursor.Down, cursor.At(2, 4)},
		{cursor.Down, cursor.At(2, 4)},
		{cursor.Right, cursor.At(2, 5)},
		{cursor.Right, cursor.At(2, 5)},
		{cursor.Up, cursor.At(1, 2)},
		{cursor.Left, cursor.At(1, 1)},
		{cursor.Up, cursor.At(0, 1)},
		{cursor.Up, cursor.At(0, 1)},
		{cursor.Left, cursor.At(0, 0)},
		{cursor.Left, cursor.At(0, 0)},
	}

	for i, s := range steps {
		fb.MoveCursors(s.dir)
		if got := fb.Primary().Cursor; !got.SamePlace(s.want) {
			t.Fatalf("step %d (%v): cursor = %v, want %v", i, s.dir, got, s.want)
		}
	}
}

func TestMoveCollapsesSelections(t *testing.T) {
	fb := newTestBuffer("abc\ndef\n")
	fb.AddSelection(cursor.NewSelection(cursor.At(0, 0), cursor.At(1, 2)))
	fb.MoveCursors(cursor.Left)
	for _, sel := range fb.Selections() {
		if !sel.IsCaret() {
			t.Errorf("selection %v not collapsed", sel)
		}
	}
}

func TestMoveOnEmptyBuffer(t *testing.T) {
	fb := New()
	for _, d := range []cursor.Direction{cursor.Up, cursor.Down, cursor.Left, cursor.Right} {
		fb.MoveCursors(d)
	}
	if got := fb.Primary().Cursor; got != cursor.At(0, 0) {
		t.Errorf("cursor = %v", got)
	}
}

func TestSetCursorClamps(t *testing.T) {
	tests := []struct {
		content string
		at      cursor.Position
		want    cursor.Position
	}{
		{"abc\n", cursor.At(0, 10), cursor.At(0, 3)},
		{"abc\n", cursor.At(5, 2), cursor.At(1, 0)},
		{"abc", cursor.At(5, 2), cursor.At(0, 2)},
		{"abc", cursor.At(-1, -1), cursor.At(0, 0)},
		{"", cursor.At(3, 3), cursor.At(0, 0)},
	}
	for _, tt := range tests {
		fb := newTestBuffer(tt.content)
		fb.SetCursor(tt.at)
		if got := fb.Primary().Cursor; got != tt.want {
			t.Errorf("%q: SetCursor(%v) = %+v, want %+v", tt.content, tt.at, got, tt.want)
		}
	}
}

func TestAddCursorBelow(t *testing.T) {
	fb := newTestBuffer("abc\nd\nxyz")
	fb.SetCursor(cursor.At(0, 2))

	if !fb.AddCursorBelow() || !fb.AddCursorBelow() {
		t.Fatal("AddCursorBelow failed")
	}
	if fb.AddCursorBelow() {
		t.Error("no line below the last one")
	}
	if fb.SelectionCount() != 3 || fb.PrimaryIndex() != 2 {
		t.Errorf("count=%d primary=%d", fb.SelectionCount(), fb.PrimaryIndex())
	}

	fb.Insert('!')
	if fb.Text() != "ab!c\nd!\nxy!z" {
		t.Errorf("Text() = %q", fb.Text())
	}

	fb.ClearSecondarySelections()
	if fb.SelectionCount() != 1 || !fb.Primary().Cursor.SamePlace(cursor.At(2, 3)) {
		t.Errorf("after clear: %v", fb.Selections())
	}
}

func TestShiftViewport(t *testing.T) {
	fb := newTestBuffer(strings.Repeat("0123456789012345\n", 40))
	fb.SetCursor(cursor.At(30, 15))
	fb.ShiftViewport(viewport.Size{Width: 10, Height: 5})

	if got := fb.Offset(); got != cursor.At(26, 6) {
		t.Errorf("Offset() = %v, want (26:6)", got)
	}
	row, col, ok := fb.PrimaryScreenPosition()
	if !ok || row != 4 || col != 9 {
		t.Errorf("PrimaryScreenPosition() = %d,%d,%v", row, col, ok)
	}

	fb.SetCursor(cursor.At(2, 0))
	fb.ShiftViewport(viewport.Size{Width: 10, Height: 5})
	if got := fb.Offset(); got != cursor.At(2, 0) {
		t.Errorf("Offset() after moving up = %v, want (2:0)", got)
	}
}

func TestScrollMargins(t *testing.T) {
	fb := New(WithContent(strings.Repeat("x\n", 50)), WithScrollMargins(2, 0))
	fb.SetCursor(cursor.At(10, 0))
	fb.ShiftViewport(viewport.Size{Width: 10, Height: 10})
	if got := fb.Offset().Y; got != 3 {
		t.Errorf("top line = %d, want 3", got)
	}
}

func TestCharUnderCursor(t *testing.T) {
	fb := newTestBuffer("héllo\r\nx")
	tests := []struct {
		at   cursor.Position
		want rune
	}{
		{cursor.At(0, 1), 'é'},
		{cursor.At(0, 5), ' '},
		{cursor.At(0, 6), ' '},
		{cursor.At(1, 0), 'x'},
		{cursor.At(1, 1), ' '},
		{cursor.At(9, 0), ' '},
	}
	for _, tt := range tests {
		if got := fb.CharUnderCursor(tt.at); got != tt.want {
			t.Errorf("CharUnderCursor(%v) = %q, want %q", tt.at, got, tt.want)
		}
	}
}

func TestOpenSave(t *testing.T) {
	mem := vfs.NewMemFS()
	mem.AddFile("/doc.txt", "line one\nno newline", 0o600)

	fb, err := Open("/doc.txt", WithFS(mem))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if fb.IsEmpty() || fb.IsDirty() || fb.Name() != "doc.txt" {
		t.Errorf("empty=%v dirty=%v name=%q", fb.IsEmpty(), fb.IsDirty(), fb.Name())
	}

	fb.SetCursor(cursor.At(1, 10))
	fb.InsertString("!")
	if !fb.IsDirty() {
		t.Fatal("edit should make the buffer dirty")
	}
	if changed, err := fb.ChangedOnDisk(); err != nil || changed {
		t.Errorf("ChangedOnDisk() after an edit = %v, %v; want false", changed, err)
	}
	if err := fb.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if fb.IsDirty() {
		t.Error("Save should clear dirty")
	}

	data, _ := mem.ReadFile("/doc.txt")
	if string(data) != "line one\nno newline!" {
		t.Errorf("saved %q", data)
	}
	if mode := vfs.ModeOr(mem, "/doc.txt", 0); mode != 0o600 {
		t.Errorf("mode = %o, want 600", mode)
	}
}

func TestOpenEmptyFile(t *testing.T) {
	mem := vfs.NewMemFS()
	mem.AddFile("/empty", "", vfs.DefaultFileMode)
	fb, err := Open("/empty", WithFS(mem))
	if err != nil {
		t.Fatal(err)
	}
	if !fb.IsEmpty() {
		t.Error("zero-length file should open as empty")
	}
}

func TestOpenErrors(t *testing.T) {
	mem := vfs.NewMemFS()
	mem.AddFile("/bin", "\xff\xfe", vfs.DefaultFileMode)
	mem.AddFile("/secret", "x", 0o200)

	tests := []struct {
		path string
		want error
	}{
		{"/missing", fs.ErrNotExist},
		{"/bin", ErrInvalidEncoding},
		{"/secret", fs.ErrPermission},
	}
	for _, tt := range tests {
		fb, err := Open(tt.path, WithFS(mem))
		if fb != nil || !errors.Is(err, tt.want) {
			t.Errorf("Open(%s) = %v, %v; want %v", tt.path, fb, err, tt.want)
		}
	}
}

func TestSaveErrors(t *testing.T) {
	fb := newTestBuffer("x")
	fb.Insert('y')
	if err := fb.Save(); !errors.Is(err, ErrNoPath) {
		t.Errorf("Save() = %v, want ErrNoPath", err)
	}
	if !fb.IsDirty() {
		t.Error("failed save must keep the buffer dirty")
	}

	mem := vfs.NewMemFS()
	mem.AddFile("/ro.txt", "old", 0o444)
	fb, err := Open("/ro.txt", WithFS(mem))
	if err != nil {
		t.Fatal(err)
	}
	fb.Insert('n')
	if err := fb.Save(); !errors.Is(err, fs.ErrPermission) {
		t.Errorf("Save() = %v, want permission error", err)
	}
	if !fb.IsDirty() {
		t.Error("failed save must keep the buffer dirty")
	}
}

func TestSaveAs(t *testing.T) {
	mem := vfs.NewMemFS()
	mem.AddFile("/dir/.keep", "", vfs.DefaultFileMode)
	fb := New(WithFS(mem))
	fb.InsertString("hi")

	if err := fb.SaveAs("/nowhere/x.txt"); err == nil {
		t.Fatal("SaveAs into a missing directory should fail")
	}
	if fb.Path() != "" {
		t.Errorf("failed SaveAs changed Path() to %q", fb.Path())
	}
	if err := fb.SaveAs(""); !errors.Is(err, ErrNoPath) {
		t.Errorf("SaveAs(\"\") = %v", err)
	}
	if err := fb.SaveAs("/dir/x.txt"); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if fb.Path() != "/dir/x.txt" || fb.IsDirty() {
		t.Errorf("Path()=%q dirty=%v", fb.Path(), fb.IsDirty())
	}
	if data, _ := mem.ReadFile("/dir/x.txt"); string(data) != "hi" {
		t.Errorf("saved %q", data)
	}
}

func TestWithPathCreatesOnSave(t *testing.T) {
	mem := vfs.NewMemFS()
	mem.AddFile("/d/.keep", "", vfs.DefaultFileMode)
	fb := New(WithFS(mem), WithPath("/d/new.txt"))
	if err := fb.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !mem.Exists("/d/new.txt") {
		t.Error("file not created")
	}
}

func TestReload(t *testing.T) {
	mem := vfs.NewMemFS()
	mem.AddFile("/f", "abcdef\nxyz\n", vfs.DefaultFileMode)
	fb, err := Open("/f", WithFS(mem))
	if err != nil {
		t.Fatal(err)
	}
	fb.SetCursor(cursor.At(1, 3))
	fb.Insert('!')

	if err := mem.WriteFile("/f", []byte("ab"), vfs.DefaultFileMode); err != nil {
		t.Fatal(err)
	}
	if err := fb.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if fb.Text() != "ab" || fb.IsDirty() {
		t.Errorf("Text()=%q dirty=%v", fb.Text(), fb.IsDirty())
	}
	if got := fb.Primary().Cursor; got != cursor.At(0, 2) {
		t.Errorf("cursor = %+v, want clamped to (0:2)", got)
	}
	if err := New().Reload(); !errors.Is(err, ErrNoPath) {
		t.Errorf("Reload() on untitled = %v", err)
	}
}

// testText maps arbitrary bytes onto a small alphabet with newlines.
func testText(seed []byte) string {
	const alphabet = "ab\nc\n"
	var sb strings.Builder
	for _, b := range seed {
		sb.WriteByte(alphabet[int(b)%len(alphabet)])
	}
	return sb.String()
}

func TestRoundTripProperty(t *testing.T) {
	f := func(seed []byte) bool {
		text := testText(seed)
		mem := vfs.NewMemFS()
		mem.AddFile("/p", text, vfs.DefaultFileMode)
		fb, err := Open("/p", WithFS(mem))
		if err != nil || fb.Save() != nil {
			return false
		}
		data, _ := mem.ReadFile("/p")
		return string(data) == text
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestChangedOnDisk(t *testing.T) {
	mem := vfs.NewMemFS()
	mem.AddFile("/w.txt", "one\n", vfs.DefaultFileMode)
	fb, err := Open("/w.txt", WithFS(mem))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if changed, err := fb.ChangedOnDisk(); err != nil || changed {
		t.Fatalf("ChangedOnDisk() on a fresh buffer = %v, %v", changed, err)
	}

	fb.InsertString("x")
	if err := fb.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if changed, _ := fb.ChangedOnDisk(); changed {
		t.Error("own save reported as an outside change")
	}

	mem.AddFile("/w.txt", "other\n", vfs.DefaultFileMode)
	if changed, err := fb.ChangedOnDisk(); err != nil || !changed {
		t.Errorf("ChangedOnDisk() after an outside write = %v, %v; want true", changed, err)
	}

	if _, err := New().ChangedOnDisk(); !errors.Is(err, ErrNoPath) {
		t.Errorf("ChangedOnDisk() on untitled = %v, want ErrNoPath", err)
	}
}

func TestDirtyFollowsRevisions(t *testing.T) {
	fb := newTestBuffer("ab")
	fb.SetCursor(cursor.At(0, 0))

	fb.Delete(true)
	if fb.IsDirty() {
		t.Error("a skipped backspace must not dirty the buffer")
	}
	fb.Insert('z')
	if !fb.IsDirty() {
		t.Error("insert should dirty the buffer")
	}
	fb.Delete(true)
	if fb.Text() != "ab" || !fb.IsDirty() {
		t.Errorf("Text()=%q dirty=%v; an undone edit still counts as a change", fb.Text(), fb.IsDirty())
	}
}

func TestInsertBackspaceInverse(t *testing.T) {
	f := func(seed []byte, y, x uint8, c uint8) bool {
		fb := newTestBuffer(testText(seed))
		if fb.LineCount() > 0 {
			fb.SetCursor(cursor.At(int(y)%fb.LineCount(), int(x)))
		}
		before, at := fb.Text(), fb.Primary().Cursor

		fb.Insert([]rune("xyz\né")[int(c)%5])
		fb.Delete(true)

		return fb.Text() == before && fb.Primary().Cursor.SamePlace(at)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestViewportContainsCursor(t *testing.T) {
	f := func(seed []byte, y, x uint16, w, h uint8) bool {
		fb := newTestBuffer(testText(seed))
		fb.SetCursor(cursor.At(int(y), int(x)))
		fb.ShiftViewport(viewport.Size{Width: int(w), Height: int(h)})
		row, col, ok := fb.PrimaryScreenPosition()
		size := fb.ViewSize()
		return ok && row >= 0 && row < size.Height && col >= 0 && col < size.Width
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestEditsKeepCaretsOnText(t *testing.T) {
	f := func(seed []byte, ops []uint8) bool {
		fb := newTestBuffer(testText(seed))
		fb.AddCursorBelow()
		fb.AddCursorBelow()
		for _, op := range ops {
			switch op % 8 {
			case 0:
				fb.Insert('q')
			case 1:
				fb.Insert('\n')
			case 2:
				fb.Delete(true)
			case 3:
				fb.Delete(false)
			default:
				fb.MoveCursors(cursor.Direction(op % 4))
			}
			for _, sel := range fb.Selections() {
				p := sel.Cursor
				n := fb.LineCount()
				if p.Y > n || p.X < 0 {
					return false
				}
				if line, ok := fb.Line(p.Y); ok && p.X > line.VisibleLen() {
					return false
				}
				if p.Y == n && p.X != 0 {
					return false
				}
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestScreenPositionInCells(t *testing.T) {
	fb := newTestBuffer("日本語x\n")
	fb.SetCursor(cursor.At(0, 3))
	fb.ShiftViewport(viewport.Size{Width: 4, Height: 3})

	row, col, ok := fb.PrimaryScreenPosition()
	if !ok || row != 0 || col >= 4 {
		t.Fatalf("PrimaryScreenPosition() = %d, %d, %v; want inside 4 cells", row, col, ok)
	}
	if off := fb.Offset(); off.X != 3 || col != 3 {
		t.Errorf("Offset().X = %d col = %d, want 3 and 3", off.X, col)
	}
}
