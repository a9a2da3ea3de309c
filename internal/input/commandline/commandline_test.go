package commandline

import (
	"fmt"
	"testing"
)

func typeText(l *Line, s string) {
	for _, r := range s {
		l.Insert(r)
	}
}

func TestEditing(t *testing.T) {
	l := New()
	typeText(l, "wq")
	l.Left()
	l.Insert('!')
	if l.Text() != "w!q" || l.Cursor() != 2 {
		t.Fatalf("Text()=%q Cursor()=%d", l.Text(), l.Cursor())
	}

	if !l.Backspace() || l.Text() != "wq" {
		t.Errorf("Backspace: %q", l.Text())
	}
	if !l.Delete() || l.Text() != "w" {
		t.Errorf("Delete: %q", l.Text())
	}
	if l.Delete() {
		t.Error("Delete at end should be a no-op")
	}

	l.Home()
	if l.Backspace() || l.Left() {
		t.Error("Backspace/Left at start should be no-ops")
	}
	l.End()
	if l.Right() || l.Cursor() != 1 {
		t.Errorf("Right at end moved to %d", l.Cursor())
	}
	if l.Insert('\x07') {
		t.Error("control characters are not inserted")
	}
}

func TestUnicode(t *testing.T) {
	l := New()
	typeText(l, "e ñé")
	l.Backspace()
	if l.Text() != "e ñ" || l.Cursor() != 3 {
		t.Errorf("Text()=%q Cursor()=%d", l.Text(), l.Cursor())
	}
}

func TestSubmit(t *testing.T) {
	l := New()
	typeText(l, "w")
	if got := l.Submit(); got != "w" {
		t.Errorf("Submit() = %q", got)
	}
	if l.Text() != "" || l.Cursor() != 0 {
		t.Error("Submit should reset the line")
	}

	typeText(l, "w")
	l.Submit()
	l.Submit()
	if h := l.History(); len(h) != 1 {
		t.Errorf("History() = %v, want one entry", h)
	}
}

func TestHistoryBrowsing(t *testing.T) {
	l := New()
	for _, cmd := range []string{"e a.txt", "w", "bn"} {
		typeText(l, cmd)
		l.Submit()
	}

	typeText(l, "q")
	want := []string{"bn", "w", "e a.txt"}
	for _, w := range want {
		if !l.HistoryPrev() || l.Text() != w {
			t.Fatalf("HistoryPrev: %q, want %q", l.Text(), w)
		}
	}
	if l.HistoryPrev() {
		t.Error("HistoryPrev past the oldest entry")
	}

	l.HistoryNext()
	l.HistoryNext()
	if l.Text() != "bn" {
		t.Errorf("HistoryNext: %q", l.Text())
	}
	if !l.HistoryNext() || l.Text() != "q" || l.Cursor() != 1 {
		t.Errorf("typed text not restored: %q", l.Text())
	}
	if l.HistoryNext() {
		t.Error("HistoryNext while editing new input")
	}
}

func TestHistoryLimit(t *testing.T) {
	l := New()
	for i := 0; i < MaxHistory+5; i++ {
		l.SetText(fmt.Sprintf("cmd%d", i))
		l.Submit()
	}
	h := l.History()
	if len(h) != MaxHistory || h[0] != "cmd5" {
		t.Errorf("len=%d first=%q", len(h), h[0])
	}
}
