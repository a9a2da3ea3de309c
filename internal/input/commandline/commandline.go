// Package commandline holds the state of the ':' command line: the text
// being typed, the cursor within it and the history of executed commands.
package commandline

import "unicode"

// MaxHistory is the number of commands remembered.
const MaxHistory = 100

// Line is an editable command line with history.
type Line struct {
	buffer    []rune
	cursorPos int

	history []string

	// historyIndex is the entry being shown, -1 while editing new input.
	historyIndex int
	savedBuffer  []rune
}

// New creates an empty command line.
func New() *Line {
	return &Line{
		buffer:       make([]rune, 0, 64),
		history:      make([]string, 0, MaxHistory),
		historyIndex: -1,
	}
}

// Text returns the command being typed.
func (l *Line) Text() string {
	return string(l.buffer)
}

// Cursor returns the cursor position in characters.
func (l *Line) Cursor() int {
	return l.cursorPos
}

// Insert inserts r at the cursor. Non-printable characters are ignored.
func (l *Line) Insert(r rune) bool {
	if !unicode.IsPrint(r) {
		return false
	}
	if l.cursorPos >= len(l.buffer) {
		l.buffer = append(l.buffer, r)
	} else {
		l.buffer = append(l.buffer[:l.cursorPos+1], l.buffer[l.cursorPos:]...)
		l.buffer[l.cursorPos] = r
	}
	l.cursorPos++
	return true
}

// SetText replaces the command and moves the cursor to its end.
func (l *Line) SetText(s string) {
	l.buffer = []rune(s)
	l.cursorPos = len(l.buffer)
}

// Backspace deletes the character before the cursor.
func (l *Line) Backspace() bool {
	if l.cursorPos == 0 {
		return false
	}
	l.buffer = append(l.buffer[:l.cursorPos-1], l.buffer[l.cursorPos:]...)
	l.cursorPos--
	return true
}

// Delete deletes the character at the cursor.
func (l *Line) Delete() bool {
	if l.cursorPos >= len(l.buffer) {
		return false
	}
	l.buffer = append(l.buffer[:l.cursorPos], l.buffer[l.cursorPos+1:]...)
	return true
}

// Left moves the cursor left.
func (l *Line) Left() bool {
	if l.cursorPos == 0 {
		return false
	}
	l.cursorPos--
	return true
}

// Right moves the cursor right.
func (l *Line) Right() bool {
	if l.cursorPos >= len(l.buffer) {
		return false
	}
	l.cursorPos++
	return true
}

// Home moves the cursor to the start.
func (l *Line) Home() {
	l.cursorPos = 0
}

// End moves the cursor to the end.
func (l *Line) End() {
	l.cursorPos = len(l.buffer)
}

// Reset clears the line and leaves history browsing.
func (l *Line) Reset() {
	l.buffer = l.buffer[:0]
	l.cursorPos = 0
	l.historyIndex = -1
	l.savedBuffer = nil
}

// Submit returns the command, records it in history and resets the line.
func (l *Line) Submit() string {
	cmd := l.Text()
	l.addToHistory(cmd)
	l.Reset()
	return cmd
}

// addToHistory appends cmd unless it is empty or repeats the last entry.
func (l *Line) addToHistory(cmd string) {
	if cmd == "" {
		return
	}
	if len(l.history) > 0 && l.history[len(l.history)-1] == cmd {
		return
	}
	if len(l.history) == MaxHistory {
		l.history = append(l.history[:0], l.history[1:]...)
	}
	l.history = append(l.history, cmd)
}

// History returns a copy of the executed commands, oldest first.
func (l *Line) History() []string {
	out := make([]string, len(l.history))
	copy(out, l.history)
	return out
}

// HistoryPrev shows the previous history entry.
func (l *Line) HistoryPrev() bool {
	if len(l.history) == 0 {
		return false
	}

	switch {
	case l.historyIndex == -1:
		l.savedBuffer = append([]rune(nil), l.buffer...)
		l.historyIndex = len(l.history) - 1
	case l.historyIndex > 0:
		l.historyIndex--
	default:
		return false
	}

	l.SetText(l.history[l.historyIndex])
	return true
}

// HistoryNext shows the next history entry, or the text that was being
// typed after the newest one.
func (l *Line) HistoryNext() bool {
	if l.historyIndex == -1 {
		return false
	}

	l.historyIndex++
	if l.historyIndex >= len(l.history) {
		l.historyIndex = -1
		l.buffer = l.savedBuffer
		if l.buffer == nil {
			l.buffer = make([]rune, 0, 64)
		}
		l.cursorPos = len(l.buffer)
		l.savedBuffer = nil
		return true
	}
	l.SetText(l.history[l.historyIndex])
	return true
}
