package buffer

// LineEnding names the line terminator convention a text uses. The
// buffer never rewrites terminators; the style is informational.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // \n
	LineEndingCRLF                   // \r\n
)

// String returns the short display name of the style.
func (le LineEnding) String() string {
	if le == LineEndingCRLF {
		return "crlf"
	}
	return "lf"
}

// DetectLineEnding reports CRLF when most newlines in text are preceded
// by '\r', and LF otherwise.
func DetectLineEnding(text string) LineEnding {
	var lf, crlf int
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		if i > 0 && text[i-1] == '\r' {
			crlf++
		} else {
			lf++
		}
	}
	if crlf > lf {
		return LineEndingCRLF
	}
	return LineEndingLF
}

// LineEnding detects the style of the first lines of the snapshot.
func (s *Snapshot) LineEnding() LineEnding {
	return DetectLineEnding(s.rope.Slice(0, s.rope.LineStartOffset(64)))
}
