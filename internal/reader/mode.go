package reader

import (
	"fmt"
	"strings"
)

// Mode selects how a text is presented.
type Mode int

const (
	ModeWords  Mode = iota // One word at a time
	ModeScroll             // Horizontally scrolling strip
)

// String returns the config name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeWords:
		return "words"
	case ModeScroll:
		return "scroll"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Label returns the human readable mode name.
func (m Mode) Label() string {
	switch m {
	case ModeScroll:
		return "Scrolling line"
	default:
		return "Word by word"
	}
}

// Unit returns the speed unit for the mode.
func (m Mode) Unit() string {
	if m == ModeScroll {
		return "chars/min"
	}
	return "words/min"
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "words", "word", "":
		return ModeWords, nil
	case "scroll", "strip":
		return ModeScroll, nil
	default:
		return ModeWords, fmt.Errorf("unknown display mode %q", s)
	}
}

// basis is the position basis of a mode: what position indexes into and
// where playback stops.
type basis struct {
	mode  Mode
	words []string
	chars int
}

func newBasis(mode Mode, body string) basis {
	b := basis{mode: mode}
	switch mode {
	case ModeScroll:
		b.chars = ScrollLength(body)
	default:
		b.words = strings.Fields(body)
	}
	return b
}

// bound is the terminal position for the mode.
func (b basis) bound() int {
	if b.mode == ModeScroll {
		return b.chars
	}
	if len(b.words) == 0 {
		return 0
	}
	return len(b.words) - 1
}

// size is the number of units the position steps through.
func (b basis) size() int {
	if b.mode == ModeScroll {
		return b.chars
	}
	return len(b.words)
}

func (b basis) word(pos int) string {
	if pos < 0 || pos >= len(b.words) {
		return ""
	}
	return b.words[pos]
}
