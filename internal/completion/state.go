// Package completion implements prefix-based cycling completion of the
// trailing word of a command line against a pathscan.Index.
package completion

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/atinylittleshell/launchbox/internal/pathscan"
)

// Direction is the direction of a completion step.
type Direction int

const (
	// Forward moves to the next candidate (Tab).
	Forward Direction = 1
	// Backward moves to the previous candidate (Shift+Tab).
	Backward Direction = -1
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch {
	case d > 0:
		return "forward"
	case d < 0:
		return "backward"
	default:
		return "none"
	}
}

// State tracks one completion cycle. It is created by Begin and stays valid
// until the text is edited by anything other than Advance.
type State struct {
	// text is the input Begin was called with.
	text string

	// start is the byte offset in text where the trailing word begins.
	start int

	// prefix is the trailing word of text.
	prefix string

	// matches is the sorted list of index entries starting with prefix.
	matches []string

	// selected is the index of the current candidate (-1 if none yet).
	selected int

	// current is the text produced by the last Advance (text before the
	// first one).
	current string
}

// Begin starts a completion cycle for the trailing word of fullText.
// The cursor starts before the first candidate.
func Begin(fullText string, index pathscan.Index) *State {
	start, prefix := TrailingWord(fullText)
	return &State{
		text:     fullText,
		start:    start,
		prefix:   prefix,
		matches:  index.WithPrefix(prefix),
		selected: -1,
		current:  fullText,
	}
}

// Advance moves the cursor one step in dir, wrapping at both ends, and
// returns the text with its trailing word replaced by the selected
// candidate. With no candidates it returns the unchanged text and false.
func (s *State) Advance(dir Direction) (string, bool) {
	if len(s.matches) == 0 {
		return s.current, false
	}

	n := len(s.matches)
	switch {
	case dir > 0:
		s.selected = (s.selected + 1) % n
	case dir < 0:
		if s.selected < 0 {
			s.selected = n - 1
		} else {
			s.selected = (s.selected - 1 + n) % n
		}
	default:
		return s.current, s.selected >= 0
	}

	s.current = ReplaceTrailingWord(s.text, s.start, s.matches[s.selected])
	return s.current, true
}

// Valid reports whether text is still the text this state last produced.
// Any other text means the user edited the line and the cycle must restart.
func (s *State) Valid(text string) bool {
	return s != nil && text == s.current
}

// Prefix returns the word being completed.
func (s *State) Prefix() string {
	return s.prefix
}

// Start returns the byte offset of the word being completed.
func (s *State) Start() int {
	return s.start
}

// Matches returns a copy of the candidates for the prefix.
func (s *State) Matches() []string {
	result := make([]string, len(s.matches))
	copy(result, s.matches)
	return result
}

// Len returns the number of candidates.
func (s *State) Len() int {
	return len(s.matches)
}

// Selected returns the index of the current candidate, or -1 if none.
func (s *State) Selected() int {
	return s.selected
}

// Candidate returns the current candidate, or "" if none is selected.
func (s *State) Candidate() string {
	if s.selected < 0 || s.selected >= len(s.matches) {
		return ""
	}
	return s.matches[s.selected]
}

// Text returns the text as of the last Advance.
func (s *State) Text() string {
	return s.current
}

// TrailingWord returns the byte offset and content of the last
// whitespace-delimited word in text. If text is empty or ends in
// whitespace the word is empty and start is len(text).
func TrailingWord(text string) (start int, word string) {
	i := strings.LastIndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return 0, text
	}
	_, size := utf8.DecodeRuneInString(text[i:])
	start = i + size
	return start, text[start:]
}

// ReplaceTrailingWord replaces everything from start onward with candidate.
func ReplaceTrailingWord(text string, start int, candidate string) string {
	if start > len(text) {
		start = len(text)
	}
	if start < 0 {
		start = 0
	}
	return text[:start] + candidate
}
