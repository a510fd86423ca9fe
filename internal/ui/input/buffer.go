package input

import (
	"unicode"
)

// Buffer holds the input text as runes together with the cursor position.
type Buffer struct {
	runes []rune
	pos   int
}

// NewBuffer creates a new empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{runes: []rune{}}
}

// Text returns the current text content as a string.
func (b *Buffer) Text() string {
	return string(b.runes)
}

// Len returns the length of the text in runes.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// Pos returns the current cursor position.
func (b *Buffer) Pos() int {
	return b.pos
}

// SetText replaces the content and moves the cursor to the end.
func (b *Buffer) SetText(text string) {
	b.runes = []rune(text)
	b.pos = len(b.runes)
}

// SetPos sets the cursor position, clamped to [0, Len()].
func (b *Buffer) SetPos(pos int) {
	b.pos = clamp(pos, 0, len(b.runes))
}

// CursorStart moves the cursor to the start of the buffer.
func (b *Buffer) CursorStart() {
	b.pos = 0
}

// CursorEnd moves the cursor to the end of the buffer.
func (b *Buffer) CursorEnd() {
	b.pos = len(b.runes)
}

// InsertRunes inserts runes at the cursor and moves the cursor past them.
func (b *Buffer) InsertRunes(runes []rune) {
	if len(runes) == 0 {
		return
	}

	result := make([]rune, 0, len(b.runes)+len(runes))
	result = append(result, b.runes[:b.pos]...)
	result = append(result, runes...)
	result = append(result, b.runes[b.pos:]...)

	b.runes = result
	b.pos += len(runes)
}

// DeleteCharBackward deletes the character before the cursor.
// Returns true if a character was deleted.
func (b *Buffer) DeleteCharBackward() bool {
	if b.pos == 0 {
		return false
	}
	b.deleteRange(b.pos-1, b.pos)
	return true
}

// DeleteCharForward deletes the character at the cursor.
// Returns true if a character was deleted.
func (b *Buffer) DeleteCharForward() bool {
	if b.pos >= len(b.runes) {
		return false
	}
	b.deleteRange(b.pos, b.pos+1)
	return true
}

// DeleteWordBackward deletes the word to the left of the cursor.
// Returns true if anything was deleted.
func (b *Buffer) DeleteWordBackward() bool {
	if b.pos == 0 {
		return false
	}
	end := b.pos
	b.WordBackward()
	b.deleteRange(b.pos, end)
	return true
}

// WordBackward moves the cursor to the start of the previous word.
// A word is a sequence of non-whitespace characters.
func (b *Buffer) WordBackward() {
	i := b.pos - 1
	for i >= 0 && unicode.IsSpace(b.runes[i]) {
		i--
	}
	for i >= 0 && !unicode.IsSpace(b.runes[i]) {
		i--
	}
	b.pos = i + 1
}

// WordForward moves the cursor to the end of the next word.
func (b *Buffer) WordForward() {
	i := b.pos
	for i < len(b.runes) && unicode.IsSpace(b.runes[i]) {
		i++
	}
	for i < len(b.runes) && !unicode.IsSpace(b.runes[i]) {
		i++
	}
	b.pos = i
}

// deleteRange removes runes in [start, end) and leaves the cursor at start.
func (b *Buffer) deleteRange(start, end int) {
	result := make([]rune, 0, len(b.runes)-(end-start))
	result = append(result, b.runes[:start]...)
	result = append(result, b.runes[end:]...)
	b.runes = result
	b.pos = start
}

// clamp returns value clamped to the range [low, high].
func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
