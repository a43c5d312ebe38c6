// internal/lexicon/phrase.go
package lexicon

import (
	"errors"
	"strings"
)

// ErrLexiconEmpty is returned when the pool cannot supply a phrase whose
// typed form is distinct from every live one.
var ErrLexiconEmpty = errors.New("lexicon: no usable phrase available")

// Chunk pairs what the player types with what the screen shows for one
// segment of a phrase. For plain words the two are the same rune; for kana
// words a chunk is one kana unit and its romaji.
type Chunk struct {
	Typed     string
	Displayed string
}

// Phrase is an ordered list of chunks. Matching walks the typed forms
// chunk by chunk so the UI can highlight exactly the portion entered.
type Phrase struct {
	Chunks []Chunk
}

// NewPlain builds a phrase whose displayed and typed forms are identical,
// one chunk per rune.
func NewPlain(word string) Phrase {
	var p Phrase
	for _, r := range word {
		s := string(r)
		p.Chunks = append(p.Chunks, Chunk{Typed: s, Displayed: s})
	}
	return p
}

func (p Phrase) TypedString() string {
	var b strings.Builder
	for _, c := range p.Chunks {
		b.WriteString(c.Typed)
	}
	return b.String()
}

func (p Phrase) DisplayedString() string {
	var b strings.Builder
	for _, c := range p.Chunks {
		b.WriteString(c.Displayed)
	}
	return b.String()
}

// Empty reports whether the phrase has no typeable content.
func (p Phrase) Empty() bool {
	return len(p.TypedString()) == 0
}
