package wordpool

import (
	"strconv"

	"github.com/abhisek/speechdrill/internal/phoneme"
)

// PracticeWord is a candidate or stored practice word.
type PracticeWord struct {
	// ID is empty for catalog candidates and set once the word is stored.
	ID string

	Text string

	// PhonemeIndex is the rune offset of the target sound within Text.
	// It may be out of range for placeholder entries.
	PhonemeIndex int

	Position phoneme.Position
	Included bool
}

// Key is the membership identity of the word. Stored words are keyed by
// ID; candidates by their text, index and position.
func (w PracticeWord) Key() string {
	if w.ID != "" {
		return w.ID
	}
	return w.Text + "|" + strconv.Itoa(w.PhonemeIndex) + "|" + string(w.Position)
}
