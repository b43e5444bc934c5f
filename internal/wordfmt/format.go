// Package wordfmt renders a practice word at a given practice level.
package wordfmt

import (
	"math/rand/v2"
	"strings"

	"github.com/abhisek/speechdrill/internal/phoneme"
	"github.com/abhisek/speechdrill/internal/wordpool"
)

// Phrase modifiers and sentence templates. "$" marks the word.
var (
	phrasePrefixes = []string{"the big", "my little", "a nice", "two red", "some blue"}

	sentenceTemplates = []string{
		"I see the $.",
		"Look at the $.",
		"The $ is nice.",
		"We have a $.",
		"Can you find the $?",
	}
)

// RandSource picks phrase and sentence variants. *rand.Rand satisfies it.
type RandSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Formatter produces the display string for a word at a level.
type Formatter struct {
	Rand RandSource
}

// New returns a formatter that draws from the global random source.
func New() *Formatter {
	return &Formatter{Rand: globalRand{}}
}

// Format renders w for the level. Indexes are rune offsets. At the isolation
// and medial syllable levels an index outside [0, len) falls back to the
// whole word. Format never fails.
func (f *Formatter) Format(w wordpool.PracticeWord, level phoneme.Level) string {
	switch level {
	case phoneme.LevelIsolation:
		return isolation(w)
	case phoneme.LevelSyllable:
		return syllable(w)
	case phoneme.LevelPhrase:
		return f.pick(phrasePrefixes) + " " + w.Text
	case phoneme.LevelSentence:
		return strings.ReplaceAll(f.pick(sentenceTemplates), "$", w.Text)
	default:
		return w.Text
	}
}

func (f *Formatter) pick(options []string) string {
	r := f.Rand
	if r == nil {
		r = globalRand{}
	}
	return options[r.IntN(len(options))]
}

func isolation(w wordpool.PracticeWord) string {
	runes := []rune(w.Text)
	if w.PhonemeIndex < 0 || w.PhonemeIndex >= len(runes) {
		return w.Text
	}
	return string(runes[w.PhonemeIndex])
}

func syllable(w wordpool.PracticeWord) string {
	runes := []rune(w.Text)
	switch w.Position {
	case phoneme.Initial:
		return strings.ToLower(string(runes[:min(2, len(runes))]))
	case phoneme.Final:
		return strings.ToLower(string(runes[max(0, len(runes)-2):]))
	}

	if w.PhonemeIndex < 0 || w.PhonemeIndex >= len(runes) {
		return strings.ToLower(w.Text)
	}
	start := max(0, w.PhonemeIndex-1)
	end := min(len(runes), w.PhonemeIndex+2)
	return strings.ToLower(string(runes[start:end]))
}
