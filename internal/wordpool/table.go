package wordpool

import (
	"fmt"

	"github.com/abhisek/speechdrill/internal/phoneme"
)

// entry is a curated word with the rune index of its target sound.
type entry struct {
	text  string
	index int
}

// curated maps a phoneme symbol to its word lists per position.
var curated = map[string]map[phoneme.Position][]entry{
	"/p/": {
		phoneme.Initial: {{"pat", 0}, {"pen", 0}, {"pie", 0}, {"park", 0}, {"push", 0}},
		phoneme.Medial:  {{"happy", 2}, {"apple", 1}, {"happen", 2}, {"zipper", 2}, {"cupcake", 2}},
		phoneme.Final:   {{"top", 2}, {"help", 3}, {"cup", 2}, {"soap", 3}, {"mop", 2}},
	},
	"/tʃ/": {
		phoneme.Initial: {{"chip", 0}, {"chair", 0}, {"chin", 0}, {"cheese", 0}, {"cherry", 0}},
		phoneme.Medial:  {{"teacher", 3}, {"feature", 3}, {"fortune", 3}, {"nature", 2}, {"picture", 3}},
		phoneme.Final:   {{"match", 3}, {"watch", 3}, {"teach", 3}, {"reach", 3}, {"beach", 3}},
	},
}

// placeholderIndex is the phoneme index given to each generic entry, by
// position and entry number.
var placeholderIndex = map[phoneme.Position][]int{
	phoneme.Initial: {0, 0, 0, 0, 0},
	phoneme.Medial:  {3, 4, 3, 4, 3},
	phoneme.Final:   {7, 8, 7, 8, 7},
}

// Source supplies candidate words for one phoneme and position.
type Source interface {
	Lookup(p phoneme.Phoneme, pos phoneme.Position) []PracticeWord
}

// Table is the built-in curated word source. Phonemes without a curated
// list get five generic placeholder entries.
type Table struct{}

// Lookup returns fresh, included candidates. It never returns nil for a
// known position.
func (Table) Lookup(p phoneme.Phoneme, pos phoneme.Position) []PracticeWord {
	if byPos, ok := curated[p.Symbol]; ok {
		if entries, ok := byPos[pos]; ok {
			out := make([]PracticeWord, 0, len(entries))
			for _, e := range entries {
				out = append(out, PracticeWord{Text: e.text, PhonemeIndex: e.index, Position: pos, Included: true})
			}
			return out
		}
	}

	indexes, ok := placeholderIndex[pos]
	if !ok {
		return nil
	}
	out := make([]PracticeWord, 0, len(indexes))
	for i, idx := range indexes {
		out = append(out, PracticeWord{
			Text:         fmt.Sprintf("Example word %d", i+1),
			PhonemeIndex: idx,
			Position:     pos,
			Included:     true,
		})
	}
	return out
}

// HasCurated reports whether the table holds real words for the symbol.
func (Table) HasCurated(symbol string) bool {
	_, ok := curated[symbol]
	return ok
}
