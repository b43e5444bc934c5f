package wordpool

import (
	"github.com/abhisek/speechdrill/internal/phoneme"
)

// Builder produces the candidate word pool for a phoneme.
type Builder struct {
	Source Source
}

// NewBuilder returns a builder over the curated table.
func NewBuilder() *Builder {
	return &Builder{Source: Table{}}
}

// Words returns the candidates for p across the given positions. No
// positions means all three. Positions are visited in canonical order
// and the per-position lists are concatenated without de-duplication.
func (b *Builder) Words(p phoneme.Phoneme, positions ...phoneme.Position) []PracticeWord {
	src := b.Source
	if src == nil {
		src = Table{}
	}

	want := make(map[phoneme.Position]bool, len(positions))
	for _, pos := range positions {
		want[pos] = true
	}

	var out []PracticeWord
	for _, pos := range phoneme.Positions() {
		if len(want) > 0 && !want[pos] {
			continue
		}
		out = append(out, src.Lookup(p, pos)...)
	}
	return out
}
