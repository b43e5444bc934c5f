// Package plan holds the editable word selection for a single phoneme
// before it is saved as a configuration or practiced.
package plan

import (
	"github.com/abhisek/speechdrill/internal/phoneme"
	"github.com/abhisek/speechdrill/internal/wordpool"
)

// Plan is the selection state for one phoneme. At least one position is
// always selected.
type Plan struct {
	Phoneme phoneme.Phoneme
	Level   phoneme.Level
	Words   []wordpool.PracticeWord

	positions map[phoneme.Position]bool
}

// New builds a plan at word level with every candidate included. With no
// positions the plan starts on the initial position.
func New(p phoneme.Phoneme, builder *wordpool.Builder, positions ...phoneme.Position) *Plan {
	pl := &Plan{
		Phoneme:   p,
		Level:     phoneme.LevelWord,
		positions: make(map[phoneme.Position]bool),
	}
	for _, pos := range positions {
		pl.positions[pos] = true
	}
	if len(pl.positions) == 0 {
		pl.positions[phoneme.Initial] = true
	}
	if builder != nil {
		pl.Reload(builder)
	}
	return pl
}

// Positions returns the selected positions in canonical order.
func (pl *Plan) Positions() []phoneme.Position {
	var out []phoneme.Position
	for _, pos := range phoneme.Positions() {
		if pl.positions[pos] {
			out = append(out, pos)
		}
	}
	return out
}

// IsPositionSelected reports whether pos is part of the selection.
func (pl *Plan) IsPositionSelected(pos phoneme.Position) bool {
	return pl.positions[pos]
}

// SelectPosition adds pos to the selection.
func (pl *Plan) SelectPosition(pos phoneme.Position) {
	if pl.positions == nil {
		pl.positions = make(map[phoneme.Position]bool)
	}
	pl.positions[pos] = true
}

// DeselectPosition removes pos unless it is the only one selected.
func (pl *Plan) DeselectPosition(pos phoneme.Position) {
	if !pl.positions[pos] || len(pl.positions) == 1 {
		return
	}
	delete(pl.positions, pos)
}

// TogglePosition flips pos, keeping the selection non-empty.
func (pl *Plan) TogglePosition(pos phoneme.Position) {
	if pl.positions[pos] {
		pl.DeselectPosition(pos)
		return
	}
	pl.SelectPosition(pos)
}

// Reload replaces the words with fresh candidates for the selected
// positions. Inclusion flags reset to included.
func (pl *Plan) Reload(builder *wordpool.Builder) {
	pl.Words = builder.Words(pl.Phoneme, pl.Positions()...)
}

// ToggleAll sets every word's inclusion flag.
func (pl *Plan) ToggleAll(selected bool) {
	for i := range pl.Words {
		pl.Words[i].Included = selected
	}
}

// ToggleWord flips the inclusion flag at i. Out-of-range indexes are
// ignored.
func (pl *Plan) ToggleWord(i int) {
	if i < 0 || i >= len(pl.Words) {
		return
	}
	pl.Words[i].Included = !pl.Words[i].Included
}

func (pl *Plan) HasSelectedWords() bool {
	for _, w := range pl.Words {
		if w.Included {
			return true
		}
	}
	return false
}

func (pl *Plan) SelectedWordCount() int {
	n := 0
	for _, w := range pl.Words {
		if w.Included {
			n++
		}
	}
	return n
}

// AllSelected is false for an empty word list.
func (pl *Plan) AllSelected() bool {
	if len(pl.Words) == 0 {
		return false
	}
	for _, w := range pl.Words {
		if !w.Included {
			return false
		}
	}
	return true
}

// WordsForSession returns the included words in list order.
func (pl *Plan) WordsForSession() []wordpool.PracticeWord {
	out := make([]wordpool.PracticeWord, 0, len(pl.Words))
	for _, w := range pl.Words {
		if w.Included {
			out = append(out, w)
		}
	}
	return out
}
