package session

import (
	"math/rand/v2"

	"github.com/abhisek/speechdrill/internal/phoneme"
	"github.com/abhisek/speechdrill/internal/practice"
	"github.com/abhisek/speechdrill/internal/wordpool"
)

// RandSource drives subset selection and shuffling. *rand.Rand
// satisfies it.
type RandSource interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type globalRand struct{}

func (globalRand) IntN(n int) int                     { return rand.IntN(n) }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Item is one practice card: a word and the configuration it came from.
type Item struct {
	Word            wordpool.PracticeWord
	ConfigurationID string
	Level           phoneme.Level
}

// Assembler builds the randomized card sequence for a session.
type Assembler struct {
	Rand RandSource
}

// NewAssembler returns an assembler over the global random source.
func NewAssembler() *Assembler {
	return &Assembler{Rand: globalRand{}}
}

// Assemble takes up to maxPerConfig words from each configuration, drawn
// uniformly without replacement when a configuration has more, and
// returns them in one uniformly shuffled sequence. A cap of zero or less
// selects nothing.
func (a *Assembler) Assemble(configs []practice.Configuration, maxPerConfig int) []Item {
	if maxPerConfig <= 0 {
		return nil
	}
	r := a.rand()

	var items []Item
	for _, c := range configs {
		words := make([]wordpool.PracticeWord, len(c.Words))
		copy(words, c.Words)
		if len(words) > maxPerConfig {
			words = sample(r, words, maxPerConfig)
		}
		for _, w := range words {
			items = append(items, Item{Word: w, ConfigurationID: c.ID, Level: c.Level})
		}
	}

	r.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	return items
}

func (a *Assembler) rand() RandSource {
	if a == nil || a.Rand == nil {
		return globalRand{}
	}
	return a.Rand
}

// sample runs a partial Fisher-Yates over words and returns the first k.
// It reorders words in place.
func sample(r RandSource, words []wordpool.PracticeWord, k int) []wordpool.PracticeWord {
	n := len(words)
	for i := 0; i < k; i++ {
		j := i + r.IntN(n-i)
		words[i], words[j] = words[j], words[i]
	}
	return words[:k]
}
