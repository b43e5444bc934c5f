package session

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/speechdrill/internal/phoneme"
	"github.com/abhisek/speechdrill/internal/practice"
	"github.com/abhisek/speechdrill/internal/wordpool"
)

func seeded(seed uint64) *Assembler {
	return &Assembler{Rand: rand.New(rand.NewPCG(seed, seed*31+7))}
}

// config builds a configuration with n stored words named <id>-w<i>.
func config(id, symbol string, n int) practice.Configuration {
	c := practice.Configuration{
		ID:            id,
		PhonemeSymbol: symbol,
		Language:      phoneme.English,
		Position:      phoneme.Initial,
		Level:         phoneme.LevelWord,
	}
	for i := 0; i < n; i++ {
		c.Words = append(c.Words, wordpool.PracticeWord{
			ID:       fmt.Sprintf("%s-w%d", id, i),
			Text:     fmt.Sprintf("%s word %d", symbol, i),
			Position: phoneme.Initial,
			Included: true,
		})
	}
	return c
}
