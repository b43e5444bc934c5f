// Package access decides which phonemes can be practiced.
package access

import "github.com/abhisek/speechdrill/internal/phoneme"

// Gate reports whether a phoneme is available for practice.
type Gate interface {
	IsUnlocked(symbol string) bool
}

// FreeSymbols are always unlocked, written without IPA slashes.
var FreeSymbols = []string{"p", "t", "k"}

// SubscriptionGate unlocks the free symbols, or everything when premium
// is unlocked.
type SubscriptionGate struct {
	PremiumUnlocked bool
}

// IsUnlocked accepts symbols with or without slashes.
func (g SubscriptionGate) IsUnlocked(symbol string) bool {
	if g.PremiumUnlocked {
		return true
	}
	bare := phoneme.BareSymbol(symbol)
	for _, free := range FreeSymbols {
		if bare == free {
			return true
		}
	}
	return false
}

// GateFunc adapts a function to Gate.
type GateFunc func(symbol string) bool

func (f GateFunc) IsUnlocked(symbol string) bool { return f(symbol) }
