// Package practice defines practice lists, their configurations and the
// recorded session history.
package practice

import (
	"math"
	"time"

	"github.com/abhisek/speechdrill/internal/phoneme"
	"github.com/abhisek/speechdrill/internal/wordpool"
)

// Configuration is a saved phoneme, position, level and word set owned by
// a list.
type Configuration struct {
	ID            string
	ListID        string
	PhonemeSymbol string
	PhonemeName   string
	Language      phoneme.Language
	Position      phoneme.Position
	Level         phoneme.Level

	// Words is the configuration's selected word set, ordered by text.
	Words     []wordpool.PracticeWord
	CreatedAt time.Time
}

// PhonemeKey returns the catalog identity of the configured phoneme.
func (c Configuration) PhonemeKey() phoneme.Key {
	return phoneme.Key{Symbol: c.PhonemeSymbol, Language: c.Language}
}

// Summary renders the configuration as "/p/ - Initial (Words)".
func (c Configuration) Summary() string {
	return c.PhonemeSymbol + " - " + c.Position.DisplayName() + " (" + c.Level.DisplayName() + ")"
}

// HasWord reports whether key is in the configuration's word set.
func (c Configuration) HasWord(key string) bool {
	for _, w := range c.Words {
		if w.Key() == key {
			return true
		}
	}
	return false
}

// List is a named grouping of configurations with its session history.
type List struct {
	ID              string
	Name            string
	Description     string
	CreatedAt       time.Time
	LastPracticedAt *time.Time

	// Configurations are ordered alphabetically by phoneme symbol.
	Configurations []Configuration

	// Sessions are ordered most recent first.
	Sessions []SessionRecord
}

// TotalWordCount counts distinct word texts across all configurations.
func (l List) TotalWordCount() int {
	seen := make(map[string]struct{})
	for _, c := range l.Configurations {
		for _, w := range c.Words {
			seen[w.Text] = struct{}{}
		}
	}
	return len(seen)
}

// MostRecentSession returns the latest session, if any.
func (l List) MostRecentSession() (SessionRecord, bool) {
	if len(l.Sessions) == 0 {
		return SessionRecord{}, false
	}
	return l.Sessions[0], true
}

// Configuration returns the configuration with the given ID.
func (l List) Configuration(id string) (Configuration, bool) {
	for _, c := range l.Configurations {
		if c.ID == id {
			return c, true
		}
	}
	return Configuration{}, false
}

// ConfigurationResult is the per-configuration breakdown of a session.
type ConfigurationResult struct {
	ConfigurationID string
	PhonemeSymbol   string
	Total           int
	Correct         int
	Incorrect       int
	Skipped         int
}

// SessionRecord is an immutable snapshot of one completed practice run.
// Correct+Incorrect+Skipped equals TotalWords, and the same holds for
// every result row.
type SessionRecord struct {
	ID         string
	ListID     string
	Date       time.Time
	TotalWords int
	Correct    int
	Incorrect  int
	Skipped    int
	Results    []ConfigurationResult
}

// Percentage is the stored score: correct over all words, skips included,
// rounded to the nearest whole percent. It is 0 for an empty session.
func (r SessionRecord) Percentage() int {
	return Percent(r.Correct, r.TotalWords)
}

// Ratio is correct over total, or 0 for an empty session.
func (r SessionRecord) Ratio() float64 {
	if r.TotalWords <= 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.TotalWords)
}

// FormattedDate renders the session date for listings.
func (r SessionRecord) FormattedDate() string {
	if r.Date.IsZero() {
		return "Unknown Date"
	}
	return r.Date.Local().Format("Jan 2, 2006 at 3:04 PM")
}

// Percent returns round(part/whole*100), or 0 when whole is not positive.
func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
