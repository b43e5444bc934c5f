package session

import (
	"errors"

	"github.com/abhisek/speechdrill/internal/practice"
)

// Phase is the lifecycle state of a practice session.
type Phase int

const (
	PhaseConfiguring Phase = iota // Choosing configurations and the word cap
	PhaseInProgress               // Stepping through cards
	PhaseCompleted                // Finished or ended early
)

func (p Phase) String() string {
	switch p {
	case PhaseConfiguring:
		return "configuring"
	case PhaseInProgress:
		return "in progress"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Response is the outcome recorded for one card. The zero value is
// Skipped, so unanswered cards need no explicit write.
type Response int

const (
	Skipped Response = iota
	Correct
	Incorrect
)

func (r Response) String() string {
	switch r {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "skipped"
	}
}

// Word cap bounds offered by the setup screen.
const (
	DefaultMaxWordsPerConfiguration = 5
	MinWordsPerConfiguration        = 1
	MaxWordsPerConfigurationLimit   = 10
)

var (
	// ErrNoItems is returned by Start when the selection yields no cards.
	ErrNoItems = errors.New("no words available for the selected configurations")

	// ErrNotConfiguring is returned by Start once a session has begun.
	ErrNotConfiguring = errors.New("session already started")
)

// Tracker walks one session through its phases. It is not safe for
// concurrent use.
type Tracker struct {
	configs  []practice.Configuration
	selected map[string]bool
	maxWords int

	phase     Phase
	items     []Item
	responses []Response
	index     int
}

// NewTracker starts in the configuring phase with no configuration
// selected.
func NewTracker(configs []practice.Configuration) *Tracker {
	return &Tracker{
		configs:  configs,
		selected: make(map[string]bool),
		maxWords: DefaultMaxWordsPerConfiguration,
	}
}

func (t *Tracker) Phase() Phase { return t.phase }

// Configurations returns the configurations available for selection.
func (t *Tracker) Configurations() []practice.Configuration { return t.configs }

// Select marks a configuration for the session. Unknown IDs and calls
// outside the configuring phase are ignored.
func (t *Tracker) Select(configID string) {
	if t.phase != PhaseConfiguring || !t.known(configID) {
		return
	}
	t.selected[configID] = true
}

func (t *Tracker) Deselect(configID string) {
	if t.phase != PhaseConfiguring {
		return
	}
	delete(t.selected, configID)
}

func (t *Tracker) Toggle(configID string) {
	if t.selected[configID] {
		t.Deselect(configID)
		return
	}
	t.Select(configID)
}

func (t *Tracker) IsSelected(configID string) bool { return t.selected[configID] }

// Selected returns the chosen configurations in their original order.
func (t *Tracker) Selected() []practice.Configuration {
	var out []practice.Configuration
	for _, c := range t.configs {
		if t.selected[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

func (t *Tracker) SetMaxWordsPerConfiguration(n int) {
	if t.phase != PhaseConfiguring {
		return
	}
	t.maxWords = n
}

func (t *Tracker) MaxWordsPerConfiguration() int { return t.maxWords }

// Start assembles the cards and enters the in-progress phase. Every
// response starts as Skipped.
func (t *Tracker) Start(asm *Assembler) error {
	if t.phase != PhaseConfiguring {
		return ErrNotConfiguring
	}
	items := asm.Assemble(t.Selected(), t.maxWords)
	if len(items) == 0 {
		return ErrNoItems
	}
	t.items = items
	t.responses = make([]Response, len(items))
	t.index = 0
	t.phase = PhaseInProgress
	return nil
}

// CurrentIndex is the zero-based position of the card on screen.
func (t *Tracker) CurrentIndex() int { return t.index }

// Current returns the card on screen, or false outside the in-progress
// phase.
func (t *Tracker) Current() (Item, bool) {
	if t.phase != PhaseInProgress || t.index >= len(t.items) {
		return Item{}, false
	}
	return t.items[t.index], true
}

// Record writes r into the current card's slot. Writes outside the
// in-progress phase or past the end are ignored.
func (t *Tracker) Record(r Response) {
	if t.phase != PhaseInProgress || t.index >= len(t.responses) {
		return
	}
	t.responses[t.index] = r
}

// Advance moves to the next card, or completes the session on the last
// one. It never records a response.
func (t *Tracker) Advance() {
	if t.phase != PhaseInProgress {
		return
	}
	if t.index >= len(t.items)-1 {
		t.phase = PhaseCompleted
		return
	}
	t.index++
}

// EndNow completes the session early. Recorded responses are kept and
// the rest stay Skipped.
func (t *Tracker) EndNow() {
	if t.phase == PhaseInProgress {
		t.phase = PhaseCompleted
	}
}

// Items returns the fixed card sequence.
func (t *Tracker) Items() []Item { return t.items }

// Responses returns a copy of the response slots.
func (t *Tracker) Responses() []Response {
	out := make([]Response, len(t.responses))
	copy(out, t.responses)
	return out
}

func (t *Tracker) known(id string) bool {
	for _, c := range t.configs {
		if c.ID == id {
			return true
		}
	}
	return false
}
