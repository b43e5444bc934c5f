package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/speechdrill/internal/access"
	"github.com/abhisek/speechdrill/internal/logger"
	"github.com/abhisek/speechdrill/internal/practice"
)

// Recorder persists a finished session.
type Recorder interface {
	SaveSession(ctx context.Context, rec practice.SessionRecord) (*practice.SessionRecord, error)
}

// ErrNotStarted is returned by Finish before the session has begun.
var ErrNotStarted = errors.New("session not started")

// Runner drives one practice session for a list: gate check, tracking,
// aggregation and a single save.
type Runner struct {
	*Tracker

	listID   string
	asm      *Assembler
	recorder Recorder
	log      *logger.Logger

	locked  []practice.Configuration
	summary *Summary
	saved   *practice.SessionRecord
}

// NewRunner consults the gate once. Locked configurations are dropped and
// stay out of the session even if the gate changes later.
func NewRunner(list practice.List, gate access.Gate, asm *Assembler, recorder Recorder, log *logger.Logger) *Runner {
	var open, locked []practice.Configuration
	for _, c := range list.Configurations {
		if gate == nil || gate.IsUnlocked(c.PhonemeSymbol) {
			open = append(open, c)
			continue
		}
		locked = append(locked, c)
		log.Info("locked configuration dropped", "list_id", list.ID, "configuration_id", c.ID, "symbol", c.PhonemeSymbol)
	}
	if asm == nil {
		asm = NewAssembler()
	}
	return &Runner{
		Tracker:  NewTracker(open),
		listID:   list.ID,
		asm:      asm,
		recorder: recorder,
		log:      log,
		locked:   locked,
	}
}

// Locked returns the configurations the gate kept out.
func (r *Runner) Locked() []practice.Configuration { return r.locked }

// Start assembles the cards from the selected configurations.
func (r *Runner) Start() error {
	if err := r.Tracker.Start(r.asm); err != nil {
		return err
	}
	r.log.Debug("session started", "list_id", r.listID, "cards", len(r.Items()), "max_words", r.MaxWordsPerConfiguration())
	return nil
}

// Summary aggregates the responses so far. After Finish has been called
// it returns the same summary every time.
func (r *Runner) Summary() Summary {
	if r.summary != nil {
		return *r.summary
	}
	return Aggregate(r.Selected(), r.Items(), r.Responses())
}

// Finish completes the session if needed and saves it. A failed save
// keeps the summary so Finish can be called again; once saved, later
// calls return the stored record without saving again.
func (r *Runner) Finish(ctx context.Context) (*practice.SessionRecord, error) {
	if r.saved != nil {
		return r.saved, nil
	}
	switch r.Phase() {
	case PhaseConfiguring:
		return nil, ErrNotStarted
	case PhaseInProgress:
		r.EndNow()
	}

	if r.summary == nil {
		s := Aggregate(r.Selected(), r.Items(), r.Responses())
		r.summary = &s
	}

	saved, err := r.recorder.SaveSession(ctx, r.summary.Record(r.listID))
	if err != nil {
		r.log.Error("session save failed", "list_id", r.listID, "error", err)
		return nil, fmt.Errorf("save session: %w", err)
	}
	r.saved = saved
	r.log.Info("session saved",
		"list_id", r.listID,
		"session_id", saved.ID,
		"total", saved.TotalWords,
		"correct", saved.Correct,
		"accuracy", r.summary.Accuracy(),
	)
	return saved, nil
}

// Saved reports whether the session has been stored.
func (r *Runner) Saved() bool { return r.saved != nil }
