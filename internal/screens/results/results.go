// Package results shows the outcome of a finished session and saves it.
package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/speechdrill/internal/logger"
	"github.com/abhisek/speechdrill/internal/practice"
	"github.com/abhisek/speechdrill/internal/screen"
	"github.com/abhisek/speechdrill/internal/session"
	"github.com/abhisek/speechdrill/internal/ui/layout"
	"github.com/abhisek/speechdrill/internal/ui/theme"
)

// historyRows is how many earlier sessions are listed under the summary.
const historyRows = 5

// savedMsg reports the outcome of a save attempt.
type savedMsg struct {
	Record *practice.SessionRecord
	Err    error
}

// ResultsScreen implements screen.Screen for the session summary.
type ResultsScreen struct {
	ctx    context.Context
	list   practice.List
	runner *session.Runner
	log    *logger.Logger

	// summary is taken once on construction. The runner is only touched
	// again from the save command.
	summary session.Summary
	trend   session.Trend

	saving bool
	saved  *practice.SessionRecord
	err    error
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New expects a runner in the completed phase. The trend compares this
// session with the most recent one in list.Sessions.
func New(ctx context.Context, list practice.List, runner *session.Runner, log *logger.Logger) *ResultsScreen {
	sum := runner.Summary()
	history := append([]practice.SessionRecord{sum.Record(list.ID)}, list.Sessions...)
	return &ResultsScreen{
		ctx:     ctx,
		list:    list,
		runner:  runner,
		log:     log,
		summary: sum,
		trend:   session.ClassifyTrend(history),
	}
}

// Init starts the save.
func (s *ResultsScreen) Init() tea.Cmd {
	return s.save()
}

func (s *ResultsScreen) save() tea.Cmd {
	s.saving = true
	s.err = nil
	runner, ctx := s.runner, s.ctx
	return func() tea.Msg {
		rec, err := runner.Finish(ctx)
		return savedMsg{Record: rec, Err: err}
	}
}

func (s *ResultsScreen) Title() string { return "Results" }

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.saving:
		return []layout.KeyHint{{Key: "", Description: "Saving..."}}
	case s.err != nil:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry save"},
			{Key: "Q", Description: "Quit without saving"},
		}
	}
	return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		s.saving = false
		s.saved, s.err = msg.Record, msg.Err
		return s, nil

	case tea.KeyMsg:
		if s.saving {
			return s, nil
		}
		switch msg.String() {
		case "r":
			if s.err != nil {
				return s, s.save()
			}
		case "enter", "q", "esc":
			return s, tea.Quit
		}
	}
	return s, nil
}

// Saved is the stored record, or nil until a save succeeds.
func (s *ResultsScreen) Saved() *practice.SessionRecord { return s.saved }

func (s *ResultsScreen) View(width, height int) string {
	sum := s.summary
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Session complete"))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%d%% accuracy  %s", sum.Accuracy(), s.trendLabel())))
	b.WriteString("\n")
	b.WriteString(center.Render(
		theme.Correct.Render(fmt.Sprintf("%d correct", sum.Correct)) + "   " +
			theme.Incorrect.Render(fmt.Sprintf("%d incorrect", sum.Incorrect)) + "   " +
			theme.Skipped.Render(fmt.Sprintf("%d skipped", sum.Skipped))))
	b.WriteString("\n\n")

	if len(sum.Results) > 0 {
		b.WriteString(theme.Body.Bold(true).Render("  By sound"))
		b.WriteString("\n")
		for _, r := range sum.Results {
			label := r.PhonemeSymbol
			if c, ok := s.list.Configuration(r.ConfigurationID); ok {
				label = c.Summary()
			}
			b.WriteString(fmt.Sprintf("  %-34s %2d/%-2d  %3d%%\n",
				label, r.Correct, r.Total, practice.Percent(r.Correct, r.Correct+r.Incorrect)))
		}
		b.WriteString("\n")
	}

	b.WriteString(s.renderSaveState())
	b.WriteString("\n")

	if len(s.list.Sessions) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Body.Bold(true).Render("  Earlier sessions"))
		b.WriteString("\n")
		for _, rec := range s.list.Sessions[:min(len(s.list.Sessions), historyRows)] {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("  %-26s %3d%%  (%d/%d)",
				rec.FormattedDate(), rec.Percentage(), rec.Correct, rec.TotalWords)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *ResultsScreen) trendLabel() string {
	switch s.trend {
	case session.TrendPositive:
		return theme.Correct.Render(s.trend.Arrow())
	case session.TrendNegative:
		return theme.Incorrect.Render(s.trend.Arrow())
	}
	return theme.Hint.Render(s.trend.Arrow())
}

func (s *ResultsScreen) renderSaveState() string {
	switch {
	case s.saving:
		return theme.Hint.Render("  Saving session...")
	case s.err != nil:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
			Render("  Could not save this session: " + s.err.Error())
	case s.saved != nil:
		return theme.Hint.Render(fmt.Sprintf("  Saved to history (%d%% of all cards).", s.saved.Percentage()))
	}
	return ""
}
