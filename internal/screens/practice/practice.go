// Package practice shows one card per word and records the user's
// self-assessment for each.
package practice

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/speechdrill/internal/logger"
	domain "github.com/abhisek/speechdrill/internal/practice"
	"github.com/abhisek/speechdrill/internal/router"
	"github.com/abhisek/speechdrill/internal/screen"
	"github.com/abhisek/speechdrill/internal/screens/results"
	"github.com/abhisek/speechdrill/internal/session"
	"github.com/abhisek/speechdrill/internal/ui/components"
	"github.com/abhisek/speechdrill/internal/ui/layout"
	"github.com/abhisek/speechdrill/internal/ui/theme"
	"github.com/abhisek/speechdrill/internal/wordfmt"
)

// PracticeScreen implements screen.Screen for a running session.
type PracticeScreen struct {
	ctx    context.Context
	list   domain.List
	runner *session.Runner
	format *wordfmt.Formatter
	log    *logger.Logger

	// prompts caches the formatted text per card so phrase and sentence
	// variants do not change between redraws.
	prompts map[int]string

	confirmEnd bool
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.StatusProvider = (*PracticeScreen)(nil)

// New expects a runner that has already been started.
func New(ctx context.Context, list domain.List, runner *session.Runner, format *wordfmt.Formatter, log *logger.Logger) *PracticeScreen {
	if format == nil {
		format = wordfmt.New()
	}
	return &PracticeScreen{
		ctx:     ctx,
		list:    list,
		runner:  runner,
		format:  format,
		log:     log,
		prompts: make(map[int]string),
	}
}

func (s *PracticeScreen) Init() tea.Cmd { return nil }

func (s *PracticeScreen) Title() string { return "Practice" }

func (s *PracticeScreen) Status() string {
	return fmt.Sprintf("%d/%d", min(s.runner.CurrentIndex()+1, len(s.runner.Items())), len(s.runner.Items()))
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.confirmEnd {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "C", Description: "Correct"},
		{Key: "X", Description: "Incorrect"},
		{Key: "S", Description: "Skip"},
		{Key: "Esc", Description: "End"},
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.confirmEnd {
		switch kmsg.String() {
		case "y", "Y", "enter":
			s.runner.EndNow()
			s.log.Info("session ended early", "list_id", s.list.ID, "index", s.runner.CurrentIndex())
			return s, s.toResults()
		case "n", "N", "esc":
			s.confirmEnd = false
		}
		return s, nil
	}

	switch kmsg.String() {
	case "c", "1":
		return s, s.respond(session.Correct)
	case "x", "i", "2":
		return s, s.respond(session.Incorrect)
	case "s", "space", " ", "3":
		return s, s.respond(session.Skipped)
	case "esc", "q":
		s.confirmEnd = true
	}
	return s, nil
}

func (s *PracticeScreen) respond(r session.Response) tea.Cmd {
	s.runner.Record(r)
	s.runner.Advance()
	if s.runner.Phase() == session.PhaseCompleted {
		return s.toResults()
	}
	return nil
}

func (s *PracticeScreen) toResults() tea.Cmd {
	next := results.New(s.ctx, s.list, s.runner, s.log)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// prompt returns the card text for index i, formatting it on first use.
func (s *PracticeScreen) prompt(i int, item session.Item) string {
	if p, ok := s.prompts[i]; ok {
		return p
	}
	p := s.format.Format(item.Word, item.Level)
	s.prompts[i] = p
	return p
}

func (s *PracticeScreen) View(width, height int) string {
	if s.confirmEnd {
		return layout.Center(
			theme.Warning.Render("End this session now?")+"\n\n"+
				theme.Hint.Render("Cards you have not reached count as skipped."),
			width, height)
	}

	item, ok := s.runner.Current()
	if !ok {
		return ""
	}
	idx := s.runner.CurrentIndex()

	var b strings.Builder

	if c, found := s.list.Configuration(item.ConfigurationID); found {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  " + c.Summary()))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	card := theme.Card.Render(theme.Word.Render(s.prompt(idx, item)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	bar := components.NewProgressBar(idx, len(s.runner.Items()), min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	sum := s.runner.Summary()
	tally := theme.Correct.Render(fmt.Sprintf("✓ %d", sum.Correct)) + "   " +
		theme.Incorrect.Render(fmt.Sprintf("✗ %d", sum.Incorrect))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tally))

	return b.String()
}
