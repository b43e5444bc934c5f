// Package setup is the first screen of a practice run: pick which of the
// list's configurations to drill and how many words to take from each.
package setup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/speechdrill/internal/logger"
	"github.com/abhisek/speechdrill/internal/practice"
	"github.com/abhisek/speechdrill/internal/router"
	"github.com/abhisek/speechdrill/internal/screen"
	practicescreen "github.com/abhisek/speechdrill/internal/screens/practice"
	"github.com/abhisek/speechdrill/internal/session"
	"github.com/abhisek/speechdrill/internal/ui/components"
	"github.com/abhisek/speechdrill/internal/ui/layout"
	"github.com/abhisek/speechdrill/internal/ui/theme"
	"github.com/abhisek/speechdrill/internal/wordfmt"
)

// SetupScreen implements screen.Screen for session configuration.
type SetupScreen struct {
	ctx    context.Context
	list   practice.List
	runner *session.Runner
	format *wordfmt.Formatter
	log    *logger.Logger

	checks     components.Checklist
	maxWords   components.NumberInput
	editingCap bool
	errMsg     string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)
var _ screen.StatusProvider = (*SetupScreen)(nil)

// New selects every unlocked configuration. Locked ones are listed but
// cannot be toggled.
func New(ctx context.Context, list practice.List, runner *session.Runner, format *wordfmt.Formatter, log *logger.Logger) *SetupScreen {
	var items []components.CheckItem
	for _, c := range runner.Configurations() {
		runner.Select(c.ID)
		items = append(items, components.CheckItem{
			ID:      c.ID,
			Label:   c.Summary(),
			Detail:  wordCount(len(c.Words)),
			Checked: true,
		})
	}
	for _, c := range runner.Locked() {
		items = append(items, components.CheckItem{
			ID:       c.ID,
			Label:    c.Summary(),
			Detail:   "locked",
			Disabled: true,
		})
	}

	return &SetupScreen{
		ctx:    ctx,
		list:   list,
		runner: runner,
		format: format,
		log:    log,
		checks: components.NewChecklist(items),
		maxWords: components.NewNumberInput(runner.MaxWordsPerConfiguration(),
			session.MinWordsPerConfiguration, session.MaxWordsPerConfigurationLimit),
	}
}

func wordCount(n int) string {
	if n == 1 {
		return "1 word"
	}
	return fmt.Sprintf("%d words", n)
}

func (s *SetupScreen) Init() tea.Cmd { return nil }

func (s *SetupScreen) Title() string { return "Practice Setup" }

func (s *SetupScreen) Status() string { return s.list.Name }

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.editingCap {
		return []layout.KeyHint{
			{Key: "0-9", Description: "Words per sound"},
			{Key: "Enter", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Space", Description: "Toggle"},
		{Key: "A", Description: "All"},
		{Key: "+/-", Description: "Words"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.editingCap {
			var cmd tea.Cmd
			s.maxWords, cmd = s.maxWords.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.editingCap {
		switch kmsg.String() {
		case "enter", "tab", "esc":
			s.commitCap()
			return s, nil
		}
		var cmd tea.Cmd
		s.maxWords, cmd = s.maxWords.Update(msg)
		return s, cmd
	}

	switch kmsg.String() {
	case "enter":
		return s, s.start()
	case "tab", "w":
		s.editingCap = true
		return s, s.maxWords.Focus()
	case "+", "=", "right", "l":
		s.setCap(s.runner.MaxWordsPerConfiguration() + 1)
		return s, nil
	case "-", "left", "h":
		s.setCap(s.runner.MaxWordsPerConfiguration() - 1)
		return s, nil
	}

	s.checks, _ = s.checks.Update(msg)
	s.syncSelection()
	s.errMsg = ""
	return s, nil
}

func (s *SetupScreen) setCap(n int) {
	n = min(max(n, session.MinWordsPerConfiguration), session.MaxWordsPerConfigurationLimit)
	s.runner.SetMaxWordsPerConfiguration(n)
	s.maxWords.Set(n)
}

// commitCap applies the typed cap, or restores the current one when the
// input does not parse.
func (s *SetupScreen) commitCap() {
	s.editingCap = false
	s.maxWords.Blur()
	if v, ok := s.maxWords.Value(); ok {
		s.setCap(v)
		return
	}
	s.maxWords.Set(s.runner.MaxWordsPerConfiguration())
}

func (s *SetupScreen) syncSelection() {
	checked := make(map[string]bool)
	for _, id := range s.checks.Checked() {
		checked[id] = true
	}
	for _, c := range s.runner.Configurations() {
		if checked[c.ID] {
			s.runner.Select(c.ID)
		} else {
			s.runner.Deselect(c.ID)
		}
	}
}

func (s *SetupScreen) start() tea.Cmd {
	if err := s.runner.Start(); err != nil {
		if errors.Is(err, session.ErrNoItems) {
			s.errMsg = "No words available for the selected sounds."
		} else {
			s.errMsg = err.Error()
		}
		s.log.Debug("session start refused", "list_id", s.list.ID, "error", err)
		return nil
	}
	next := practicescreen.New(s.ctx, s.list, s.runner, s.format, s.log)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render(s.list.Name))
	b.WriteString("\n")
	if s.list.Description != "" {
		b.WriteString(theme.Subtitle.Width(width).Render(s.list.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(s.checks.Items) == 0 {
		b.WriteString(theme.Hint.Render("  This list has no sounds yet. Add one with `speechdrill lists add-config`."))
		return b.String()
	}

	b.WriteString(theme.Body.Render("  Sounds to practice"))
	b.WriteString("\n\n")
	b.WriteString(s.checks.View())
	b.WriteString("\n")

	capLine := "  Words per sound: "
	if s.editingCap {
		capLine += s.maxWords.View()
	} else {
		capLine += theme.Selected.Render(fmt.Sprintf("%d", s.runner.MaxWordsPerConfiguration()))
		capLine += theme.Hint.Render(fmt.Sprintf("  (%d-%d)", session.MinWordsPerConfiguration, session.MaxWordsPerConfigurationLimit))
	}
	b.WriteString(capLine)
	b.WriteString("\n")

	if n := len(s.runner.Locked()); n > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d locked sound(s) need premium access.", n)))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("  " + s.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}
