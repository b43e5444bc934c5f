package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/speechdrill/internal/screen"
)

type stubScreen struct {
	title   string
	initRan bool
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPushPop(t *testing.T) {
	setup := &stubScreen{title: "setup"}
	r := New(setup)

	cards := &stubScreen{title: "cards"}
	r.Update(PushScreenMsg{Screen: cards})
	if r.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", r.Depth())
	}
	if !cards.initRan {
		t.Error("expected Init() to run on pushed screen")
	}

	r.Update(PopScreenMsg{})
	if got := r.Active().Title(); got != "setup" {
		t.Errorf("Active() = %q, want setup", got)
	}

	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("Depth() = %d after pop at bottom, want 1", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&stubScreen{title: "setup"})
	r.Push(&stubScreen{title: "cards"})

	results := &stubScreen{title: "results"}
	r.Update(ReplaceScreenMsg{Screen: results})

	if r.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", r.Depth())
	}
	if r.View(80, 24) != "results" {
		t.Errorf("View() = %q, want results", r.View(80, 24))
	}
	if !results.initRan {
		t.Error("expected Init() to run on replacement")
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	bottom := &stubScreen{title: "setup"}
	top := &stubScreen{title: "cards"}
	r := New(bottom)
	r.Push(top)

	r.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	if len(top.got) != 1 || len(bottom.got) != 0 {
		t.Errorf("forwarded to top=%d bottom=%d, want 1/0", len(top.got), len(bottom.got))
	}
}
