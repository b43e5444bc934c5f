package setup

import (
	"context"
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/speechdrill/internal/access"
	"github.com/abhisek/speechdrill/internal/logger"
	"github.com/abhisek/speechdrill/internal/phoneme"
	"github.com/abhisek/speechdrill/internal/practice"
	"github.com/abhisek/speechdrill/internal/router"
	screenpractice "github.com/abhisek/speechdrill/internal/screens/practice"
	"github.com/abhisek/speechdrill/internal/session"
	"github.com/abhisek/speechdrill/internal/wordfmt"
	"github.com/abhisek/speechdrill/internal/wordpool"
)

type nopRecorder struct{}

func (nopRecorder) SaveSession(_ context.Context, rec practice.SessionRecord) (*practice.SessionRecord, error) {
	return &rec, nil
}

func config(id, symbol string, words ...string) practice.Configuration {
	c := practice.Configuration{ID: id, PhonemeSymbol: symbol, Position: phoneme.Initial, Level: phoneme.LevelWord}
	for i, w := range words {
		c.Words = append(c.Words, wordpool.PracticeWord{ID: id + "-" + string(rune('a'+i)), Text: w, Position: phoneme.Initial, Included: true})
	}
	return c
}

func newScreen(t *testing.T) (*SetupScreen, *session.Runner) {
	t.Helper()
	list := practice.List{
		ID:   "L1",
		Name: "Weekly",
		Configurations: []practice.Configuration{
			config("p", "/p/", "pat", "pen", "pie"),
			config("s", "/s/", "sun", "sock"),
			config("t", "/t/"),
		},
	}
	asm := &session.Assembler{Rand: rand.New(rand.NewPCG(1, 2))}
	runner := session.NewRunner(list, access.SubscriptionGate{}, asm, nopRecorder{}, logger.Nop())
	return New(context.Background(), list, runner, wordfmt.New(), logger.Nop()), runner
}

func key(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

func TestNew_SelectsUnlockedAndShowsLocked(t *testing.T) {
	s, runner := newScreen(t)

	assert.True(t, runner.IsSelected("p"))
	assert.True(t, runner.IsSelected("t"))
	require.Len(t, runner.Locked(), 1)

	view := s.View(80, 30)
	assert.Contains(t, view, "/p/ - Initial (Words)")
	assert.Contains(t, view, "locked")
	assert.Contains(t, view, "1 locked sound(s)")
}

func TestEnter_StartsSession(t *testing.T) {
	s, runner := newScreen(t)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &screenpractice.PracticeScreen{}, msg.Screen)
	assert.Equal(t, session.PhaseInProgress, runner.Phase())
	assert.Len(t, runner.Items(), 3)
}

func TestEnter_NoWordsShowsMessage(t *testing.T) {
	s, runner := newScreen(t)

	// Leave only the empty /t/ configuration selected.
	s.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	assert.False(t, runner.IsSelected("p"))

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, session.PhaseConfiguring, runner.Phase())
	assert.Contains(t, s.View(80, 30), "No words available")
}

func TestToggleAll(t *testing.T) {
	s, runner := newScreen(t)

	s.Update(key('a'))
	assert.Empty(t, runner.Selected())

	s.Update(key('a'))
	assert.Len(t, runner.Selected(), 2)
}

func TestCapKeysClamp(t *testing.T) {
	s, runner := newScreen(t)
	assert.Equal(t, session.DefaultMaxWordsPerConfiguration, runner.MaxWordsPerConfiguration())

	for range 10 {
		s.Update(key('+'))
	}
	assert.Equal(t, session.MaxWordsPerConfigurationLimit, runner.MaxWordsPerConfiguration())

	for range 20 {
		s.Update(key('-'))
	}
	assert.Equal(t, session.MinWordsPerConfiguration, runner.MaxWordsPerConfiguration())
}

func TestCapTyped(t *testing.T) {
	s, runner := newScreen(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.True(t, s.editingCap)

	s.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	s.Update(key('2'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	assert.False(t, s.editingCap)
	assert.Equal(t, 2, runner.MaxWordsPerConfiguration())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Len(t, runner.Items(), 2, "/t/ has no words, so only two /p/ cards")
}
