package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func key(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

func TestChecklistSkipsDisabledRows(t *testing.T) {
	c := NewChecklist([]CheckItem{
		{ID: "a", Label: "/s/", Disabled: true},
		{ID: "b", Label: "/p/", Checked: true},
		{ID: "c", Label: "/t/", Disabled: true},
		{ID: "d", Label: "/k/"},
	})
	assert.Equal(t, 1, c.Cursor)

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, c.Cursor)
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, c.Cursor)

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	assert.Equal(t, []string{"b", "d"}, c.Checked())
}

func TestChecklistToggleAll(t *testing.T) {
	c := NewChecklist([]CheckItem{
		{ID: "a", Checked: true},
		{ID: "b"},
		{ID: "c", Disabled: true},
	})

	c, _ = c.Update(key('a'))
	assert.Equal(t, []string{"a", "b"}, c.Checked())

	c, _ = c.Update(key('a'))
	assert.Empty(t, c.Checked())
}

func TestChecklistAllDisabled(t *testing.T) {
	c := NewChecklist([]CheckItem{{ID: "a", Disabled: true}})
	assert.Equal(t, -1, c.Cursor)

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	assert.Empty(t, c.Checked())
	assert.Contains(t, c.View(), "[-]")
}

func TestProgressBarFraction(t *testing.T) {
	assert.Equal(t, 0.0, NewProgressBar(0, 0, 40).Fraction())
	assert.Equal(t, 0.5, NewProgressBar(5, 10, 40).Fraction())
	assert.Equal(t, 1.0, NewProgressBar(12, 10, 40).Fraction())
	assert.Contains(t, NewProgressBar(3, 10, 40).View(), "3/10")
}

func TestNumberInput(t *testing.T) {
	n := NewNumberInput(5, 1, 10)
	n.Focus()

	v, ok := n.Value()
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	n, _ = n.Update(key('x'))
	v, _ = n.Value()
	assert.Equal(t, 5, v, "letters are ignored")

	n.Set(42)
	v, _ = n.Value()
	assert.Equal(t, 10, v)

	n.Model.SetValue("")
	_, ok = n.Value()
	assert.False(t, ok)
}
