package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// NumberInput wraps bubbles/textinput for a bounded whole number.
type NumberInput struct {
	Model    textinput.Model
	Min, Max int
}

// NewNumberInput starts with value shown and the input blurred.
func NewNumberInput(value, lo, hi int) NumberInput {
	ti := textinput.New()
	ti.Placeholder = strconv.Itoa(lo) + "-" + strconv.Itoa(hi)
	ti.CharLimit = len(strconv.Itoa(hi))
	ti.SetValue(strconv.Itoa(value))
	return NumberInput{Model: ti, Min: lo, Max: hi}
}

func (n *NumberInput) Focus() tea.Cmd { return n.Model.Focus() }
func (n *NumberInput) Blur()          { n.Model.Blur() }
func (n NumberInput) Focused() bool   { return n.Model.Focused() }

// Update drops non-digit keys before passing the message on.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return n, nil
		}
	}
	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

func (n NumberInput) View() string {
	return n.Model.View()
}

// Value parses the input and clamps it to [Min, Max]. ok is false when
// the input is empty or not a number.
func (n NumberInput) Value() (v int, ok bool) {
	v, err := strconv.Atoi(n.Model.Value())
	if err != nil {
		return 0, false
	}
	return min(max(v, n.Min), n.Max), true
}

// Set replaces the shown value.
func (n *NumberInput) Set(v int) {
	n.Model.SetValue(strconv.Itoa(min(max(v, n.Min), n.Max)))
}
