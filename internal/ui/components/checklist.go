package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/speechdrill/internal/ui/theme"
)

// CheckItem is one row of a Checklist.
type CheckItem struct {
	ID       string
	Label    string
	Detail   string
	Checked  bool
	Disabled bool
}

// Checklist is a vertical list of toggleable rows. Disabled rows are
// shown but cannot be focused or toggled.
type Checklist struct {
	Items  []CheckItem
	Cursor int
}

// NewChecklist focuses the first enabled row.
func NewChecklist(items []CheckItem) Checklist {
	c := Checklist{Items: items, Cursor: -1}
	for i, item := range items {
		if !item.Disabled {
			c.Cursor = i
			break
		}
	}
	return c
}

// Update handles up/down movement, space to toggle the focused row and
// "a" to toggle every enabled row.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || c.Cursor < 0 {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := c.Cursor - 1; i >= 0; i-- {
			if !c.Items[i].Disabled {
				c.Cursor = i
				break
			}
		}
	case "down", "j":
		for i := c.Cursor + 1; i < len(c.Items); i++ {
			if !c.Items[i].Disabled {
				c.Cursor = i
				break
			}
		}
	case "space", " ":
		c.Items[c.Cursor].Checked = !c.Items[c.Cursor].Checked
	case "a":
		all := c.allChecked()
		for i := range c.Items {
			if !c.Items[i].Disabled {
				c.Items[i].Checked = !all
			}
		}
	}
	return c, nil
}

func (c Checklist) allChecked() bool {
	for _, item := range c.Items {
		if !item.Disabled && !item.Checked {
			return false
		}
	}
	return true
}

// Checked returns the IDs of checked rows in display order.
func (c Checklist) Checked() []string {
	var ids []string
	for _, item := range c.Items {
		if item.Checked && !item.Disabled {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

func (c Checklist) View() string {
	var b strings.Builder
	for i, item := range c.Items {
		box := "[ ]"
		if item.Checked {
			box = "[x]"
		}
		if item.Disabled {
			box = "[-]"
		}

		cursor := "  "
		style := theme.Unselected
		switch {
		case item.Disabled:
			style = theme.Disabled
		case i == c.Cursor:
			cursor = "▸ "
			style = theme.Selected
		}

		line := style.Render(cursor + box + " " + item.Label)
		if item.Detail != "" {
			line += "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(item.Detail)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
