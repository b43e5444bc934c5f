package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/speechdrill/internal/ui/layout"
)

// Screen is one page of the practice TUI.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	// View renders the area between header and footer.
	View(width, height int) string
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider lets a screen show text on the right of the header.
type StatusProvider interface {
	Status() string
}
