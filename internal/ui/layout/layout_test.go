package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
}

func TestContentHeight(t *testing.T) {
	assert.Equal(t, 18, ContentHeight(24))
	assert.Equal(t, 0, ContentHeight(4))
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader("Practice", "3/10", 80)
	assert.Contains(t, out, "speechdrill")
	assert.Contains(t, out, "Practice")
	assert.Contains(t, out, "3/10")
	assert.Equal(t, HeaderHeight, lipgloss.Height(out))
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader("Setup", "", 80)
	footer := RenderFooter([]KeyHint{{Key: "q", Description: "Quit"}}, 80)
	out := RenderFrame(header, "body", footer, 80, 24)

	assert.Equal(t, 24, lipgloss.Height(out))
	assert.True(t, strings.Contains(out, "body"))
}
