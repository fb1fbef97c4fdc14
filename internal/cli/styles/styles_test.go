package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/kanban/internal/config"
)

func TestLabelSwatch(t *testing.T) {
	assert.Empty(t, LabelSwatch(nil))

	empty := ""
	assert.Empty(t, LabelSwatch(&empty))

	color := "#ff0000"
	assert.Contains(t, LabelSwatch(&color), "#ff0000")
}

func TestRenderCardContainsContent(t *testing.T) {
	Init(config.MonochromeColorScheme())
	t.Cleanup(func() { Init(config.DefaultColorScheme()) })

	out := RenderCard("Write tests")
	assert.Contains(t, out, "Write tests")
	assert.Contains(t, out, "╭")
}

func TestRenderMarkdown(t *testing.T) {
	assert.Contains(t, RenderMarkdown("", 60), "No description")
	assert.Contains(t, RenderMarkdown("   \n", 60), "No description")

	out := RenderMarkdown("# Release\n\nShip the **board** view.", 60)
	assert.Contains(t, out, "Release")
	assert.Contains(t, out, "board")
}
