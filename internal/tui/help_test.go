package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpOverlayView(t *testing.T) {
	v := newHelpOverlay(DefaultKeyMap()).View(80)

	// Binding descriptions from the keymap and the input hint must both
	// survive the framing.
	assert.Contains(t, v, "next input calendar")
	assert.Contains(t, v, "toggle help")
	assert.Contains(t, v, "open algorithm reference")
	assert.Contains(t, v, "bare CJDN integer")
}

// The model and its help overlay share one keymap, so rebinding keys can
// never desynchronize the screen from its own help text.
func TestModelSharesKeymap(t *testing.T) {
	m := NewModel()
	assert.Equal(t, m.keymap, m.help.keymap)
}
