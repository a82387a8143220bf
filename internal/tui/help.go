package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// inputHint is repeated inside the help overlay so the input contract is
// visible even after the about text has scrolled away.
const inputHint = "input: YYYY-MM-DD on the selected calendar, or a bare CJDN integer"

// overlayChrome is the horizontal space eaten by the overlay's border
// and padding.
const overlayChrome = 8

// helpOverlay renders the expanded key-binding reference for the
// converter screen. The one-line footer hint is rendered by Model.View
// directly; this overlay only appears when help is toggled on.
type helpOverlay struct {
	inner  help.Model
	keymap KeyMap
}

// newHelpOverlay wraps the shared keymap in an always-expanded help view.
func newHelpOverlay(keymap KeyMap) helpOverlay {
	h := help.New()
	h.ShowAll = true

	return helpOverlay{inner: h, keymap: keymap}
}

// View renders the overlay for the given screen width, narrowing the
// inner help view so the binding columns fit inside the frame.
func (o helpOverlay) View(width int) string {
	o.inner.Width = width - overlayChrome
	body := o.inner.View(o.keymap)
	return HelpOverlayStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		body,
		"",
		LabelStyle.Render(inputHint),
	))
}
