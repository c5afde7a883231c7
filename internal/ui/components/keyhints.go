package components

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/aceguide/internal/ui/layout"
)

// KeyHints converts enabled key bindings into footer hints.
func KeyHints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if h.Key == "" {
			continue
		}
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
