package components

import "github.com/abhisek/aceguide/internal/content"

var glyphs = map[content.Icon]string{
	content.IconZap:         "ϟ",
	content.IconDroplet:     "◍",
	content.IconStethoscope: "✚",
	content.IconAlert:       "!",
	content.IconBook:        "≡",
	content.IconHeart:       "♥",
}

// Glyph returns the terminal glyph for an icon tag. Unknown or empty tags
// render as a bullet.
func Glyph(icon content.Icon) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return "•"
}
