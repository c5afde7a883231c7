package theme

import (
	"testing"

	"github.com/abhisek/aceguide/internal/guide"
)

func TestUseSwitchesPalette(t *testing.T) {
	t.Cleanup(func() { Apply(Violet) })

	Use(guide.ThemeMidnight)
	if Primary != Midnight.Primary {
		t.Errorf("Primary = %v, want %v", Primary, Midnight.Primary)
	}

	Use(guide.ThemeClinical)
	if BgCard != Clinical.BgCard {
		t.Errorf("BgCard = %v, want %v", BgCard, Clinical.BgCard)
	}
}

func TestPaletteForUnknownDefaultsToViolet(t *testing.T) {
	if PaletteFor("neon") != Violet {
		t.Error("unknown theme should map to Violet")
	}
}
