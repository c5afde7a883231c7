package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"

	"github.com/abhisek/aceguide/internal/guide"
)

// featurePrompts lists the toggles asked by the wizard, in order.
var featurePrompts = []struct {
	Label string
	Get   func(*Features) *bool
}{
	{"Show progress tracker", func(f *Features) *bool { return &f.ProgressTracker }},
	{"Expandable drug cards", func(f *Features) *bool { return &f.ExpandableCards }},
	{"Show scroll indicator", func(f *Features) *bool { return &f.ScrollIndicator }},
	{"Show scroll-to-top control", func(f *Features) *bool { return &f.ScrollTopButton }},
	{"Show key takeaways", func(f *Features) *bool { return &f.Takeaways }},
}

// RunWizard runs an interactive configuration wizard starting from base
// and saves the result to path.
func RunWizard(base *Config, path string) (*Config, error) {
	cfg := *base

	fmt.Println("Let's configure aceguide.")
	fmt.Println()

	themes := guide.AllThemes()
	items := make([]string, len(themes))
	cursor := 0
	for i, th := range themes {
		items[i] = string(th)
		if string(th) == cfg.Theme {
			cursor = i
		}
	}
	themePrompt := promptui.Select{
		Label:     "Select theme",
		Items:     items,
		CursorPos: cursor,
	}
	idx, _, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}
	cfg.Theme = string(themes[idx])

	for _, fp := range featurePrompts {
		flag := fp.Get(&cfg.Features)
		pos := 0
		if !*flag {
			pos = 1
		}
		sel := promptui.Select{
			Label:     fp.Label,
			Items:     []string{"on", "off"},
			CursorPos: pos,
		}
		i, _, err := sel.Run()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fp.Label, err)
		}
		*flag = i == 0
	}

	thresholdPrompt := promptui.Prompt{
		Label:   "Visibility threshold (0-1]",
		Default: strconv.FormatFloat(cfg.VisibilityThreshold, 'f', -1, 64),
		Validate: func(s string) error {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("not a number")
			}
			if v <= 0 || v > 1 {
				return fmt.Errorf("must be in (0, 1]")
			}
			return nil
		},
	}
	raw, err := thresholdPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("visibility threshold: %w", err)
	}
	cfg.VisibilityThreshold, _ = strconv.ParseFloat(raw, 64)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return &cfg, nil
}
