package guide

import (
	"fmt"
	"strings"
	"time"
)

// Theme selects one of the built-in colour palettes.
type Theme string

const (
	ThemeViolet   Theme = "violet"
	ThemeMidnight Theme = "midnight"
	ThemeClinical Theme = "clinical"
)

// AllThemes returns the supported themes in display order.
func AllThemes() []Theme {
	return []Theme{ThemeViolet, ThemeMidnight, ThemeClinical}
}

// ParseTheme parses a theme name case-insensitively.
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllThemes() {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown theme %q: must be one of violet, midnight, clinical", s)
}

const (
	DefaultVisibilityThreshold = 0.5
	DefaultLoadingDelay        = 800 * time.Millisecond
)

// Options parameterizes the single guide view. Every visual variant of the
// page is expressed through these flags.
type Options struct {
	Theme Theme `json:"theme"`

	// ProgressTracker shows the completed-sections counter and bar.
	ProgressTracker bool `json:"progress_tracker"`

	// ExpandableCards lets drug cards reveal their detail fields.
	ExpandableCards bool `json:"expandable_cards"`

	// ScrollIndicator shows the scroll position gauge.
	ScrollIndicator bool `json:"scroll_indicator"`

	// ScrollTopButton adds a back-to-top control at the end of the page
	// and enables the t shortcut.
	ScrollTopButton bool `json:"scroll_top_button"`

	// Takeaways shows the key takeaway line of each open section.
	Takeaways bool `json:"takeaways"`

	// VisibilityThreshold is the fraction of a section body that must be
	// in view before it counts as completed.
	VisibilityThreshold float64 `json:"visibility_threshold"`

	// LoadingDelay is how long the simulated loading state lasts.
	LoadingDelay time.Duration `json:"loading_delay"`
}

// DefaultOptions returns the fully featured variant.
func DefaultOptions() Options {
	return Options{
		Theme:               ThemeViolet,
		ProgressTracker:     true,
		ExpandableCards:     true,
		ScrollIndicator:     true,
		ScrollTopButton:     true,
		Takeaways:           true,
		VisibilityThreshold: DefaultVisibilityThreshold,
		LoadingDelay:        DefaultLoadingDelay,
	}
}
