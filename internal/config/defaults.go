package config

import (
	"github.com/abhisek/aceguide/internal/guide"
)

// MaxLoadingDelay caps the simulated loading state.
const MaxLoadingDelay = 10 * guide.DefaultLoadingDelay

// DefaultConfig returns a Config with every feature enabled.
func DefaultConfig() *Config {
	opts := guide.DefaultOptions()
	return &Config{
		Theme: string(opts.Theme),
		Features: Features{
			ProgressTracker: opts.ProgressTracker,
			ExpandableCards: opts.ExpandableCards,
			ScrollIndicator: opts.ScrollIndicator,
			ScrollTopButton: opts.ScrollTopButton,
			Takeaways:       opts.Takeaways,
		},
		VisibilityThreshold: opts.VisibilityThreshold,
		LoadingDelay:        opts.LoadingDelay,
		LogLevel:            "info",
	}
}

// Options maps the configuration onto the guide view options.
// Call Validate first; an unknown theme falls back to the default.
func (c *Config) Options() guide.Options {
	opts := guide.DefaultOptions()
	if th, err := guide.ParseTheme(c.Theme); err == nil {
		opts.Theme = th
	}
	opts.ProgressTracker = c.Features.ProgressTracker
	opts.ExpandableCards = c.Features.ExpandableCards
	opts.ScrollIndicator = c.Features.ScrollIndicator
	opts.ScrollTopButton = c.Features.ScrollTopButton
	opts.Takeaways = c.Features.Takeaways
	opts.VisibilityThreshold = c.VisibilityThreshold
	opts.LoadingDelay = c.LoadingDelay
	return opts
}
