package config

import "time"

// Features toggles the optional parts of the guide view.
type Features struct {
	ProgressTracker bool `yaml:"progress_tracker" koanf:"progress_tracker"`
	ExpandableCards bool `yaml:"expandable_cards" koanf:"expandable_cards"`
	ScrollIndicator bool `yaml:"scroll_indicator" koanf:"scroll_indicator"`
	ScrollTopButton bool `yaml:"scroll_top_button" koanf:"scroll_top_button"`
	Takeaways       bool `yaml:"takeaways" koanf:"takeaways"`
}

// Config is the top-level aceguide configuration, corresponding to config.yaml.
type Config struct {
	Theme               string        `yaml:"theme" koanf:"theme"`
	Features            Features      `yaml:"features" koanf:"features"`
	VisibilityThreshold float64       `yaml:"visibility_threshold" koanf:"visibility_threshold"`
	LoadingDelay        time.Duration `yaml:"loading_delay" koanf:"loading_delay"`
	LogFile             string        `yaml:"log_file" koanf:"log_file"`
	LogLevel            string        `yaml:"log_level" koanf:"log_level"`
}
