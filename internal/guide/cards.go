package guide

import "maps"

// Cards tracks which drug cards are expanded. Each card is independent.
type Cards struct {
	Expanded map[string]bool `json:"expanded"`
}

// IsExpanded reports whether the named card shows its detail fields.
func (c Cards) IsExpanded(name string) bool {
	return c.Expanded[name]
}

// Toggle flips the named card and returns its new state.
func (c *Cards) Toggle(name string) bool {
	if c.Expanded == nil {
		c.Expanded = make(map[string]bool)
	}
	if c.Expanded[name] {
		delete(c.Expanded, name)
		return false
	}
	c.Expanded[name] = true
	return true
}

// Count returns the number of expanded cards.
func (c Cards) Count() int {
	return len(c.Expanded)
}

func (c Cards) clone() Cards {
	return Cards{Expanded: maps.Clone(c.Expanded)}
}
