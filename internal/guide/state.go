package guide

import (
	"slices"

	"github.com/abhisek/aceguide/internal/content"
)

// State is the complete, serializable state of one guide view.
type State struct {
	Options      Options        `json:"options"`
	Sections     []SectionState `json:"sections"`
	Progress     Progress       `json:"progress"`
	Cards        Cards          `json:"cards"`
	Diagram      Diagram        `json:"diagram"`
	ScrollOffset int            `json:"scroll_offset"`
}

// NewState returns the initial state: every section closed, nothing
// completed, no card expanded, no stage hovered.
func NewState(g *content.Guide, opts Options) State {
	sections := make([]SectionState, len(g.Sections))
	for i, def := range g.Sections {
		sections[i] = SectionState{
			ID:      def.ID,
			Tracker: NewVisibilityTracker(opts.VisibilityThreshold),
		}
	}
	return State{
		Options:  opts,
		Sections: sections,
		Progress: Progress{Total: len(sections)},
		Cards:    Cards{Expanded: make(map[string]bool)},
	}
}

// Section returns the state of the section with the given ID.
func (s State) Section(id content.SectionID) (SectionState, bool) {
	i := s.sectionIndex(id)
	if i < 0 {
		return SectionState{}, false
	}
	return s.Sections[i], true
}

// IsOpen reports whether the section with the given ID is open.
func (s State) IsOpen(id content.SectionID) bool {
	sec, ok := s.Section(id)
	return ok && sec.Open
}

// OpenCount returns the number of open sections.
func (s State) OpenCount() int {
	n := 0
	for _, sec := range s.Sections {
		if sec.Open {
			n++
		}
	}
	return n
}

func (s State) sectionIndex(id content.SectionID) int {
	return slices.IndexFunc(s.Sections, func(sec SectionState) bool {
		return sec.ID == id
	})
}

func (s State) clone() State {
	c := s
	c.Sections = slices.Clone(s.Sections)
	c.Cards = s.Cards.clone()
	return c
}
