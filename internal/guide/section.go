package guide

import "github.com/abhisek/aceguide/internal/content"

// SectionState is the UI state of one disclosure section.
type SectionState struct {
	ID        content.SectionID `json:"id"`
	Open      bool              `json:"open"`
	Completed bool              `json:"completed"`
	Tracker   VisibilityTracker `json:"tracker"`
}

// Toggle flips the section between open and closed.
func (s *SectionState) Toggle() {
	s.Open = !s.Open
}

// observe feeds a visibility ratio to the tracker and marks the section
// completed when it fires.
func (s *SectionState) observe(ratio float64) bool {
	if !s.Tracker.Observe(ratio) {
		return false
	}
	s.Completed = true
	return true
}
