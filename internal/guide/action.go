package guide

import "github.com/abhisek/aceguide/internal/content"

// Action is an input to Reduce.
type Action interface {
	action()
}

// ToggleSection opens a closed section or closes an open one.
type ToggleSection struct {
	ID content.SectionID
}

// SectionVisible reports the measured visibility ratio of a section.
type SectionVisible struct {
	ID    content.SectionID
	Ratio float64
}

// ExpandAll opens every section.
type ExpandAll struct{}

// CollapseAll closes every section.
type CollapseAll struct{}

// ToggleCard expands or collapses a drug card.
type ToggleCard struct {
	Name string
}

// HoverStage reports the pointer entering a diagram stage.
type HoverStage struct {
	ID content.StageID
}

// LeaveStage reports the pointer leaving a diagram stage.
type LeaveStage struct {
	ID content.StageID
}

// ScrollTo moves the viewport. Offset is clamped to [0, Max].
type ScrollTo struct {
	Offset int
	Max    int
}

func (ToggleSection) action()  {}
func (SectionVisible) action() {}
func (ExpandAll) action()      {}
func (CollapseAll) action()    {}
func (ToggleCard) action()     {}
func (HoverStage) action()     {}
func (LeaveStage) action()     {}
func (ScrollTo) action()       {}

// Event is an observable consequence of an action.
type Event interface {
	event()
}

// SectionToggled is emitted when a section opens or closes.
type SectionToggled struct {
	ID   content.SectionID
	Open bool
}

// SectionCompleted is emitted the first time a section becomes visible.
type SectionCompleted struct {
	ID        content.SectionID
	Completed int
	Total     int
}

// CardToggled is emitted when a drug card expands or collapses.
type CardToggled struct {
	Name     string
	Expanded bool
}

// CaptionChanged is emitted when the diagram caption changes. An empty
// Stage means the default caption is shown.
type CaptionChanged struct {
	Stage content.StageID
}

func (SectionToggled) event()   {}
func (SectionCompleted) event() {}
func (CardToggled) event()      {}
func (CaptionChanged) event()   {}
