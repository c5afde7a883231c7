package guide

// Reduce applies an action to a state and returns the next state together
// with the events it produced. The input state is never modified.
func Reduce(s State, a Action) (State, []Event) {
	next := s.clone()
	var events []Event

	switch a := a.(type) {
	case ToggleSection:
		i := next.sectionIndex(a.ID)
		if i < 0 {
			return s, nil
		}
		next.Sections[i].Toggle()
		events = append(events, SectionToggled{ID: a.ID, Open: next.Sections[i].Open})

	case ExpandAll:
		for i := range next.Sections {
			if !next.Sections[i].Open {
				next.Sections[i].Open = true
				events = append(events, SectionToggled{ID: next.Sections[i].ID, Open: true})
			}
		}

	case CollapseAll:
		for i := range next.Sections {
			if next.Sections[i].Open {
				next.Sections[i].Open = false
				events = append(events, SectionToggled{ID: next.Sections[i].ID, Open: false})
			}
		}

	case SectionVisible:
		i := next.sectionIndex(a.ID)
		if i < 0 {
			return s, nil
		}
		if !next.Sections[i].observe(a.Ratio) {
			return s, nil
		}
		if next.Progress.Increment() {
			events = append(events, SectionCompleted{
				ID:        a.ID,
				Completed: next.Progress.Completed,
				Total:     next.Progress.Total,
			})
		}

	case ToggleCard:
		if !next.Options.ExpandableCards || a.Name == "" {
			return s, nil
		}
		expanded := next.Cards.Toggle(a.Name)
		events = append(events, CardToggled{Name: a.Name, Expanded: expanded})

	case HoverStage:
		if !next.Diagram.Enter(a.ID) {
			return s, nil
		}
		events = append(events, CaptionChanged{Stage: a.ID})

	case LeaveStage:
		if !next.Diagram.Leave(a.ID) {
			return s, nil
		}
		events = append(events, CaptionChanged{})

	case ScrollTo:
		off := min(a.Offset, a.Max)
		off = max(off, 0)
		if off == next.ScrollOffset {
			return s, nil
		}
		next.ScrollOffset = off

	default:
		return s, nil
	}

	return next, events
}
