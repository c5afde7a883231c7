package guide

import "github.com/abhisek/aceguide/internal/content"

// Diagram is the hover state of the mechanism pipeline. An empty Hovered
// means no stage is under the pointer.
type Diagram struct {
	Hovered content.StageID `json:"hovered,omitempty"`
}

// Enter makes id the hovered stage. Returns true if the caption changes.
func (d *Diagram) Enter(id content.StageID) bool {
	if d.Hovered == id {
		return false
	}
	d.Hovered = id
	return true
}

// Leave clears the hover if id is the hovered stage. Leaving a stage that
// is no longer hovered is a no-op, so a late leave event cannot blank the
// caption of a newly entered stage.
func (d *Diagram) Leave(id content.StageID) bool {
	if d.Hovered == "" || d.Hovered != id {
		return false
	}
	d.Hovered = ""
	return true
}

// Caption returns the text shown under the diagram.
func (d Diagram) Caption(g *content.Guide) string {
	if d.Hovered != "" {
		if st, ok := g.Stage(d.Hovered); ok {
			return st.Caption
		}
	}
	return g.DefaultCaption
}
