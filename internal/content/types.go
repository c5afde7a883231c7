package content

import "slices"

// SectionID identifies one of the fixed sections of the guide.
type SectionID string

const (
	SectionMechanism   SectionID = "mechanism"
	SectionDrugs       SectionID = "drugs"
	SectionIndications SectionID = "indications"
	SectionSideEffects SectionID = "side-effects"
	SectionEvidence    SectionID = "evidence"
)

// SectionOrder returns the section IDs in display order.
func SectionOrder() []SectionID {
	return []SectionID{
		SectionMechanism,
		SectionDrugs,
		SectionIndications,
		SectionSideEffects,
		SectionEvidence,
	}
}

// Icon is a symbolic icon tag. The UI maps tags to glyphs.
type Icon string

const (
	IconZap         Icon = "zap"
	IconDroplet     Icon = "droplet"
	IconStethoscope Icon = "stethoscope"
	IconAlert       Icon = "alert"
	IconBook        Icon = "book"
	IconHeart       Icon = "heart"
)

// CalloutKind selects the styling of a highlighted callout box.
type CalloutKind string

const (
	CalloutPearl   CalloutKind = "pearl"
	CalloutWarning CalloutKind = "warning"
	CalloutTip     CalloutKind = "tip"
)

// Callout is a titled box shown at the bottom of a section body.
type Callout struct {
	Kind  CalloutKind `json:"kind"`
	Title string      `json:"title"`
	Body  string      `json:"body"`
}

// SectionDef describes the static parts of a disclosure section.
type SectionDef struct {
	ID       SectionID `json:"id"`
	Title    string    `json:"title"`
	Icon     Icon      `json:"icon"`
	Intro    string    `json:"intro,omitempty"`
	Bullets  []string  `json:"bullets,omitempty"`
	Takeaway string    `json:"takeaway,omitempty"`
	Callout  *Callout  `json:"callout,omitempty"`
}

func (s SectionDef) clone() SectionDef {
	s.Bullets = slices.Clone(s.Bullets)
	if s.Callout != nil {
		c := *s.Callout
		s.Callout = &c
	}
	return s
}

// DrugEntry is one ACE inhibitor in the catalog.
type DrugEntry struct {
	Name           string `json:"name"`
	Dosage         string `json:"dosage"`
	HalfLife       string `json:"half_life"`
	RenalExcretion string `json:"renal_excretion"`
	Notes          string `json:"notes"`
}

// Summary is the one-line subtitle shown on a collapsed drug card.
func (d DrugEntry) Summary() string {
	return d.Name + " is commonly used for hypertension and heart failure."
}

// Field is a labelled value of an expanded drug card.
type Field struct {
	Label string
	Value string
}

// Fields returns the four detail fields revealed when a card is expanded.
func (d DrugEntry) Fields() []Field {
	return []Field{
		{Label: "Dosage", Value: d.Dosage},
		{Label: "Half-life", Value: d.HalfLife},
		{Label: "Renal excretion", Value: d.RenalExcretion},
		{Label: "Notes", Value: d.Notes},
	}
}

// ConditionEntry is a clinical indication.
type ConditionEntry struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
	Icon   Icon   `json:"icon,omitempty"`
}

// SideEffectEntry is an adverse effect with its monitoring advice.
type SideEffectEntry struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

// Initial returns the first letter of the effect, used for the CHAMP mnemonic.
func (s SideEffectEntry) Initial() string {
	for _, r := range s.Name {
		return string(r)
	}
	return ""
}

// TrialEntry is a landmark clinical trial.
type TrialEntry struct {
	Name     string `json:"name"`
	Year     int    `json:"year"`
	Detail   string `json:"detail"`
	Citation string `json:"citation"`
}

// StageID identifies a step of the mechanism diagram.
type StageID string

const (
	StageAngiotensinI  StageID = "angiotensin1"
	StageACE           StageID = "ace"
	StageAngiotensinII StageID = "angiotensin2"
)

// Stage is one labelled node of the mechanism pipeline.
type Stage struct {
	ID       StageID `json:"id"`
	Label    string  `json:"label"`
	Sublabel string  `json:"sublabel"`
	Caption  string  `json:"caption"`
}

// Takeaway is a line of the closing key takeaways list.
type Takeaway struct {
	Icon Icon   `json:"icon"`
	Text string `json:"text"`
}

// Guide is the complete static content table.
type Guide struct {
	Title          string            `json:"title"`
	DefaultCaption string            `json:"default_caption"`
	Sections       []SectionDef      `json:"sections"`
	Stages         []Stage           `json:"stages"`
	Drugs          []DrugEntry       `json:"drugs"`
	Indications    []ConditionEntry  `json:"indications"`
	SideEffects    []SideEffectEntry `json:"side_effects"`
	Trials         []TrialEntry      `json:"trials"`
	KeyTakeaways   []Takeaway        `json:"key_takeaways"`
}
