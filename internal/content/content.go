package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

//go:embed data/aceinhibitors.json
var embedded []byte

var (
	defaultOnce  sync.Once
	defaultGuide *Guide
)

// Default returns the embedded ACE inhibitor guide. The table is parsed
// once; a broken embedded table is a build defect and panics.
func Default() *Guide {
	defaultOnce.Do(func() {
		g, err := Load(embedded)
		if err != nil {
			panic(fmt.Sprintf("embedded content: %v", err))
		}
		defaultGuide = g
	})
	return defaultGuide
}

// Load validates raw JSON against the content schema and decodes it.
// Returns *ErrInvalidContent on failure.
func Load(raw []byte) (*Guide, error) {
	if err := validate(raw); err != nil {
		return nil, err
	}

	var g Guide
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, &ErrInvalidContent{Err: fmt.Errorf("decode: %w", err)}
	}

	if err := checkStructure(&g); err != nil {
		return nil, &ErrInvalidContent{Err: err}
	}
	return &g, nil
}

// checkStructure performs the checks the schema cannot express:
// fixed section order and unique names.
func checkStructure(g *Guide) error {
	var errs []string

	order := SectionOrder()
	for i, s := range g.Sections {
		if i < len(order) && s.ID != order[i] {
			errs = append(errs, fmt.Sprintf("section %d is %q, want %q", i, s.ID, order[i]))
		}
	}

	seenStage := make(map[StageID]bool, len(g.Stages))
	for _, st := range g.Stages {
		if seenStage[st.ID] {
			errs = append(errs, fmt.Sprintf("duplicate stage %q", st.ID))
		}
		seenStage[st.ID] = true
	}

	seenDrug := make(map[string]bool, len(g.Drugs))
	for _, d := range g.Drugs {
		key := foldName(d.Name)
		if seenDrug[key] {
			errs = append(errs, fmt.Sprintf("duplicate drug %q", d.Name))
		}
		seenDrug[key] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("structure check failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func foldName(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Drug returns the catalog entry whose name matches case-insensitively.
func (g *Guide) Drug(name string) (DrugEntry, bool) {
	key := foldName(name)
	for _, d := range g.Drugs {
		if foldName(d.Name) == key {
			return d, true
		}
	}
	return DrugEntry{}, false
}

// Stage returns the diagram stage with the given ID.
func (g *Guide) Stage(id StageID) (Stage, bool) {
	for _, st := range g.Stages {
		if st.ID == id {
			return st, true
		}
	}
	return Stage{}, false
}

// Section returns the section definition with the given ID.
func (g *Guide) Section(id SectionID) (SectionDef, bool) {
	for _, s := range g.Sections {
		if s.ID == id {
			return s.clone(), true
		}
	}
	return SectionDef{}, false
}

// DrugNames returns the catalog names in display order.
func (g *Guide) DrugNames() []string {
	names := make([]string, len(g.Drugs))
	for i, d := range g.Drugs {
		names[i] = d.Name
	}
	return names
}

// AllDrugs returns a copy of the catalog.
func (g *Guide) AllDrugs() []DrugEntry {
	return slices.Clone(g.Drugs)
}
