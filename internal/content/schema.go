package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://aceguide-content.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func str() map[string]any {
	return map[string]any{"type": "string", "minLength": 1}
}

func strictObject(props map[string]any, required ...string) map[string]any {
	req := make([]any, len(required))
	for i, r := range required {
		req[i] = r
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             req,
		"additionalProperties": false,
	}
}

func arrayOf(items map[string]any, minItems int) map[string]any {
	return map[string]any{
		"type":     "array",
		"items":    items,
		"minItems": minItems,
	}
}

var iconEnum = map[string]any{
	"type": "string",
	"enum": []any{"zap", "droplet", "stethoscope", "alert", "book", "heart"},
}

// contentSchema is the JSON schema every content table must satisfy.
var contentSchema = strictObject(map[string]any{
	"title":           str(),
	"default_caption": str(),
	"sections": map[string]any{
		"type":     "array",
		"minItems": 5,
		"maxItems": 5,
		"items": strictObject(map[string]any{
			"id": map[string]any{
				"type": "string",
				"enum": []any{"mechanism", "drugs", "indications", "side-effects", "evidence"},
			},
			"title":    str(),
			"icon":     iconEnum,
			"intro":    map[string]any{"type": "string"},
			"bullets":  arrayOf(str(), 0),
			"takeaway": map[string]any{"type": "string"},
			"callout": strictObject(map[string]any{
				"kind":  map[string]any{"type": "string", "enum": []any{"pearl", "warning", "tip"}},
				"title": str(),
				"body":  str(),
			}, "kind", "title", "body"),
		}, "id", "title", "icon"),
	},
	"stages": arrayOf(strictObject(map[string]any{
		"id":       map[string]any{"type": "string", "enum": []any{"angiotensin1", "ace", "angiotensin2"}},
		"label":    str(),
		"sublabel": str(),
		"caption":  str(),
	}, "id", "label", "sublabel", "caption"), 1),
	"drugs": arrayOf(strictObject(map[string]any{
		"name":            str(),
		"dosage":          str(),
		"half_life":       str(),
		"renal_excretion": str(),
		"notes":           str(),
	}, "name", "dosage", "half_life", "renal_excretion", "notes"), 1),
	"indications": arrayOf(strictObject(map[string]any{
		"name":   str(),
		"detail": str(),
		"icon":   iconEnum,
	}, "name", "detail"), 1),
	"side_effects": arrayOf(strictObject(map[string]any{
		"name":   str(),
		"detail": str(),
	}, "name", "detail"), 1),
	"trials": arrayOf(strictObject(map[string]any{
		"name":     str(),
		"year":     map[string]any{"type": "integer", "minimum": 1900},
		"detail":   str(),
		"citation": str(),
	}, "name", "year", "detail", "citation"), 1),
	"key_takeaways": arrayOf(strictObject(map[string]any{
		"icon": iconEnum,
		"text": str(),
	}, "icon", "text"), 0),
}, "title", "default_caption", "sections", "stages", "drugs", "indications", "side_effects", "trials")

// compiledSchema compiles contentSchema once and caches the result.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, not Go maps with typed slices.
		raw, err := json.Marshal(contentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal content schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			compileErr = fmt.Errorf("parse content schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validate checks raw JSON against the content schema.
func validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidContent{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	sch, err := compiledSchema()
	if err != nil {
		return &ErrInvalidContent{Err: fmt.Errorf("compile schema: %w", err)}
	}

	if err := sch.Validate(parsed); err != nil {
		return &ErrInvalidContent{Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}
