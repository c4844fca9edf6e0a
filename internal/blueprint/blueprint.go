package blueprint

import (
	"encoding/json"
	"fmt"
)

// Kind describes the structural role of a component. It affects generated
// documentation only, never code shape.
type Kind string

const (
	KindFragment  Kind = "fragment"
	KindCompound  Kind = "compound"
	KindStructure Kind = "structure"
)

// Blueprint is the abstract description of one UI component.
// Immutable for the duration of a generation call.
type Blueprint struct {
	Name        string              `json:"name"`
	Kind        Kind                `json:"kind"`
	Base        string              `json:"base"`
	Variants    map[string][]string `json:"variants,omitempty"`
	Styles      Styles              `json:"styles,omitempty"`
	Props       []string            `json:"props,omitempty"`
	Slots       []string            `json:"slots,omitempty"`
	Composition []string            `json:"composition,omitempty"`
}

// Styles is the classified form of the style buckets. Built once when a
// blueprint is ingested; backends never look at raw bucket keys.
type Styles struct {
	// Base is the literal style string from the "base" bucket.
	Base string
	// Axes maps a variant axis name to its value -> style fragment table.
	Axes map[string]map[string]string
	// Extra holds literal buckets outside "base" and the declared axes
	// (e.g. "input", "trigger"), consulted by base-specific backends.
	Extra map[string]string
}

// reserved props are wired by every backend and never re-declared from the
// prop list.
var reserved = map[string]bool{
	"children":  true,
	"onClick":   true,
	"disabled":  true,
	"className": true,
}

// Reserved reports whether a prop name belongs to the reserved set.
func Reserved(name string) bool {
	return reserved[name]
}

// AxisStyle returns the style fragment for an axis/value pair.
// Missing entries resolve to the empty string, never an error.
func (s Styles) AxisStyle(axis, value string) string {
	if values, ok := s.Axes[axis]; ok {
		return values[value]
	}
	return ""
}

// CustomProps returns the declared props minus the reserved set, preserving
// declaration order.
func (b *Blueprint) CustomProps() []string {
	props := make([]string, 0, len(b.Props))
	for _, p := range b.Props {
		if !reserved[p] {
			props = append(props, p)
		}
	}
	return props
}

// rawBlueprint is the wire shape: style buckets arrive as either a literal
// string or a value -> fragment object.
type rawBlueprint struct {
	Name        string                     `json:"name"`
	Kind        string                     `json:"kind"`
	Base        string                     `json:"base"`
	Variants    map[string][]string        `json:"variants"`
	Styles      map[string]json.RawMessage `json:"styles"`
	Props       []string                   `json:"props"`
	Slots       []string                   `json:"slots"`
	Composition []string                   `json:"composition"`
}

// Parse converts blueprint JSON into a validated Blueprint.
func Parse(content []byte) (*Blueprint, error) {
	var raw rawBlueprint
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse blueprint JSON: %w", err)
	}

	if raw.Name == "" {
		return nil, fmt.Errorf("blueprint validation failed: name is required")
	}
	for axis, values := range raw.Variants {
		if len(values) == 0 {
			return nil, fmt.Errorf("blueprint validation failed: variant axis %q has no values", axis)
		}
	}

	kind := Kind(raw.Kind)
	if kind == "" {
		kind = KindFragment
	}

	styles, err := classifyStyles(raw.Styles, raw.Variants)
	if err != nil {
		return nil, err
	}

	return &Blueprint{
		Name:        raw.Name,
		Kind:        kind,
		Base:        raw.Base,
		Variants:    raw.Variants,
		Styles:      styles,
		Props:       raw.Props,
		Slots:       raw.Slots,
		Composition: raw.Composition,
	}, nil
}

// classifyStyles turns raw buckets into the tagged Styles form. A bucket is
// an axis bucket when its name matches a declared axis and its value is an
// object; everything else is a literal.
func classifyStyles(buckets map[string]json.RawMessage, variants map[string][]string) (Styles, error) {
	styles := Styles{
		Axes:  make(map[string]map[string]string),
		Extra: make(map[string]string),
	}

	for name, raw := range buckets {
		var literal string
		if err := json.Unmarshal(raw, &literal); err == nil {
			if name == "base" {
				styles.Base = literal
			} else {
				styles.Extra[name] = literal
			}
			continue
		}

		var nested map[string]string
		if err := json.Unmarshal(raw, &nested); err != nil {
			return Styles{}, fmt.Errorf("failed to parse style bucket %q: %w", name, err)
		}
		if _, declared := variants[name]; declared {
			styles.Axes[name] = nested
		}
		// Nested buckets without a matching axis are dropped: the primary
		// backends have nothing to key them on.
	}

	return styles, nil
}

// MarshalJSON emits the wire form of the classified style buckets so a
// parsed blueprint round-trips through the archive.
func (s Styles) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(s.Axes)+len(s.Extra)+1)
	if s.Base != "" {
		out["base"] = s.Base
	}
	for axis, values := range s.Axes {
		out[axis] = values
	}
	for name, literal := range s.Extra {
		out[name] = literal
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the wire form directly, classifying buckets the
// same way Parse does. Axis membership cannot be checked here because the
// variants map is a sibling field, so every nested bucket is treated as an
// axis bucket; Parse remains the validating entry point.
func (s *Styles) UnmarshalJSON(data []byte) error {
	var buckets map[string]json.RawMessage
	if err := json.Unmarshal(data, &buckets); err != nil {
		return err
	}

	s.Axes = make(map[string]map[string]string)
	s.Extra = make(map[string]string)

	for name, raw := range buckets {
		var literal string
		if err := json.Unmarshal(raw, &literal); err == nil {
			if name == "base" {
				s.Base = literal
			} else {
				s.Extra[name] = literal
			}
			continue
		}

		var nested map[string]string
		if err := json.Unmarshal(raw, &nested); err != nil {
			return fmt.Errorf("failed to parse style bucket %q: %w", name, err)
		}
		s.Axes[name] = nested
	}

	return nil
}

// Clone returns a deep copy so catalogue seeds can be edited by callers
// without mutating the shared entry.
func (b *Blueprint) Clone() *Blueprint {
	out := &Blueprint{
		Name: b.Name,
		Kind: b.Kind,
		Base: b.Base,
	}
	if b.Variants != nil {
		out.Variants = make(map[string][]string, len(b.Variants))
		for axis, values := range b.Variants {
			out.Variants[axis] = append([]string(nil), values...)
		}
	}
	out.Styles = Styles{
		Base:  b.Styles.Base,
		Axes:  make(map[string]map[string]string, len(b.Styles.Axes)),
		Extra: make(map[string]string, len(b.Styles.Extra)),
	}
	for axis, values := range b.Styles.Axes {
		copied := make(map[string]string, len(values))
		for value, style := range values {
			copied[value] = style
		}
		out.Styles.Axes[axis] = copied
	}
	for name, literal := range b.Styles.Extra {
		out.Styles.Extra[name] = literal
	}
	out.Props = append([]string(nil), b.Props...)
	out.Slots = append([]string(nil), b.Slots...)
	out.Composition = append([]string(nil), b.Composition...)
	return out
}
