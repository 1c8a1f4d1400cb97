package pokemon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Pokemon is a single catalog entry. Fields the catalog does not interpret are
// kept in Extra and written back verbatim.
type Pokemon struct {
	Number   int    `json:"number"`
	Name     string `json:"name"`
	TypeOne  string `json:"type_one"`
	TypeTwo  string `json:"type_two"`
	Selected bool   `json:"selected"`

	Extra map[string]any `json:"-"`

	// present records which optional keys the source document carried, so an
	// absent key is not written back as a zero value.
	present fieldSet
}

type fieldSet uint8

const (
	fieldNumber fieldSet = 1 << iota
	fieldName
	fieldTypeOne
	fieldTypeTwo
)

var fieldBits = map[string]fieldSet{
	"number":   fieldNumber,
	"name":     fieldName,
	"type_one": fieldTypeOne,
	"type_two": fieldTypeTwo,
}

var knownFields = map[string]struct{}{
	"number":   {},
	"name":     {},
	"type_one": {},
	"type_two": {},
	"selected": {},
}

// Types returns the normalized (trimmed, lower-cased) non-empty types of the record.
func (p Pokemon) Types() []string {
	types := make([]string, 0, 2)
	for _, raw := range []string{p.TypeOne, p.TypeTwo} {
		if t := NormalizeType(raw); t != "" {
			types = append(types, t)
		}
	}
	return types
}

// HasType reports whether either type matches one of the wanted types.
// wanted must already be normalized.
func (p Pokemon) HasType(wanted map[string]struct{}) bool {
	for _, t := range p.Types() {
		if _, ok := wanted[t]; ok {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares nothing mutable with p.
func (p Pokemon) Clone() Pokemon {
	out := p
	if p.Extra != nil {
		out.Extra = make(map[string]any, len(p.Extra))
		for k, v := range p.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

// MarkPresent records that the source carried the named keys even if their
// values are empty. Unknown keys are ignored.
func (p *Pokemon) MarkPresent(keys ...string) {
	for _, key := range keys {
		p.present |= fieldBits[key]
	}
}

func (p Pokemon) emits(field fieldSet, zero bool) bool {
	return !zero || p.present&field != 0
}

// NormalizeType lower-cases and trims a type name.
func NormalizeType(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// MarshalJSON flattens Extra next to the named fields. Empty named fields are
// written only when the source document had them.
func (p Pokemon) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Extra)+len(knownFields))
	for k, v := range p.Extra {
		out[k] = v
	}
	if p.emits(fieldNumber, p.Number == 0) {
		out["number"] = p.Number
	}
	if p.emits(fieldName, p.Name == "") {
		out["name"] = p.Name
	}
	if p.emits(fieldTypeOne, p.TypeOne == "") {
		out["type_one"] = p.TypeOne
	}
	if p.emits(fieldTypeTwo, p.TypeTwo == "") {
		out["type_two"] = p.TypeTwo
	}
	out["selected"] = p.Selected
	return json.Marshal(out)
}

// UnmarshalJSON reads the named fields and stores everything else in Extra.
// A missing "selected" decodes as false.
func (p *Pokemon) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var decoded Pokemon
	for key, value := range raw {
		if !isNull(value) {
			decoded.MarkPresent(key)
		}
	}
	if v, ok := raw["number"]; ok && !isNull(v) {
		n, err := decodeNumber(v)
		if err != nil {
			return err
		}
		decoded.Number = n
	}
	if err := decodeOptionalString(raw, "name", &decoded.Name); err != nil {
		return err
	}
	if err := decodeOptionalString(raw, "type_one", &decoded.TypeOne); err != nil {
		return err
	}
	if err := decodeOptionalString(raw, "type_two", &decoded.TypeTwo); err != nil {
		return err
	}
	if v, ok := raw["selected"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &decoded.Selected); err != nil {
			return fmt.Errorf("selected: %w", err)
		}
	}

	for key, value := range raw {
		if _, known := knownFields[key]; known {
			continue
		}
		dec := json.NewDecoder(bytes.NewReader(value))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if decoded.Extra == nil {
			decoded.Extra = make(map[string]any)
		}
		decoded.Extra[key] = v
	}

	*p = decoded
	return nil
}

func decodeNumber(v json.RawMessage) (int, error) {
	var f float64
	if err := json.Unmarshal(v, &f); err != nil {
		return 0, fmt.Errorf("number: %w", err)
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("number: %v is not an integer", f)
	}
	return int(f), nil
}

func decodeOptionalString(raw map[string]json.RawMessage, key string, dst *string) error {
	v, ok := raw[key]
	if !ok || isNull(v) {
		return nil
	}
	if err := json.Unmarshal(v, dst); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

func isNull(v json.RawMessage) bool {
	return string(bytes.TrimSpace(v)) == "null"
}
