package pokemon

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestUnmarshalKeepsExtraFields(t *testing.T) {
	var p Pokemon
	data := []byte(`{"number":25,"name":"Pikachu","type_one":"Electric","attack":55,"legendary":false}`)
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if p.Number != 25 || p.Name != "Pikachu" || p.TypeOne != "Electric" {
		t.Fatalf("unexpected record: %+v", p)
	}
	if p.TypeTwo != "" {
		t.Fatalf("expected empty type_two, got %q", p.TypeTwo)
	}
	if p.Selected {
		t.Fatal("expected selected to default to false")
	}
	if _, ok := p.Extra["attack"]; !ok {
		t.Fatalf("expected attack in extra fields, got %v", p.Extra)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back map[string]any
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if back["attack"] != float64(55) {
		t.Fatalf("expected attack 55, got %v", back["attack"])
	}
	if back["selected"] != false {
		t.Fatalf("expected selected false, got %v", back["selected"])
	}
}

func TestMarshalKeepsAbsentKeysAbsent(t *testing.T) {
	var p Pokemon
	if err := json.Unmarshal([]byte(`{"number":4,"type_one":"Fire","type_two":""}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(out, &fields); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}

	if _, ok := fields["name"]; ok {
		t.Fatalf("expected name to stay absent, got %v", fields)
	}
	if v, ok := fields["type_two"]; !ok || v != "" {
		t.Fatalf("expected empty type_two to be kept, got %#v", fields["type_two"])
	}
	if fields["selected"] != false {
		t.Fatalf("expected selected false, got %v", fields["selected"])
	}
}

func TestMarshalOmitsEmptyFieldsOfBuiltRecords(t *testing.T) {
	out, err := json.Marshal(Pokemon{Number: 4, Name: "Charmander", TypeOne: "Fire"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(out, &fields); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if _, ok := fields["type_two"]; ok {
		t.Fatalf("expected type_two omitted, got %v", fields)
	}

	withKey := Pokemon{Number: 4, Name: "Charmander", TypeOne: "Fire"}
	withKey.MarkPresent("type_two", "unknown")
	out, err = json.Marshal(withKey.Clone())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := json.Unmarshal(out, &fields); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if v, ok := fields["type_two"]; !ok || v != "" {
		t.Fatalf("expected type_two kept after MarkPresent, got %#v", fields["type_two"])
	}
}

func TestUnmarshalRejectsFractionalNumber(t *testing.T) {
	var p Pokemon
	if err := json.Unmarshal([]byte(`{"number":1.5}`), &p); err == nil {
		t.Fatal("expected error for fractional number")
	}
}

func TestTypesNormalized(t *testing.T) {
	p := Pokemon{TypeOne: " Fire ", TypeTwo: "FLYING"}
	types := p.Types()
	if len(types) != 2 || types[0] != "fire" || types[1] != "flying" {
		t.Fatalf("unexpected types: %v", types)
	}

	if !p.HasType(map[string]struct{}{"flying": {}}) {
		t.Fatal("expected flying match")
	}
	if p.HasType(map[string]struct{}{"water": {}}) {
		t.Fatal("did not expect water match")
	}
}

func TestMemoryStoreUpdateMutatesInPlace(t *testing.T) {
	store := NewMemoryStore(Seed())
	if store.Len() != 20 {
		t.Fatalf("expected 20 records, got %d", store.Len())
	}

	err := store.Update(func(items []Pokemon) error {
		items[0].Selected = true
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	var selected bool
	_ = store.View(func(items []Pokemon) error {
		selected = items[0].Selected
		return nil
	})
	if !selected {
		t.Fatal("expected first record to be selected")
	}
}

func TestMemoryStorePropagatesError(t *testing.T) {
	store := NewMemoryStore(Seed())
	want := errors.New("boom")
	if err := store.View(func([]Pokemon) error { return want }); !errors.Is(err, want) {
		t.Fatalf("expected boom, got %v", err)
	}
	// lock must be released after an error
	if err := store.Update(func([]Pokemon) error { return nil }); err != nil {
		t.Fatalf("update after error: %v", err)
	}
}

func TestNewMemoryStoreCopiesInput(t *testing.T) {
	seeds := Seed()
	store := NewMemoryStore(seeds)
	seeds[0].Extra["attack"] = 999

	_ = store.View(func(items []Pokemon) error {
		if items[0].Extra["attack"] == 999 {
			t.Fatal("store shares extra map with caller")
		}
		return nil
	})
}
