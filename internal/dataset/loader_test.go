package dataset

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `number,name,type_one,type_two,attack,legendary,description
1,Bulbasaur,Grass,Poison,49,False,A strange seed
4,Charmander,Fire,,52,False,
`

func TestLoadCSV(t *testing.T) {
	records, err := LoadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("LoadCSV err: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.Number != 1 || first.Name != "Bulbasaur" || first.TypeTwo != "Poison" {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if first.Selected {
		t.Fatal("expected selected to default to false")
	}
	if first.Extra["attack"] != int64(49) {
		t.Fatalf("expected attack 49, got %#v", first.Extra["attack"])
	}
	if first.Extra["legendary"] != false {
		t.Fatalf("expected legendary false, got %#v", first.Extra["legendary"])
	}
	if first.Extra["description"] != "A strange seed" {
		t.Fatalf("unexpected description %#v", first.Extra["description"])
	}

	if records[1].TypeTwo != "" {
		t.Fatalf("expected empty type_two, got %q", records[1].TypeTwo)
	}

	out, err := json.Marshal(records[1])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(out, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v, ok := fields["type_two"]; !ok || v != "" {
		t.Fatalf("expected empty type_two column to be kept, got %#v", fields["type_two"])
	}
}

func TestLoadCSVDuplicateNumber(t *testing.T) {
	data := "number,name\n1,a\n1,b\n"
	if _, err := LoadCSV(strings.NewReader(data)); !errors.Is(err, ErrDuplicateNumber) {
		t.Fatalf("expected ErrDuplicateNumber, got %v", err)
	}
}

func TestLoadJSON(t *testing.T) {
	data := `[{"number":7,"name":"Squirtle","type_one":"Water","selected":true,"speed":43}]`
	records, err := LoadJSON(strings.NewReader(data))
	if err != nil {
		t.Fatalf("LoadJSON err: %v", err)
	}
	if len(records) != 1 || records[0].Number != 7 || !records[0].Selected {
		t.Fatalf("unexpected records: %+v", records)
	}
	if _, ok := records[0].Extra["speed"]; !ok {
		t.Fatal("expected speed to be carried through")
	}
}

func TestLoadFileByExtension(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "pokemon.csv")
	if err := os.WriteFile(csvPath, []byte(sampleCSV), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if records, err := LoadFile(csvPath); err != nil || len(records) != 2 {
		t.Fatalf("LoadFile csv: records=%d err=%v", len(records), err)
	}

	txtPath := filepath.Join(dir, "pokemon.txt")
	if err := os.WriteFile(txtPath, []byte("x"), 0o600); err != nil {
		t.Fatalf("write txt: %v", err)
	}
	if _, err := LoadFile(txtPath); err == nil {
		t.Fatal("expected error for unsupported extension")
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
