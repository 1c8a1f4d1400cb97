// Package dataset loads the initial pokemon records from a CSV or JSON file.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jszwec/csvutil"

	"github.com/zhouzirui/pokedex/backend/internal/model/pokemon"
)

// ErrDuplicateNumber is returned when two records share the same number.
var ErrDuplicateNumber = errors.New("duplicate pokemon number")

type csvRow struct {
	Number   int    `csv:"number,omitempty"`
	Name     string `csv:"name,omitempty"`
	TypeOne  string `csv:"type_one,omitempty"`
	TypeTwo  string `csv:"type_two,omitempty"`
	Selected bool   `csv:"selected,omitempty"`
}

// LoadFile reads records from path. The format is chosen by extension.
func LoadFile(path string) ([]pokemon.Pokemon, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(file)
	case ".json":
		return LoadJSON(file)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", filepath.Ext(path))
	}
}

// LoadJSON decodes a JSON array of records.
func LoadJSON(r io.Reader) ([]pokemon.Pokemon, error) {
	var records []pokemon.Pokemon
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode JSON dataset: %w", err)
	}
	if err := checkUnique(records); err != nil {
		return nil, err
	}
	return records, nil
}

// LoadCSV decodes a CSV file with a header row. Columns other than the named
// record fields are carried as extra attributes.
func LoadCSV(r io.Reader) ([]pokemon.Pokemon, error) {
	decoder, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder: %w", err)
	}
	header := decoder.Header()

	var records []pokemon.Pokemon
	for {
		var row csvRow
		if err := decoder.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to decode CSV: %w", err)
		}

		record := pokemon.Pokemon{
			Number:   row.Number,
			Name:     row.Name,
			TypeOne:  row.TypeOne,
			TypeTwo:  row.TypeTwo,
			Selected: row.Selected,
		}
		record.MarkPresent(header...)

		values := decoder.Record()
		for _, idx := range decoder.Unused() {
			if idx >= len(header) || idx >= len(values) {
				continue
			}
			if record.Extra == nil {
				record.Extra = make(map[string]any)
			}
			record.Extra[header[idx]] = coerce(values[idx])
		}

		records = append(records, record)
	}

	if err := checkUnique(records); err != nil {
		return nil, err
	}
	return records, nil
}

// coerce turns CSV cells into JSON-friendly values.
func coerce(value string) any {
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return value
}

func checkUnique(records []pokemon.Pokemon) error {
	seen := make(map[int]struct{}, len(records))
	for _, record := range records {
		if _, ok := seen[record.Number]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateNumber, record.Number)
		}
		seen[record.Number] = struct{}{}
	}
	return nil
}
