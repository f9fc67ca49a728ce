package ingestion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/poiesic/wayfind/core"
)

// ParseDataset reads a candidate dataset from JSON. The format is a single
// object keyed by intent label, each holding a list of records:
//
//	{
//	  "restaurant": [{"RestaurantName": "...", ...}, ...],
//	  "visa": [{"Question": "...", "Answer": "..."}]
//	}
//
// Record field order is preserved as it appears in the file.
func ParseDataset(r io.Reader) ([]*core.Record, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: expected top-level object", ErrInvalidDataset)
	}

	var records []*core.Record
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
		}
		label, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: non-string intent key %v", ErrInvalidDataset, keyTok)
		}

		intent, ok := core.ParseIntent(label)
		if !ok {
			return nil, fmt.Errorf("%w: unknown intent %q", ErrInvalidDataset, label)
		}

		var items []json.RawMessage
		if err := dec.Decode(&items); err != nil {
			return nil, fmt.Errorf("%w: intent %q: %w", ErrInvalidDataset, label, err)
		}

		for i, item := range items {
			record, err := core.RecordFromJSON(intent, item)
			if err != nil {
				return nil, fmt.Errorf("%w: intent %q record %d: %w", ErrInvalidDataset, label, i, err)
			}
			records = append(records, record)
		}
	}

	return records, nil
}

// LoadDataset reads a candidate dataset from a JSON file.
func LoadDataset(path string) ([]*core.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDataset(bytes.NewReader(data))
}
