package core

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON serializes the record as a JSON object whose keys appear in
// field order. The embedding vector is not part of the public shape.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RecordFromJSON decodes a JSON object into a record for the given intent,
// preserving the order in which keys appear. Numeric values decode as
// float64, everything else as strings.
func RecordFromJSON(intent Intent, data []byte) (*Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: expected object, got %v", ErrInvalidRecord, tok)
	}

	record := &Record{Intent: intent}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: non-string key %v", ErrInvalidRecord, keyTok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidRecord, key, err)
		}
		record.Fields = append(record.Fields, Field{Name: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return record, nil
}

// MarshalJSON serializes the result set as a single-key object holding the
// ordered record list, e.g. {"restaurants": [...]}.
func (s *ResultSet) MarshalJSON() ([]byte, error) {
	records := s.Records
	if records == nil {
		records = []*Record{}
	}
	return json.Marshal(map[string][]*Record{s.ItemsKey: records})
}

// MarshalJSON serializes the output as its result set when structured,
// or as a plain string otherwise.
func (o IntentOutput) MarshalJSON() ([]byte, error) {
	if o.Set != nil {
		return json.Marshal(o.Set)
	}
	return json.Marshal(o.Raw)
}
