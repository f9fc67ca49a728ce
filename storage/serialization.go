// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/poiesic/wayfind/core"
)

// envelope is the stored form of a candidate record. Fields holds the
// record's ordered JSON object so field order survives a round trip.
type envelope struct {
	Intent string          `json:"intent"`
	Fields json.RawMessage `json:"fields"`
	Vector []float32       `json:"vector,omitempty"`
}

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(id))
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	if len(data) < 8 {
		return 0, ErrTruncatedData
	}
	return core.ID(binary.BigEndian.Uint64(data)), nil
}

// MarshalRecord serializes a candidate record to bytes.
func MarshalRecord(record *core.Record) ([]byte, error) {
	fields, err := record.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	data, err := json.Marshal(envelope{
		Intent: string(record.Intent),
		Fields: fields,
		Vector: record.Vector,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalRecord deserializes a candidate record from bytes.
func UnmarshalRecord(data []byte) (*core.Record, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}

	intent, ok := core.ParseIntent(env.Intent)
	if !ok {
		return nil, fmt.Errorf("%w: unknown intent %q", ErrSerializationFailed, env.Intent)
	}

	record, err := core.RecordFromJSON(intent, env.Fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	record.Vector = env.Vector
	return record, nil
}
