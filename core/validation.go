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


package core

import "fmt"

// ValidateRecord validates a candidate record against its intent's schema.
//
// Validation rules:
//   - Intent must be one of the valid intents (not IntentUnknown)
//   - Field names must not be empty
//   - Every field must appear in the intent's schema property list
//   - When the intent has a field mapping, the key field must be present
//
// NOT validated (populated by processors):
//   - Vector (can be empty until the embedding processor runs)
func ValidateRecord(record *Record) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	schema, ok := LookupSchema(record.Intent)
	if !ok {
		return fmt.Errorf("%w: %w: %q", ErrInvalidRecord, ErrUnknownIntent, record.Intent)
	}

	allowed := make(map[string]bool, len(schema.Properties))
	for _, p := range schema.Properties {
		allowed[p] = true
	}

	for _, f := range record.Fields {
		if f.Name == "" {
			return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyFieldName)
		}
		if !allowed[f.Name] {
			return fmt.Errorf("%w: %w: %q not in %s", ErrInvalidRecord, ErrFieldNotInSchema, f.Name, schema.Collection)
		}
	}

	if mapping, ok := LookupMapping(record.Intent); ok {
		if _, present := record.Get(mapping.KeyField); !present {
			return fmt.Errorf("%w: %w: %q", ErrInvalidRecord, ErrMissingKeyField, mapping.KeyField)
		}
	}

	return nil
}

// ValidateIntent validates that an intent is in the valid set.
func ValidateIntent(intent Intent) error {
	for _, valid := range Intents() {
		if intent == valid {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownIntent, intent)
}
