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

import "errors"

// Domain validation errors
var (
	// ErrInvalidRecord indicates a Record failed validation.
	ErrInvalidRecord = errors.New("invalid candidate record")

	// ErrUnknownIntent indicates an intent outside the valid set.
	ErrUnknownIntent = errors.New("unknown intent")

	// ErrEmptyFieldName indicates a record field with an empty name.
	ErrEmptyFieldName = errors.New("field name cannot be empty")

	// ErrFieldNotInSchema indicates a record field not present in its
	// intent's schema.
	ErrFieldNotInSchema = errors.New("field not in intent schema")

	// ErrMissingKeyField indicates a record lacking the field its intent's
	// mapping designates as the similarity key.
	ErrMissingKeyField = errors.New("missing key field")
)
