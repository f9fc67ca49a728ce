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


// Package dispatch routes travel queries through per-intent pipelines.
//
// The Dispatcher classifies a query into intents, extracts its constraint
// filters, and for each intent with a registered agent retrieves, ranks,
// and filters candidate records. Outputs are aggregated into a single
// Result keyed by agent role name.
//
// # Error Recovery
//
// The dispatcher is the recovery point for AI-capability failures.
// Classification failures degrade to the unknown intent; filter extraction
// failures degrade to an empty filter set. Both are logged, never
// surfaced. Storage and embedding failures during a pipeline run, in
// contrast, abort the dispatch. ErrNoSupportedIntents is returned when
// every classified intent was skipped.
package dispatch
