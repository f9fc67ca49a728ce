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


// Package rank re-orders and prunes retrieved travel candidates.
//
// The Ranker type re-sorts a candidate list by cosine similarity between
// the user query and each candidate's key and description fields.
//
// The FilterPipeline type then applies extracted constraints in a fixed
// order: exact city matching, statistical budget bucketing around the mean
// candidate price, and similarity-based re-sorting for type and
// suitability preferences.
package rank
