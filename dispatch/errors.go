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


package dispatch

import "errors"

var (
	// ErrNoSupportedIntents indicates that no classified intent had a
	// registered agent, so dispatch produced no results.
	ErrNoSupportedIntents = errors.New("no supported intents found")

	// ErrClassifierRequired indicates a nil intent classifier was provided.
	ErrClassifierRequired = errors.New("intent classifier is required")

	// ErrExtractorRequired indicates a nil filter extractor was provided.
	ErrExtractorRequired = errors.New("filter extractor is required")

	// ErrRetrieverRequired indicates a nil retriever was provided.
	ErrRetrieverRequired = errors.New("retriever is required")

	// ErrRankerRequired indicates a nil ranker was provided.
	ErrRankerRequired = errors.New("ranker is required")

	// ErrPipelineRequired indicates a nil filter pipeline was provided.
	ErrPipelineRequired = errors.New("filter pipeline is required")
)
