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


// Package ai provides abstractions for the AI services used in Wayfind.
//
// This package defines interfaces for the external AI capabilities the
// engine consumes: text embeddings, intent classification, and structured
// filter extraction. It follows the dependency inversion principle,
// allowing the core domain and business logic to depend on abstractions
// rather than concrete implementations.
//
// # Design Principles
//
// The package is designed around four key interfaces:
//
//   - Embedder: Generates vector embeddings from text
//   - IntentClassifier: Maps a query to canonical intent labels
//   - FilterExtractor: Maps a query to a sparse structured filter set
//   - Provider: Aggregates AI services for convenient initialization
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Error Recovery Contract
//
// Classifier and extractor implementations report transport and parse
// failures as errors wrapping ErrClassification and ErrFilterExtraction.
// They never panic and never hide failures: the dispatcher is the single
// recovery point, degrading classification failures to the unknown intent
// and extraction failures to an empty filter set.
//
// # Usage Example
//
//	// Production usage with OpenAI-compatible provider
//	config := ai.DefaultConfig()
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	intents, err := provider.IntentClassifier().ClassifyIntents(ctx, "vegan food in Rome")
//	filters, err := provider.FilterExtractor().ExtractFilters(ctx, "vegan food in Rome")
//
//	// Testing usage with mocks
//	mockProvider := mock.NewMockProvider()
//	vector, err := mockProvider.Embedder().EmbedText(ctx, "test text")
package ai
