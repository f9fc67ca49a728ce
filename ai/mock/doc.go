// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Embedder,
// ai.IntentClassifier, ai.FilterExtractor, and ai.Provider for use in unit
// tests. The mocks allow tests to run without external AI service
// dependencies and enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	vector, err := mockProvider.Embedder().EmbedText(ctx, "test")
//
//	// Custom behavior injection
//	classifier := mock.NewMockIntentClassifier()
//	classifier.ClassifyIntentsFunc = func(ctx context.Context, query string) ([]core.Intent, error) {
//	    return []core.Intent{core.IntentRestaurant}, nil
//	}
//
//	// Check call counts
//	count := classifier.CallCount()
//
// # Default Behavior
//
//   - MockEmbedder: Returns deterministic vectors based on text hash
//   - MockIntentClassifier: Matches intent labels appearing in the query text
//   - MockFilterExtractor: Returns an empty filter set
//   - MockProvider: Aggregates the three mocks
package mock
