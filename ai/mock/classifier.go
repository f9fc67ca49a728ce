package mock

import (
	"context"
	"strings"

	"github.com/poiesic/wayfind/core"
)

// MockIntentClassifier is a test double for ai.IntentClassifier.
// It allows custom behavior injection via function fields.
type MockIntentClassifier struct {
	// ClassifyIntentsFunc is called by ClassifyIntents if set.
	// If nil, uses default keyword matching.
	ClassifyIntentsFunc func(ctx context.Context, query string) ([]core.Intent, error)

	callCount int
}

// NewMockIntentClassifier creates a mock classifier with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockClassifier().
func NewMockIntentClassifier() *MockIntentClassifier {
	return &MockIntentClassifier{}
}

// ClassifyIntents classifies queries by naive keyword matching.
// Default behavior: an intent matches when its label appears as a substring
// of the lowercased query; no match yields the unknown sentinel.
func (m *MockIntentClassifier) ClassifyIntents(ctx context.Context, query string) ([]core.Intent, error) {
	m.callCount++

	if m.ClassifyIntentsFunc != nil {
		return m.ClassifyIntentsFunc(ctx, query)
	}

	lowered := strings.ToLower(query)
	var intents []core.Intent
	for _, intent := range core.Intents() {
		if strings.Contains(lowered, string(intent)) {
			intents = append(intents, intent)
		}
	}
	if len(intents) == 0 {
		return []core.Intent{core.IntentUnknown}, nil
	}
	return intents, nil
}

// CallCount returns the number of times ClassifyIntents was called.
func (m *MockIntentClassifier) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockIntentClassifier) Reset() {
	m.callCount = 0
	m.ClassifyIntentsFunc = nil
}
