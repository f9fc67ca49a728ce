package mock

import (
	"context"

	"github.com/poiesic/wayfind/core"
)

// MockFilterExtractor is a test double for ai.FilterExtractor.
// It allows custom behavior injection via function fields.
type MockFilterExtractor struct {
	// ExtractFiltersFunc is called by ExtractFilters if set.
	// If nil, returns an empty filter set.
	ExtractFiltersFunc func(ctx context.Context, query string) (core.FilterSet, error)

	callCount int
}

// NewMockFilterExtractor creates a mock extractor with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockExtractor().
func NewMockFilterExtractor() *MockFilterExtractor {
	return &MockFilterExtractor{}
}

// ExtractFilters returns an empty filter set by default.
func (m *MockFilterExtractor) ExtractFilters(ctx context.Context, query string) (core.FilterSet, error) {
	m.callCount++

	if m.ExtractFiltersFunc != nil {
		return m.ExtractFiltersFunc(ctx, query)
	}

	return core.FilterSet{}, nil
}

// CallCount returns the number of times ExtractFilters was called.
func (m *MockFilterExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockFilterExtractor) Reset() {
	m.callCount = 0
	m.ExtractFiltersFunc = nil
}
