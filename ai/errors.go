package ai

import "errors"

var (
	// ErrClassification indicates a transport or parse failure while
	// classifying a query's intent. Callers degrade to IntentUnknown.
	ErrClassification = errors.New("intent classification failed")

	// ErrFilterExtraction indicates a transport or parse failure while
	// extracting structured filters. Callers degrade to an empty FilterSet.
	ErrFilterExtraction = errors.New("filter extraction failed")
)
