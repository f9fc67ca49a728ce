package rank

import (
	"math"
	"strconv"
	"strings"
)

// ParsePrice normalizes a heterogeneous price representation into a single
// numeric value. Numeric inputs pass through as floats. Textual inputs have
// the currency symbol "$" and approximation marker "~" stripped; ranges like
// "50-80" parse to their lower bound. Unparseable values yield positive
// infinity, the sentinel for "unbounded high": such prices fail low and
// medium budget filters but pass high ones.
func ParsePrice(value any) float64 {
	price, ok := parsePriceStrict(value)
	if !ok {
		return math.Inf(1)
	}
	return price
}

// parsePriceStrict reports whether the value carries a genuinely parseable
// price. Budget statistics use this to exclude unparseable records rather
// than polluting the mean with the infinity sentinel.
func parsePriceStrict(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		return parsePriceText(v)
	default:
		return 0, false
	}
}

func parsePriceText(text string) (float64, bool) {
	text = strings.ReplaceAll(text, "$", "")
	text = strings.ReplaceAll(text, "~", "")

	// Ranges keep only the lower bound.
	if idx := strings.Index(text, "-"); idx >= 0 {
		text = text[:idx]
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, false
	}
	return price, true
}
