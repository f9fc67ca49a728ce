package rank

import (
	"math"

	"github.com/poiesic/wayfind/core"
)

// priceStats computes the mean and population standard deviation of the
// parseable prices in the candidate set. Records missing the price field or
// carrying an unparseable price are skipped. Returns ok=false when no
// parseable price exists.
func priceStats(records []*core.Record, priceField string) (mean, std float64, ok bool) {
	var prices []float64
	for _, record := range records {
		value, present := record.Get(priceField)
		if !present {
			continue
		}
		price, parsed := parsePriceStrict(value)
		if !parsed {
			continue
		}
		prices = append(prices, price)
	}

	if len(prices) == 0 {
		return 0, 0, false
	}

	for _, p := range prices {
		mean += p
	}
	mean /= float64(len(prices))

	var variance float64
	for _, p := range prices {
		d := p - mean
		variance += d * d
	}
	variance /= float64(len(prices))

	return mean, math.Sqrt(variance), true
}
