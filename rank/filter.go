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


package rank

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/poiesic/wayfind/ai"
	"github.com/poiesic/wayfind/core"
)

// cityField is the record field the city stage compares against.
// Every collection that carries location data uses this name.
const cityField = "City"

// budgetBucket identifies one of the three price bands defined by
// mean +/- one population standard deviation of the candidate prices.
type budgetBucket int

const (
	bucketNone budgetBucket = iota
	bucketLow
	bucketMedium
	bucketHigh
)

// budgetWords maps recognized budget filter values to their bucket.
// Unrecognized words leave the candidate set unchanged.
var budgetWords = map[string]budgetBucket{
	"low":        bucketLow,
	"cheap":      bucketLow,
	"affordable": bucketLow,
	"medium":     bucketMedium,
	"moderate":   bucketMedium,
	"high":       bucketHigh,
	"expensive":  bucketHigh,
	"luxury":     bucketHigh,
}

// FilterPipeline applies city, budget, type, and suitability constraints to
// a ranked candidate list, in that fixed order. City and budget stages
// remove candidates; type and suitability stages only re-sort them by
// similarity to the filter value.
type FilterPipeline struct {
	embedder ai.Embedder
	logger   *slog.Logger
}

// PipelineOption configures a FilterPipeline.
type PipelineOption func(*FilterPipeline) error

// WithPipelineLogger sets a custom logger.
// Default is slog.Default().
func WithPipelineLogger(logger *slog.Logger) PipelineOption {
	return func(p *FilterPipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewFilterPipeline creates a new constraint filter pipeline.
func NewFilterPipeline(embedder ai.Embedder, opts ...PipelineOption) (*FilterPipeline, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	p := &FilterPipeline{
		embedder: embedder,
		logger:   slog.Default().With("component", "filter-pipeline"),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Apply runs the constraint stages over a ranked candidate list and returns
// the surviving candidates in their final order. Only stages whose filter
// key is present and whose mapping exposes the corresponding field run.
// The input slice is not modified.
func (p *FilterPipeline) Apply(ctx context.Context, ranked []*core.Record, filters core.FilterSet, mapping core.FieldMapping) ([]*core.Record, error) {
	return p.ApplyWithMonitor(ctx, ranked, filters, mapping, nil)
}

// ApplyWithMonitor runs the constraint stages with observation hooks.
// The monitor receives a callback after each stage that ran.
func (p *FilterPipeline) ApplyWithMonitor(ctx context.Context, ranked []*core.Record, filters core.FilterSet, mapping core.FieldMapping, monitor PipelineMonitor) ([]*core.Record, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(filters, len(ranked))

	filtered := make([]*core.Record, len(ranked))
	copy(filtered, ranked)

	// 1. City: exact, case-insensitive match. Candidates without a City
	// field are excluded.
	if city, ok := filters[core.FilterCity]; ok {
		kept := filtered[:0]
		for _, record := range filtered {
			if strings.EqualFold(record.Text(cityField), city) {
				kept = append(kept, record)
			}
		}
		filtered = kept
		monitor.AfterCityStage(len(filtered))
	}

	// 2. Budget: thresholds derive from the original unfiltered candidate
	// set, not the survivors of the city stage.
	if budget, ok := filters[core.FilterBudget]; ok && mapping.PriceField != "" {
		filtered = p.applyBudget(filtered, ranked, budget, mapping.PriceField, monitor)
	}

	// 3. Type and suitability re-sort without removing anything. When both
	// run, suitability's ordering wins since it runs last.
	for _, stage := range []struct {
		key   core.FilterKey
		field string
	}{
		{core.FilterType, mapping.TypeField},
		{core.FilterSuitability, mapping.SuitabilityField},
	} {
		value, ok := filters[stage.key]
		if !ok || stage.field == "" {
			continue
		}
		resorted, err := p.resortByField(ctx, filtered, value, stage.field)
		if err != nil {
			return nil, err
		}
		filtered = resorted
		monitor.AfterResortStage(stage.key, len(filtered))
	}

	monitor.Finish(filtered)
	return filtered, nil
}

// applyBudget keeps only candidates whose parsed price falls into the
// requested bucket. Prices that fail to parse compare as positive infinity:
// they fail low and medium buckets and pass high ones.
func (p *FilterPipeline) applyBudget(filtered, all []*core.Record, budget, priceField string, monitor PipelineMonitor) []*core.Record {
	bucket, recognized := budgetWords[strings.ToLower(budget)]
	if !recognized {
		p.logger.Warn("unrecognized budget filter value", "budget", budget)
		return filtered
	}

	mean, std, ok := priceStats(all, priceField)
	if !ok {
		return filtered
	}
	if std == 0 {
		std = 1.0
	}

	keep := func(price float64) bool {
		switch bucket {
		case bucketLow:
			return price <= mean-std
		case bucketMedium:
			return price >= mean-std && price <= mean+std
		case bucketHigh:
			return price >= mean+std
		default:
			return true
		}
	}

	kept := make([]*core.Record, 0, len(filtered))
	for _, record := range filtered {
		value, _ := record.Get(priceField)
		if keep(ParsePrice(value)) {
			kept = append(kept, record)
		}
	}

	monitor.AfterBudgetStage(mean, std, len(kept))
	return kept
}

// resortByField stably re-sorts candidates by cosine similarity between the
// filter value's embedding and each candidate's field text embedding,
// descending.
func (p *FilterPipeline) resortByField(ctx context.Context, records []*core.Record, filterValue, field string) ([]*core.Record, error) {
	if len(records) == 0 {
		return records, nil
	}

	filterVector, err := p.embedder.EmbedText(ctx, strings.ToLower(filterValue))
	if err != nil {
		p.logger.Error("error embedding filter value", "value", filterValue, "err", err)
		return nil, err
	}

	texts := make([]string, len(records))
	for i, record := range records {
		texts[i] = strings.ToLower(record.Text(field))
	}
	vectors, err := p.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		p.logger.Error("error embedding candidate fields", "field", field, "err", err)
		return nil, err
	}

	scores := make([]float64, len(records))
	for i := range records {
		if i < len(vectors) {
			scores[i] = CosineSimilarity(filterVector, vectors[i])
		}
	}

	index := make([]int, len(records))
	for i := range index {
		index[i] = i
	}
	sort.SliceStable(index, func(a, b int) bool {
		return scores[index[a]] > scores[index[b]]
	})

	resorted := make([]*core.Record, len(records))
	for i, idx := range index {
		resorted[i] = records[idx]
	}
	return resorted, nil
}
