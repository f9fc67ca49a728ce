package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/wayfind/ai"
	"github.com/poiesic/wayfind/core"
	"github.com/poiesic/wayfind/rank"
	"github.com/poiesic/wayfind/retrieval"
)

// Retriever fetches candidate records for one intent.
type Retriever interface {
	Retrieve(ctx context.Context, intent core.Intent, query string) ([]*core.Record, error)
}

// Result is the aggregated dispatch output, keyed by agent role name.
type Result map[string]core.IntentOutput

// Dispatcher routes a query to the pipelines of its classified intents and
// aggregates their outputs. Classification and filter extraction failures
// are recovered here; they degrade the dispatch instead of aborting it.
type Dispatcher struct {
	classifier ai.IntentClassifier
	extractor  ai.FilterExtractor
	retriever  Retriever
	ranker     *rank.Ranker
	pipeline   *rank.FilterPipeline
	logger     *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher) error

// WithDispatcherLogger sets a custom logger.
// Default is slog.Default().
func WithDispatcherLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		d.logger = logger
		return nil
	}
}

// NewDispatcher creates a new dispatcher.
func NewDispatcher(classifier ai.IntentClassifier, extractor ai.FilterExtractor, retriever Retriever, ranker *rank.Ranker, pipeline *rank.FilterPipeline, opts ...DispatcherOption) (*Dispatcher, error) {
	if classifier == nil {
		return nil, ErrClassifierRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if retriever == nil {
		return nil, ErrRetrieverRequired
	}
	if ranker == nil {
		return nil, ErrRankerRequired
	}
	if pipeline == nil {
		return nil, ErrPipelineRequired
	}

	d := &Dispatcher{
		classifier: classifier,
		extractor:  extractor,
		retriever:  retriever,
		ranker:     ranker,
		pipeline:   pipeline,
		logger:     slog.Default().With("component", "dispatcher"),
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Dispatch extracts filters from the query, classifies it, and runs each
// classified intent's pipeline in order.
func (d *Dispatcher) Dispatch(ctx context.Context, query string) (Result, error) {
	return d.DispatchWithFilters(ctx, query, nil)
}

// DispatchWithFilters is Dispatch with caller-supplied filters; extraction
// is skipped when filters is non-nil. Intents without a registered agent
// are skipped with a warning. Returns ErrNoSupportedIntents when no intent
// produced a result.
func (d *Dispatcher) DispatchWithFilters(ctx context.Context, query string, filters core.FilterSet) (Result, error) {
	if filters == nil {
		filters = d.extractFilters(ctx, query)
	}
	d.logger.Info("extracted filters", "filters", filters)

	intents := d.classify(ctx, query)
	d.logger.Info("classified intents", "intents", intents)

	results := Result{}
	for _, intent := range intents {
		agent, ok := retrieval.LookupAgent(intent)
		if !ok {
			d.logger.Warn("unknown intent", "intent", intent)
			continue
		}

		output, err := d.runIntent(ctx, intent, query, filters)
		if err != nil {
			return nil, err
		}
		results[agent.Role] = output
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w in: %v", ErrNoSupportedIntents, intents)
	}

	return results, nil
}

// extractFilters obtains the query's filter set, degrading to an empty set
// on failure.
func (d *Dispatcher) extractFilters(ctx context.Context, query string) core.FilterSet {
	filters, err := d.extractor.ExtractFilters(ctx, query)
	if err != nil {
		d.logger.Warn("failed to extract filters from query", "err", err)
		return core.FilterSet{}
	}
	return filters
}

// classify obtains the query's intents, degrading to the unknown sentinel
// on failure.
func (d *Dispatcher) classify(ctx context.Context, query string) []core.Intent {
	intents, err := d.classifier.ClassifyIntents(ctx, query)
	if err != nil {
		d.logger.Warn("failed to classify query", "err", err)
		return []core.Intent{core.IntentUnknown}
	}
	if len(intents) == 0 {
		return []core.Intent{core.IntentUnknown}
	}
	return intents
}

// runIntent retrieves, ranks, and filters candidates for one intent.
// Intents without a field mapping pass their candidates through unranked.
func (d *Dispatcher) runIntent(ctx context.Context, intent core.Intent, query string, filters core.FilterSet) (core.IntentOutput, error) {
	records, err := d.retriever.Retrieve(ctx, intent, query)
	if err != nil {
		return core.IntentOutput{}, err
	}

	mapping, ok := core.LookupMapping(intent)
	if !ok {
		d.logger.Debug("no field mapping, passing candidates through", "intent", intent)
		return core.IntentOutput{Set: &core.ResultSet{
			ItemsKey: core.ItemsKey(intent),
			Records:  records,
		}}, nil
	}

	ranked, err := d.ranker.Rank(ctx, records, query, mapping)
	if err != nil {
		return core.IntentOutput{}, err
	}

	filtered, err := d.pipeline.Apply(ctx, ranked, filters, mapping)
	if err != nil {
		return core.IntentOutput{}, err
	}

	return core.IntentOutput{Set: &core.ResultSet{
		ItemsKey: mapping.ItemsKey,
		Records:  filtered,
	}}, nil
}
