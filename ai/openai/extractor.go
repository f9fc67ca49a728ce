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


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/poiesic/wayfind/ai"
	"github.com/poiesic/wayfind/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// FilterExtractor implements ai.FilterExtractor using OpenAI-compatible chat APIs.
type FilterExtractor struct {
	client llms.Model
	logger *slog.Logger
}

// newFilterExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newFilterExtractor(config *ai.Config) (*FilterExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ClassifierHost),
		openai.WithToken("none"),
		openai.WithModel(config.ClassifierModel),
	)
	if err != nil {
		return nil, err
	}

	return &FilterExtractor{
		client: client,
		logger: slog.Default().With("component", "openai-filter-extractor"),
	}, nil
}

// NewFilterExtractor creates a new filter extractor using the provided configuration.
//
// Returns ai.FilterExtractor interface to enforce abstraction.
func NewFilterExtractor(config *ai.Config) (ai.FilterExtractor, error) {
	return newFilterExtractor(config)
}

// ExtractFilters sends the query to the extraction model and parses its JSON
// response into a filter set. Keys with empty values are stripped. Transport
// and parse failures return an error wrapping ai.ErrFilterExtraction.
func (e *FilterExtractor) ExtractFilters(ctx context.Context, query string) (core.FilterSet, error) {
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(buildFilterPrompt(query))},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var filters core.FilterSet
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			e.logger.Error("filter extraction request failed", "attempt", attempt+1, "err", err)
			return nil, fmt.Errorf("%w: %w", ai.ErrFilterExtraction, err)
		}

		if len(response.Choices) < 1 {
			e.logger.Warn("no choices returned from extraction model")
			return nil, fmt.Errorf("%w: empty response", ai.ErrFilterExtraction)
		}

		responseText := repairJSON(stripCodeFences(response.Choices[0].Content))

		filters, lastErr = ParseFilterResponse(responseText)
		if lastErr == nil {
			break
		}
		e.logger.Warn("error parsing filter response",
			"attempt", attempt+1,
			"response", responseText,
			"err", lastErr)
	}

	if lastErr != nil {
		e.logger.Error("failed to parse filter response after retries", "err", lastErr)
		return nil, fmt.Errorf("%w: %w", ai.ErrFilterExtraction, lastErr)
	}

	e.logger.Debug("extracted filters", "query", query, "filters", filters)
	return filters, nil
}

// ParseFilterResponse parses a JSON object string into a compacted filter
// set. Unrecognized keys and empty values are dropped.
func ParseFilterResponse(responseText string) (core.FilterSet, error) {
	var raw map[string]string
	if err := json.Unmarshal([]byte(responseText), &raw); err != nil {
		return nil, err
	}

	filters := make(core.FilterSet, len(raw))
	for k, v := range raw {
		filters[core.FilterKey(k)] = v
	}
	return filters.Compact(), nil
}
