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
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/wayfind/ai"
	"github.com/poiesic/wayfind/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Classifier implements ai.IntentClassifier using OpenAI-compatible chat APIs.
type Classifier struct {
	client llms.Model
	logger *slog.Logger
}

// newClassifier is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newClassifier(config *ai.Config) (*Classifier, error) {
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

	return &Classifier{
		client: client,
		logger: slog.Default().With("component", "openai-classifier"),
	}, nil
}

// NewClassifier creates a new intent classifier using the provided configuration.
//
// Returns ai.IntentClassifier interface to enforce abstraction.
func NewClassifier(config *ai.Config) (ai.IntentClassifier, error) {
	return newClassifier(config)
}

// ClassifyIntents sends the query to the classification model and parses its
// comma-separated label response against the valid intent vocabulary.
// A response naming no valid intent yields the unknown sentinel with a nil
// error; transport failures return an error wrapping ai.ErrClassification.
func (c *Classifier) ClassifyIntents(ctx context.Context, query string) ([]core.Intent, error) {
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(buildClassifierPrompt())},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(query)},
		},
	}

	response, err := c.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		c.logger.Error("classification request failed", "err", err)
		return nil, fmt.Errorf("%w: %w", ai.ErrClassification, err)
	}

	if len(response.Choices) < 1 {
		c.logger.Warn("no choices returned from classification model")
		return nil, fmt.Errorf("%w: empty response", ai.ErrClassification)
	}

	intents := ParseIntentLabels(response.Choices[0].Content)
	c.logger.Debug("classified query", "query", query, "intents", intents)
	return intents, nil
}

// ParseIntentLabels parses a comma-separated label string, retaining only
// tokens in the valid intent vocabulary (case-insensitive, whitespace
// trimmed). When no valid label survives, the result is the single unknown
// sentinel.
func ParseIntentLabels(response string) []core.Intent {
	var intents []core.Intent
	seen := make(map[core.Intent]bool)
	for _, token := range strings.Split(response, ",") {
		intent, ok := core.ParseIntent(token)
		if !ok || seen[intent] {
			continue
		}
		seen[intent] = true
		intents = append(intents, intent)
	}
	if len(intents) == 0 {
		return []core.Intent{core.IntentUnknown}
	}
	return intents
}
