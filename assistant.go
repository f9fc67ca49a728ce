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


package wayfind

import (
	"context"
	"io"
	"log/slog"

	"github.com/poiesic/wayfind/ai"
	"github.com/poiesic/wayfind/ai/openai"
	"github.com/poiesic/wayfind/core"
	"github.com/poiesic/wayfind/dispatch"
	"github.com/poiesic/wayfind/ingestion"
	"github.com/poiesic/wayfind/rank"
	"github.com/poiesic/wayfind/reembed"
	"github.com/poiesic/wayfind/retrieval"
	"github.com/poiesic/wayfind/storage"
	"github.com/poiesic/wayfind/storage/badger"
)

// Assistant wires the candidate store, AI provider, and dispatch pipeline
// into a single query-answering surface.
type Assistant struct {
	backend    *badger.Backend
	repo       storage.CandidateRepository
	provider   ai.Provider
	dispatcher *dispatch.Dispatcher
	logger     *slog.Logger
}

// AssistantOption configures an Assistant.
type AssistantOption func(*assistantOptions)

type assistantOptions struct {
	aiConfig       *ai.Config
	retrieverOpts  []retrieval.RetrieverOption
	dispatcherOpts []dispatch.DispatcherOption
}

// WithAIConfig overrides the default AI endpoint configuration.
func WithAIConfig(config *ai.Config) AssistantOption {
	return func(o *assistantOptions) {
		o.aiConfig = config
	}
}

// WithRetrieverOptions passes options through to the retriever.
func WithRetrieverOptions(opts ...retrieval.RetrieverOption) AssistantOption {
	return func(o *assistantOptions) {
		o.retrieverOpts = append(o.retrieverOpts, opts...)
	}
}

// WithDispatcherOptions passes options through to the dispatcher.
func WithDispatcherOptions(opts ...dispatch.DispatcherOption) AssistantOption {
	return func(o *assistantOptions) {
		o.dispatcherOpts = append(o.dispatcherOpts, opts...)
	}
}

// NewAssistant opens the candidate store at filePath and wires the full
// query pipeline over it.
func NewAssistant(filePath string, opts ...AssistantOption) (*Assistant, error) {
	options := &assistantOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	repo, err := badger.NewCandidateRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		repo.Close()
		backend.Close()
		return nil, err
	}

	assistant := &Assistant{
		backend:  backend,
		repo:     repo,
		provider: provider,
		logger:   slog.Default(),
	}

	dispatcher, err := assistant.newDispatcher(options)
	if err != nil {
		assistant.Close()
		return nil, err
	}
	assistant.dispatcher = dispatcher

	return assistant, nil
}

func (a *Assistant) newDispatcher(options *assistantOptions) (*dispatch.Dispatcher, error) {
	retriever, err := retrieval.NewRetriever(a.repo, a.provider.Embedder(), options.retrieverOpts...)
	if err != nil {
		return nil, err
	}

	ranker, err := rank.NewRanker(a.provider.Embedder())
	if err != nil {
		return nil, err
	}

	pipeline, err := rank.NewFilterPipeline(a.provider.Embedder())
	if err != nil {
		return nil, err
	}

	return dispatch.NewDispatcher(
		a.provider.IntentClassifier(),
		a.provider.FilterExtractor(),
		retriever,
		ranker,
		pipeline,
		options.dispatcherOpts...,
	)
}

// Close releases the AI provider and closes the candidate store.
func (a *Assistant) Close() error {
	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
	}

	if err := a.repo.Close(); err != nil {
		a.logger.Error("error closing candidate repository", "err", err)
		return err
	}

	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// CandidateRepository exposes the underlying candidate store.
func (a *Assistant) CandidateRepository() storage.CandidateRepository {
	return a.repo
}

// NewSeedPipeline creates a seed pipeline over the assistant's store.
func (a *Assistant) NewSeedPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(a.repo, a.provider.Embedder(), opts...)
}

// NewReembedder creates a reembedder over the assistant's store, used to
// regenerate stored vectors after an embedding model change.
func (a *Assistant) NewReembedder(config *reembed.Config, progress io.Writer) *reembed.Reembedder {
	return reembed.NewReembedder(a.repo, a.provider.Embedder(), config, progress)
}

// Answer classifies the query, runs each intent's retrieval and filtering
// pipeline, and returns the aggregated results keyed by agent role name.
func (a *Assistant) Answer(ctx context.Context, query string) (dispatch.Result, error) {
	return a.dispatcher.Dispatch(ctx, query)
}

// AnswerWithFilters is Answer with caller-supplied constraint filters,
// skipping LLM filter extraction.
func (a *Assistant) AnswerWithFilters(ctx context.Context, query string, filters core.FilterSet) (dispatch.Result, error) {
	return a.dispatcher.DispatchWithFilters(ctx, query, filters)
}
