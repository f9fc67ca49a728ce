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


package reembed

import (
	"context"

	"github.com/poiesic/wayfind/core"
	"github.com/poiesic/wayfind/storage"
)

const (
	// DefaultBatchSize is the default number of candidates per batch
	DefaultBatchSize = 100
)

// CandidateIterator walks every stored candidate, intent by intent,
// delivering them in batches.
type CandidateIterator struct {
	repo      storage.CandidateRepository
	batchSize int
}

// NewCandidateIterator creates a new candidate iterator.
// batchSize: number of candidates in each batch (must be > 0)
func NewCandidateIterator(repo storage.CandidateRepository, batchSize int) *CandidateIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &CandidateIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach iterates over all candidates of every intent, calling fn for
// each batch. A batch never mixes intents. Iteration stops on the first
// error from fn. Context cancellation is checked between batches.
func (it *CandidateIterator) ForEach(ctx context.Context, fn func(core.Intent, []*core.Record) error) error {
	for _, intent := range core.Intents() {
		if err := it.forEachIntent(ctx, intent, fn); err != nil {
			return err
		}
	}
	return nil
}

func (it *CandidateIterator) forEachIntent(ctx context.Context, intent core.Intent, fn func(core.Intent, []*core.Record) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	records, err := it.repo.ListCandidates(ctx, intent)
	if err != nil {
		return err
	}

	for i := 0; i < len(records); i += it.batchSize {
		end := i + it.batchSize
		if end > len(records) {
			end = len(records)
		}

		if err := fn(intent, records[i:end]); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	return nil
}
