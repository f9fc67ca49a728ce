package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/wayfind/core"
	"github.com/poiesic/wayfind/storage"
)

// CandidateRepository implements storage.CandidateRepository for BadgerDB.
type CandidateRepository struct {
	backend *Backend
}

var _ storage.CandidateRepository = (*CandidateRepository)(nil)

// NewCandidateRepository creates a new CandidateRepository.
func NewCandidateRepository(backend *Backend) (*CandidateRepository, error) {
	return &CandidateRepository{
		backend: backend,
	}, nil
}

// Close releases resources. CandidateRepository has no resources to release.
func (r *CandidateRepository) Close() error {
	return nil
}

// FindSimilar delegates to the backend.
func (r *CandidateRepository) FindSimilar(ctx context.Context, intent core.Intent, vector []float32, minCertainty float32, limit int) ([]*core.Match, error) {
	return r.backend.FindSimilar(ctx, intent, vector, minCertainty, limit)
}

// WithTransaction delegates to the backend.
func (r *CandidateRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddCandidates adds one or more candidate records to storage. Each
// record's ID is derived from its serialized field content, so storing the
// same record twice overwrites the earlier copy.
func (r *CandidateRepository) AddCandidates(ctx context.Context, records ...*core.Record) ([]core.ID, error) {
	ids := make([]core.ID, 0, len(records))
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			if err := core.ValidateRecord(record); err != nil {
				return err
			}

			fields, err := record.MarshalJSON()
			if err != nil {
				return err
			}
			id := core.IDFromContent(string(fields))

			value, err := storage.MarshalRecord(record)
			if err != nil {
				return err
			}
			if err := tx.Set(makeCandidateKey(record.Intent, id), value); err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return ids, nil
}

// GetCandidate retrieves a single candidate by intent and ID.
func (r *CandidateRepository) GetCandidate(ctx context.Context, intent core.Intent, id core.ID) (*core.Record, error) {
	var result *core.Record
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readCandidate(tx, makeCandidateKey(intent, id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// DeleteCandidates removes candidates by their IDs.
func (r *CandidateRepository) DeleteCandidates(ctx context.Context, intent core.Intent, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeCandidateKey(intent, id)

			if _, err := tx.Get(key); err != nil {
				if err == badger.ErrKeyNotFound {
					return storage.ErrNotFound
				}
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// ListCandidates returns all stored candidates for an intent in key order.
func (r *CandidateRepository) ListCandidates(ctx context.Context, intent core.Intent) ([]*core.Record, error) {
	var results []*core.Record
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeIntentPrefix(intent)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				record, err := storage.UnmarshalRecord(val)
				if err != nil {
					return err
				}
				results = append(results, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return results, nil
}

// CountCandidates returns the number of stored candidates for an intent.
func (r *CandidateRepository) CountCandidates(ctx context.Context, intent core.Intent) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeIntentPrefix(intent)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readCandidate reads a candidate record from the transaction.
func readCandidate(tx *badger.Txn, key []byte) (*core.Record, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.Record
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalRecord(val)
		return err
	})
	return record, err
}
