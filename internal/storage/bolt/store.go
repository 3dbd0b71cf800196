// Package bolt keeps verification records in an embedded bbolt file. Keys are
// the record ids; UUIDv7 ids sort in creation order, so cursor order is
// creation order.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/andriskumpel/combate-desinformacao/internal/domain"
)

var bucketVerifications = []byte("verifications")

// Open creates the parent directory when missing and makes sure the
// verifications bucket exists.
func Open(path string) (*bolt.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create bolt directory: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt file: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketVerifications)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return db, nil
}

type VerificationStore struct {
	db *bolt.DB
}

func NewVerificationStore(db *bolt.DB) *VerificationStore {
	return &VerificationStore{db: db}
}

func (s *VerificationStore) Create(ctx context.Context, v *domain.Verification) (*domain.Verification, error) {
	var created *domain.Verification
	err := s.update(ctx, func(b *bolt.Bucket) error {
		if b.Get([]byte(v.ID)) != nil {
			return fmt.Errorf("duplicate id %s", v.ID)
		}
		if err := put(b, v); err != nil {
			return err
		}
		created = clone(v)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: insert verification: %w", domain.ErrStore, err)
	}
	return created, nil
}

// Get returns nil, nil when no record has the given id.
func (s *VerificationStore) Get(ctx context.Context, id string) (*domain.Verification, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	var found *domain.Verification
	err := s.view(ctx, func(b *bolt.Bucket) error {
		v, err := get(b, id)
		found = v
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: get verification: %w", domain.ErrStore, err)
	}
	return found, nil
}

// Update returns nil, nil when no record has the given id.
func (s *VerificationStore) Update(ctx context.Context, id string, u domain.VerificationUpdate) (*domain.Verification, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	if err := checkResults(u); err != nil {
		return nil, fmt.Errorf("%w: update verification: %w", domain.ErrStore, err)
	}

	var updated *domain.Verification
	err := s.update(ctx, func(b *bolt.Bucket) error {
		v, err := get(b, id)
		if err != nil || v == nil {
			return err
		}
		u.Apply(v, time.Now().UTC())
		if err := put(b, v); err != nil {
			return err
		}
		updated = v
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: update verification: %w", domain.ErrStore, err)
	}
	return updated, nil
}

func (s *VerificationStore) List(ctx context.Context, offset, limit int) ([]*domain.Verification, error) {
	result := make([]*domain.Verification, 0)
	err := s.view(ctx, func(b *bolt.Bucket) error {
		skipped := 0
		c := b.Cursor()
		for k, data := c.First(); k != nil && len(result) < limit; k, data = c.Next() {
			if skipped < offset {
				skipped++
				continue
			}
			v, err := decode(data)
			if err != nil {
				return err
			}
			result = append(result, v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list verifications: %w", domain.ErrStore, err)
	}
	return result, nil
}

// ListPending scans the bucket in creation order and stops at the first
// record created at or after before.
func (s *VerificationStore) ListPending(ctx context.Context, before time.Time, limit int) ([]*domain.Verification, error) {
	result := make([]*domain.Verification, 0)
	err := s.view(ctx, func(b *bolt.Bucket) error {
		c := b.Cursor()
		for k, data := c.First(); k != nil && len(result) < limit; k, data = c.Next() {
			v, err := decode(data)
			if err != nil {
				return err
			}
			if !v.CreatedAt.Before(before) {
				break
			}
			if v.Status == domain.StatusPending {
				result = append(result, v)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list pending verifications: %w", domain.ErrStore, err)
	}
	return result, nil
}

func (s *VerificationStore) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}

	var deleted bool
	err := s.update(ctx, func(b *bolt.Bucket) error {
		if b.Get([]byte(id)) == nil {
			return nil
		}
		deleted = true
		return b.Delete([]byte(id))
	})
	if err != nil {
		return false, fmt.Errorf("%w: delete verification: %w", domain.ErrStore, err)
	}
	return deleted, nil
}

func (s *VerificationStore) view(ctx context.Context, fn func(b *bolt.Bucket) error) error {
	if tx := GetTxFromContext(ctx); tx != nil {
		return fn(tx.Bucket(bucketVerifications))
	}
	return s.db.View(func(tx *bolt.Tx) error {
		return fn(tx.Bucket(bucketVerifications))
	})
}

func (s *VerificationStore) update(ctx context.Context, fn func(b *bolt.Bucket) error) error {
	if tx := GetTxFromContext(ctx); tx != nil {
		return fn(tx.Bucket(bucketVerifications))
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return fn(tx.Bucket(bucketVerifications))
	})
}

// checkResults mirrors the table constraint of the postgres schema: an update
// sets both results or neither.
func checkResults(u domain.VerificationUpdate) error {
	if (u.AnalysisResult == nil) != (u.ClassificationResult == nil) {
		return fmt.Errorf("analysis and classification results must be set together")
	}
	return nil
}

func get(b *bolt.Bucket, id string) (*domain.Verification, error) {
	data := b.Get([]byte(id))
	if data == nil {
		return nil, nil
	}
	return decode(data)
}

func put(b *bolt.Bucket, v *domain.Verification) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode verification: %w", err)
	}
	return b.Put([]byte(v.ID), data)
}

func decode(data []byte) (*domain.Verification, error) {
	var v domain.Verification
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode verification: %w", err)
	}
	return &v, nil
}

func clone(v *domain.Verification) *domain.Verification {
	c := *v
	return &c
}
