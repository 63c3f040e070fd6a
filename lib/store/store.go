// Package store persists model snapshots to a local bolt database, one
// bucket per collection, msgpack-encoded. It is an optional adapter: views
// never touch it, and models carry no persistence state of their own.
package store

import (
	"errors"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"

	"github.com/pmorton/chassis/lib/model"
)

// Sentinel errors for store operations.
var (
	ErrNotFound = errors.New("store: model not found")
	ErrNoID     = errors.New("store: model has no id attribute")
)

// IsNotFound checks if err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Store wraps a bolt database holding model snapshots.
type Store struct {
	db *bbolt.DB
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes the model's full snapshot into the named bucket, keyed by
// the model's id attribute. Models without an id cannot be saved.
func (s *Store) Save(bucket string, m *model.Model) error {
	id := m.ID()
	if id == "" {
		return ErrNoID
	}
	data, err := msgpack.Marshal(m.ToJSON())
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return err
		}
		return b.Put([]byte(id), data)
	})
}

// Load reads one model snapshot from the named bucket.
func (s *Store) Load(bucket, id string) (*model.Model, error) {
	var attrs map[string]any
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return ErrNotFound
		}
		data := b.Get([]byte(id))
		if data == nil {
			return ErrNotFound
		}
		return msgpack.Unmarshal(data, &attrs)
	})
	if err != nil {
		return nil, err
	}
	return model.New(attrs), nil
}

// Delete removes one snapshot from the named bucket. Deleting a missing
// key is a no-op.
func (s *Store) Delete(bucket, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(id))
	})
}

// LoadAll reads every snapshot in the named bucket into a collection, in
// key order. A missing bucket yields an empty collection.
func (s *Store) LoadAll(bucket string) (*model.Collection, error) {
	c := model.NewCollection()
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, data []byte) error {
			var attrs map[string]any
			if err := msgpack.Unmarshal(data, &attrs); err != nil {
				return err
			}
			c.Add(model.New(attrs))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}
