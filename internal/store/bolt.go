package store

import (
	"encoding/json"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var bucketName = []byte("storage")

// BoltStore persists JSON values in a single-bucket bbolt file. It is the
// file-backed counterpart of MemoryStore and the only durable medium in
// the application.
type BoltStore struct {
	db     *bolt.DB
	logger *zap.Logger
}

// OpenBolt opens (creating if needed) the data file at path and ensures
// the storage bucket exists.
func OpenBolt(path string, logger *zap.Logger) (*BoltStore, error) {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db, logger: logger}, nil
}

// Close closes the underlying data file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) Get(key string, out interface{}) bool {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get([]byte(key)); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil || raw == nil {
		return false
	}
	if err := decodeJSON(raw, out); err != nil {
		s.logger.Warn("discarding corrupt stored value", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *BoltStore) Set(key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("failed to encode value", zap.String("key", key), zap.Error(err))
		return
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), raw)
	})
	if err != nil {
		// Best effort: the caller keeps working on its in-memory state.
		s.logger.Error("failed to persist value", zap.String("key", key), zap.Error(err))
	}
}

func (s *BoltStore) Remove(key string) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		s.logger.Error("failed to remove value", zap.String("key", key), zap.Error(err))
	}
}
