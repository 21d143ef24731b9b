package store

import (
	"encoding/json"
	"errors"
	"reflect"
)

// Keys for the persisted collections. Every piece of application state
// lives under one of these.
const (
	KeyProducts  = "fertilizer_products"
	KeySales     = "fertilizer_sales"
	KeyAdminAuth = "admin_authenticated"
)

// KV is a JSON key-value store. Get decodes the value stored under key
// into out and reports whether it did; on a missing key, an undecodable
// value, or an unavailable medium, out is left untouched so the caller's
// pre-filled value acts as the default. Set is best-effort: failures are
// logged by the implementation and never returned, because nothing above
// this layer has an error contract for persistence. Remove is idempotent.
type KV interface {
	Get(key string, out interface{}) bool
	Set(key string, v interface{})
	Remove(key string)
}

// MemoryStore is a map-backed KV for tests and for running without a
// writable data file. It holds encoded bytes so Get/Set round-trip
// through JSON exactly like the file-backed store.
type MemoryStore struct {
	m map[string][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: map[string][]byte{}}
}

func (s *MemoryStore) Get(key string, out interface{}) bool {
	raw, ok := s.m[key]
	if !ok {
		return false
	}
	return decodeJSON(raw, out) == nil
}

func (s *MemoryStore) Set(key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.m[key] = raw
}

func (s *MemoryStore) Remove(key string) {
	delete(s.m, key)
}

// decodeJSON unmarshals raw into out without ever leaving out half
// written. json.Unmarshal populates the target field by field before
// reporting a type error, so decoding straight into out would clobber
// the caller's default on a corrupt value; decoding into a scratch
// value and copying only on success keeps the Get contract honest.
func decodeJSON(raw []byte, out interface{}) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("out must be a non-nil pointer")
	}
	scratch := reflect.New(rv.Type().Elem())
	if err := json.Unmarshal(raw, scratch.Interface()); err != nil {
		return err
	}
	rv.Elem().Set(scratch.Elem())
	return nil
}
