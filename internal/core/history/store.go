// Package history persists generated links as a single JSON blob in a
// local key-value store and provides the pure operations over the
// resulting collection.
package history

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// DefaultKey is the storage key the collection lives under.
const DefaultKey = "utmLinks"

var (
	// ErrStorageRead marks a collection that could not be read or decoded.
	// Load reports it to the warning handler and returns an empty collection.
	ErrStorageRead = errors.New("history storage read failed")
	// ErrStorageWrite marks a failed save. In-memory state stays valid.
	ErrStorageWrite = errors.New("history storage write failed")
)

// Store loads and saves the whole collection under one key.
type Store struct {
	kv   KV
	key  string
	warn func(error)
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithWarningHandler sets the function that receives soft read failures.
func WithWarningHandler(fn func(error)) Option {
	return func(s *Store) {
		if fn != nil {
			s.warn = fn
		}
	}
}

// NewStore creates a store on top of kv.
func NewStore(kv KV, opts ...Option) *Store {
	s := &Store{
		kv:  kv,
		key: DefaultKey,
		warn: func(err error) {
			slog.Warn("history: falling back to empty history", "err", err)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the stored collection. A missing key yields an empty
// collection; a failing or corrupt read is passed to the warning handler
// and also yields an empty collection.
func (s *Store) Load() []Record {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		s.warn(fmt.Errorf("%w: %v", ErrStorageRead, err))
		return []Record{}
	}
	if !ok || raw == "" {
		return []Record{}
	}

	var col []Record
	if err := json.Unmarshal([]byte(raw), &col); err != nil {
		s.warn(fmt.Errorf("%w: decoding %q: %v", ErrStorageRead, s.key, err))
		return []Record{}
	}
	if col == nil {
		col = []Record{}
	}
	return col
}

// Save overwrites the stored collection with col.
func (s *Store) Save(col []Record) error {
	data, err := Marshal(col)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	if err := s.kv.Set(s.key, string(data)); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	return nil
}

// Marshal encodes col as compact JSON without HTML escaping, so URLs keep
// their literal '&'.
func Marshal(col []Record) ([]byte, error) {
	if col == nil {
		col = []Record{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(col); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
