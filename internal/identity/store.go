// SPDX-License-Identifier: MIT

// Package identity persists the viewer's display name and avatar so they
// survive restarts. Absence of a stored identity falls back to the built-in
// defaults.
package identity

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Placeholder identity shown until the viewer introduces themselves.
const (
	DefaultName   = "Who are you ?"
	DefaultAvatar = "/avatar/zombi.png"
)

var identityKey = []byte("identity")

// Identity is the persisted viewer identity.
type Identity struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Store is a badger-backed key-value store holding exactly one identity
// record.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the store at path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("identity: open store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Get returns the stored identity, or the defaults when none was saved yet.
func (s *Store) Get() (Identity, error) {
	id := Identity{Name: DefaultName, Avatar: DefaultAvatar}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(identityKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &id)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Identity{Name: DefaultName, Avatar: DefaultAvatar}, nil
	}
	if err != nil {
		return Identity{Name: DefaultName, Avatar: DefaultAvatar}, fmt.Errorf("identity: read: %w", err)
	}
	return id, nil
}

// Set persists a new identity. Empty fields keep their defaults.
func (s *Store) Set(name, avatar string) (Identity, error) {
	if name == "" {
		name = DefaultName
	}
	if avatar == "" {
		avatar = DefaultAvatar
	}
	id := Identity{Name: name, Avatar: avatar}
	buf, err := json.Marshal(id)
	if err != nil {
		return id, fmt.Errorf("identity: marshal: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(identityKey, buf)
	})
	if err != nil {
		return id, fmt.Errorf("identity: write: %w", err)
	}
	return id, nil
}
