// Package kvstore is the persistence boundary of the application: a
// synchronous string-keyed key/value medium plus JSON helpers for the
// whole-collection round trips every record set uses.
package kvstore

import "encoding/json"

// Store is the storage medium contract. A value is a whole serialized
// collection; Set always replaces it. There is no atomicity across keys.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// ReadJSON loads and decodes the collection stored under key. An absent
// key yields an empty collection. A present but malformed value is an
// error; callers treat that as fatal since this process is the only writer.
func ReadJSON[T any](s Store, key string) ([]T, error) {
	raw, ok, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// WriteJSON serializes items and overwrites the collection under key.
func WriteJSON[T any](s Store, key string, items []T) error {
	buf, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.Set(key, string(buf))
}
