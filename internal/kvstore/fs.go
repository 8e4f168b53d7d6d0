package kvstore

import (
	"errors"
	"os"
	"path/filepath"
)

type fsStore struct{ base string }

// NewFS stores each key as one file under base. Keys are cleaned before
// joining so a key cannot escape the base directory.
func NewFS(base string) (Store, error) {
	if base == "" {
		base = "./data"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &fsStore{base: base}, nil
}

func (s *fsStore) path(key string) string {
	return filepath.Join(s.base, filepath.Clean("/"+key))
}

func (s *fsStore) Get(key string) (string, bool, error) {
	buf, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(buf), true, nil
}

func (s *fsStore) Set(key, value string) error {
	if key == "" {
		return errors.New("empty key")
	}
	dst := s.path(key)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, []byte(value), 0o644)
}

func (s *fsStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *fsStore) Close() error { return nil }
