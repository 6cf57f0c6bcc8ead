package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore grava no MEDIA_ROOT, servido pela própria API em MEDIA_URL.
type LocalStore struct {
	root string
	base string
}

func NewLocalStore(root, baseURL string) *LocalStore {
	return &LocalStore{root: root, base: strings.TrimRight(baseURL, "/")}
}

func (l *LocalStore) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	full := filepath.Join(l.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("media dir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("media write: %w", err)
	}
	return l.base + "/" + key, nil
}

func (l *LocalStore) Delete(_ context.Context, url string) error {
	key, ok := keyFromURL(l.base, url)
	if !ok {
		return nil
	}
	err := os.Remove(filepath.Join(l.root, filepath.FromSlash(key)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
