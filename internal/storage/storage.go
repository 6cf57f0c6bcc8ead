package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// ImageStore persiste imagens já processadas e devolve a URL pública.
type ImageStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}

// NewKey monta "usuarios/<id>/<uuid>.webp".
func NewKey(folder string, ownerID uint) string {
	return path.Join(folder, fmt.Sprint(ownerID), uuid.NewString()+".webp")
}

func keyFromURL(base, url string) (string, bool) {
	base = strings.TrimRight(base, "/") + "/"
	if !strings.HasPrefix(url, base) {
		return "", false
	}
	key := strings.TrimPrefix(url, base)
	if key == "" || strings.Contains(key, "..") {
		return "", false
	}
	return key, true
}
