package media

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
)

// ObjectStore is the storage the uploader writes posters to.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Remove(ctx context.Context, keys ...string) error
}

// Uploader writes processed posters under per-owner key prefixes.
type Uploader struct {
	store ObjectStore
	log   *slog.Logger
}

// NewUploader creates an Uploader.
func NewUploader(store ObjectStore, logger *slog.Logger) *Uploader {
	return &Uploader{store: store, log: logger.With("component", "uploader")}
}

// Upload stores images in order and returns their keys. If any upload fails,
// the keys already written are removed before returning the error.
func (u *Uploader) Upload(ctx context.Context, images []Processed, ownerID, postID string) ([]string, error) {
	keys := make([]string, 0, len(images))
	for i, img := range images {
		key, err := ObjectKey(ownerID, postID)
		if err != nil {
			u.rollback(ctx, keys)
			return nil, err
		}
		if err := u.store.Put(ctx, key, img.Data, ContentTypeWebP); err != nil {
			u.rollback(ctx, keys)
			return nil, fmt.Errorf("upload poster %d: %w", i, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// Remove deletes stored posters.
func (u *Uploader) Remove(ctx context.Context, keys []string) error {
	if err := u.store.Remove(ctx, keys...); err != nil {
		return fmt.Errorf("remove posters: %w", err)
	}
	return nil
}

func (u *Uploader) rollback(ctx context.Context, keys []string) {
	if len(keys) == 0 {
		return
	}
	if err := u.store.Remove(context.WithoutCancel(ctx), keys...); err != nil {
		u.log.ErrorContext(ctx, "poster rollback failed",
			slog.Any("keys", keys),
			slog.String("error", err.Error()),
		)
	}
}

// ObjectKey builds events/<owner hash>/<postID>/<random>.webp. The owner id
// is hashed so it never appears in a public URL.
func ObjectKey(ownerID, postID string) (string, error) {
	var suffix [4]byte
	if _, err := rand.Read(suffix[:]); err != nil {
		return "", fmt.Errorf("object key: %w", err)
	}
	return fmt.Sprintf("events/%s/%s/%s.webp", OwnerPrefix(ownerID), postID, hex.EncodeToString(suffix[:])), nil
}

// OwnerPrefix returns the first 16 hex chars of sha256(ownerID).
func OwnerPrefix(ownerID string) string {
	sum := sha256.Sum256([]byte(ownerID))
	return hex.EncodeToString(sum[:])[:16]
}
