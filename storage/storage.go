// Package storage holds the object-storage client for game assets. Every game
// owns a namespace of three keys: its archive, banner, and icon.
package storage

import (
	"context"
	"io"
)

// ObjectStore is the minimal surface the upload pipeline needs. Implemented by
// Client; tests substitute fakes.
type ObjectStore interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// ArchiveKey returns the object key of a game's zip archive.
func ArchiveKey(id string) string {
	return id + "/" + id + ".zip"
}

// BannerKey returns the object key of a game's banner image.
func BannerKey(id string) string {
	return id + "/banner"
}

// IconKey returns the object key of a game's icon image.
func IconKey(id string) string {
	return id + "/icon"
}

// Keys returns all object keys owned by a game. These exist iff the game row
// exists (eventually; see the pipeline ordering in services).
func Keys(id string) []string {
	return []string{ArchiveKey(id), BannerKey(id), IconKey(id)}
}
