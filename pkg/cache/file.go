package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileCache stores rendered artifacts on disk, one JSON envelope per
// entry under a two-character fan-out directory. It backs the CLI's
// ~/.cache/mindwheel directory.
type FileCache struct {
	root string
}

// NewFileCache opens (creating if needed) a file cache rooted at root.
func NewFileCache(root string) (*FileCache, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &FileCache{root: root}, nil
}

// envelope wraps an artifact with its expiry. Rendered output is small,
// so the payload lives inline rather than in a sidecar file.
type envelope struct {
	Artifact  []byte    `json:"artifact"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}

	var e envelope
	if err := json.Unmarshal(raw, &e); err != nil {
		// Unreadable entries are evicted, not surfaced.
		_ = os.Remove(path)
		return nil, false, nil
	}
	if !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return e.Artifact, true, nil
}

func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	e := envelope{Artifact: data}
	if ttl > 0 {
		e.ExpiresAt = time.Now().Add(ttl)
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (c *FileCache) Close() error { return nil }

// path resolves a key to its entry file. Artifact keys already end in a
// SHA-256 digest, which is reused as the filename; anything else is
// hashed first. The first two digest characters fan entries out across
// subdirectories.
func (c *FileCache) path(key string) string {
	digest := key
	if i := strings.LastIndexByte(key, ':'); i >= 0 {
		digest = key[i+1:]
	}
	if !isDigest(digest) {
		digest = Hash([]byte(key))
	}
	return filepath.Join(c.root, digest[:2], digest+".json")
}

var _ Cache = (*FileCache)(nil)
