package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"assertfmt/internal/report"
)

// Current schema version - increment when cachePayload format changes
const renderCacheSchemaVersion uint16 = 1

// Digest is a sha256 cache key.
type Digest [sha256.Size]byte

// RenderCache хранит готовые отчёты на диске, ключ: хеш записи и опций.
// Thread-safe for concurrent access.
type RenderCache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema uint16
	Output string
}

// OpenRenderCache opens the cache under $XDG_CACHE_HOME/<app>.
func OpenRenderCache(app string) (*RenderCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewRenderCache(filepath.Join(base, app))
}

func NewRenderCache(dir string) (*RenderCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &RenderCache{dir: dir}, nil
}

// cacheKey is everything that changes the rendered bytes.
type cacheKey struct {
	Schema    uint16
	Check     *report.Check
	Scheme    string
	Width     int
	PathMode  string
	Windows   bool
	Separator string
	MaxDepth  int
}

// Key hashes c together with the renderer options.
func Key(c *report.Check, opts report.Options) (Digest, error) {
	data, err := msgpack.Marshal(&cacheKey{
		Schema:    renderCacheSchemaVersion,
		Check:     c,
		Scheme:    opts.Scheme.Name,
		Width:     opts.Width,
		PathMode:  string(opts.PathMode),
		Windows:   opts.PathOptions.Windows,
		Separator: opts.Separator,
		MaxDepth:  opts.MaxDepth,
	})
	if err != nil {
		return Digest{}, fmt.Errorf("cache key: %w", err)
	}
	return sha256.Sum256(data), nil
}

func (c *RenderCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог по первым двум символам, чтобы не раздувать один каталог
	return filepath.Join(c.dir, "reports", hexKey[:2], hexKey+".mp")
}

// Put writes output atomically.
func (c *RenderCache) Put(key Digest, output string) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(&cachePayload{Schema: renderCacheSchemaVersion, Output: output}); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get returns the cached output. Entries of another schema are misses.
func (c *RenderCache) Get(key Digest) (string, bool, error) {
	if c == nil {
		return "", false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	defer f.Close()
	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return "", false, err
	}
	if payload.Schema != renderCacheSchemaVersion {
		return "", false, nil
	}
	return payload.Output, true, nil
}

// DropAll invalidates the cache.
func (c *RenderCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
