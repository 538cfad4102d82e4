package content

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// FileCache stores extracted article bodies on disk, one file per URL.
// Entries never expire; remove the directory to force a refresh.
type FileCache struct {
	dir string
}

// NewFileCache makes a cache rooted at dir. The directory is created lazily on first write.
func NewFileCache(dir string) *FileCache {
	return &FileCache{dir: dir}
}

// CacheKey returns the cache file name for an article URL: host with dots replaced by
// underscores, joined with the last path segment, or with a hash of the URL
// when the last segment is empty or has no extension.
func CacheKey(articleURL string) string {
	var host, name string
	if u, err := url.Parse(articleURL); err == nil {
		host = strings.ReplaceAll(u.Host, ".", "_")
		name = u.Path[strings.LastIndex(u.Path, "/")+1:]
	}
	if name == "" || !strings.Contains(name, ".") {
		name = urlHash(articleURL)
	}
	return host + "_" + name + ".html"
}

func urlHash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Get returns cached content for the key. Missing or unreadable entries report false.
func (c *FileCache) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read cache entry %s: %w", key, err)
	}
	return string(data), true, nil
}

// Put writes content for the key, replacing any existing entry
func (c *FileCache) Put(key, content string) error {
	if err := os.MkdirAll(c.dir, 0o750); err != nil {
		return fmt.Errorf("create cache dir %s: %w", c.dir, err)
	}
	if err := os.WriteFile(c.path(key), []byte(content), 0o600); err != nil {
		return fmt.Errorf("write cache entry %s: %w", key, err)
	}
	return nil
}

func (c *FileCache) path(key string) string {
	return filepath.Join(c.dir, key)
}
