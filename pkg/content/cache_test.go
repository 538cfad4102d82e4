package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKey(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "file name with extension", url: "https://www.example.com/news/story.html", want: "www_example_com_story.html.html"},
		{name: "port kept in host", url: "http://127.0.0.1:8080/a/b.php", want: "127_0_0_1:8080_b.php.html"},
		{name: "query ignored", url: "https://site.org/x/item.aspx?id=5", want: "site_org_item.aspx.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CacheKey(tt.url))
		})
	}

	t.Run("hash used when no extension", func(t *testing.T) {
		key := CacheKey("https://www.theguardian.com/world/2024/jan/01/some-story")
		assert.True(t, strings.HasPrefix(key, "www_theguardian_com_"))
		assert.True(t, strings.HasSuffix(key, ".html"))
		assert.Len(t, key, len("www_theguardian_com_")+64+len(".html"))
	})

	t.Run("hash used for trailing slash", func(t *testing.T) {
		key := CacheKey("https://example.com/news/")
		assert.Len(t, key, len("example_com_")+64+len(".html"))
	})

	t.Run("deterministic and distinct", func(t *testing.T) {
		a := CacheKey("https://example.com/a")
		assert.Equal(t, a, CacheKey("https://example.com/a"))
		assert.NotEqual(t, a, CacheKey("https://example.com/b"))
	})
}

func TestFileCache(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	c := NewFileCache(dir)

	_, ok, err := c.Get("missing.html")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put("key.html", "<p>body</p>\n"))
	got, ok, err := c.Get("key.html")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "<p>body</p>\n", got)

	// empty body is a valid entry
	require.NoError(t, c.Put("empty.html", ""))
	got, ok, err = c.Get("empty.html")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)

	require.NoError(t, c.Put("key.html", "<p>new</p>\n"))
	data, err := os.ReadFile(filepath.Join(dir, "key.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>new</p>\n", string(data))
}
