package imagecache

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCache(t *testing.T, ttl time.Duration, hosts []string) *Cache {
	t.Helper()
	c, err := New(t.TempDir(), ttl, hosts, zap.NewNop())
	require.NoError(t, err)
	return c
}

func allowedHostFor(t *testing.T, upstream *httptest.Server) []string {
	t.Helper()
	u, err := url.Parse(upstream.URL)
	require.NoError(t, err)
	return []string{u.Hostname()}
}

func TestFetchMissThenHit(t *testing.T) {
	payload := []byte("\x89PNG fake image bytes")
	var fetches int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fetches, 1)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(payload)
	}))
	defer upstream.Close()

	c := newTestCache(t, 7*24*time.Hour, allowedHostFor(t, upstream))
	imageURL := upstream.URL + "/photo.png"

	first, err := c.Fetch(context.Background(), imageURL)
	require.NoError(t, err)
	assert.False(t, first.Hit)
	assert.Equal(t, payload, first.Body)
	assert.Equal(t, "image/png", first.ContentType)

	// payload and sidecar metadata both persisted
	key := Key(imageURL)
	_, err = os.Stat(filepath.Join(c.dir, key))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(c.dir, key+".meta"))
	require.NoError(t, err)

	second, err := c.Fetch(context.Background(), imageURL)
	require.NoError(t, err)
	assert.True(t, second.Hit)
	assert.Equal(t, first.Body, second.Body)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fetches))
}

func TestFetchExpiredRefetches(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("fresh bytes"))
	}))
	defer upstream.Close()

	c := newTestCache(t, time.Hour, allowedHostFor(t, upstream))
	imageURL := upstream.URL + "/stale.jpg"

	_, err := c.Fetch(context.Background(), imageURL)
	require.NoError(t, err)

	// Age the metadata past the TTL.
	key := Key(imageURL)
	metaPath := filepath.Join(c.dir, key+".meta")
	stale := `{"url":"` + imageURL + `","content_type":"image/jpeg","size":11,"cached_at":1}`
	require.NoError(t, os.WriteFile(metaPath, []byte(stale), 0o644))

	res, err := c.Fetch(context.Background(), imageURL)
	require.NoError(t, err)
	assert.False(t, res.Hit)
}

func TestFetchUpstreamNotFound(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer upstream.Close()

	c := newTestCache(t, time.Hour, allowedHostFor(t, upstream))
	imageURL := upstream.URL + "/missing.png"

	_, err := c.Fetch(context.Background(), imageURL)
	require.Error(t, err)

	ue, ok := AsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ue.StatusCode)

	// Nothing cached on failure.
	entries, err := os.ReadDir(c.dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetchNonImageContentType(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>not an image</html>"))
	}))
	defer upstream.Close()

	c := newTestCache(t, time.Hour, allowedHostFor(t, upstream))

	_, err := c.Fetch(context.Background(), upstream.URL+"/page")
	require.Error(t, err)

	ue, ok := AsUpstreamError(err)
	require.True(t, ok)
	assert.Contains(t, ue.Detail, "not an image")

	entries, err := os.ReadDir(c.dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHostAllowed(t *testing.T) {
	c := newTestCache(t, time.Hour, []string{"drive.google.com", "googleusercontent.com"})

	assert.True(t, c.HostAllowed("https://drive.google.com/uc?id=abc"))
	assert.True(t, c.HostAllowed("https://lh3.googleusercontent.com/img"))
	assert.False(t, c.HostAllowed("https://evil.example.com/img"))
	assert.False(t, c.HostAllowed("https://notdrive.google.com.evil.com/img"))
	assert.False(t, c.HostAllowed("not a url"))
}

func TestConcurrentMissesShareOneDownload(t *testing.T) {
	var fetches int32
	release := make(chan struct{})
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fetches, 1)
		<-release
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("shared bytes"))
	}))
	defer upstream.Close()

	c := newTestCache(t, time.Hour, allowedHostFor(t, upstream))
	imageURL := upstream.URL + "/shared.png"

	var wg sync.WaitGroup
	results := make([]*Result, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := c.Fetch(context.Background(), imageURL)
			if err == nil {
				results[i] = res
			}
		}(i)
	}

	// Let the in-flight requests pile up behind the leader.
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&fetches))
	for _, res := range results {
		require.NotNil(t, res)
		assert.Equal(t, []byte("shared bytes"), res.Body)
	}
}

func TestPartialEntryIsMiss(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("recovered"))
	}))
	defer upstream.Close()

	c := newTestCache(t, time.Hour, allowedHostFor(t, upstream))
	imageURL := upstream.URL + "/partial.png"
	key := Key(imageURL)

	// Metadata without a payload must be treated as a miss, not an error.
	recent := fmt.Sprintf(`{"url":%q,"content_type":"image/png","size":9,"cached_at":%d}`,
		imageURL, time.Now().Unix())
	require.NoError(t, os.WriteFile(filepath.Join(c.dir, key+".meta"), []byte(recent), 0o644))

	res, err := c.Fetch(context.Background(), imageURL)
	require.NoError(t, err)
	assert.False(t, res.Hit)
	assert.Equal(t, []byte("recovered"), res.Body)
}
