package imagecache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	fetchTimeout = 15 * time.Second
	maxRedirects = 5
	userAgent    = "Mozilla/5.0 (compatible; ImageProxy/1.0)"
)

// Meta is the sidecar metadata stored next to each cached payload.
type Meta struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	CachedAt    int64  `json:"cached_at"`
}

// Result is a served image, either from cache or freshly fetched.
type Result struct {
	Body        []byte
	ContentType string
	Hit         bool
}

// UpstreamError reports a failed fetch from the external image host.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Detail)
	}
	return "upstream fetch failed: " + e.Detail
}

// Cache is a content-addressed local image cache. Entries are keyed by
// a hash of the source URL and expire passively after the TTL; stale
// bytes stay on disk until the next successful fetch overwrites them.
type Cache struct {
	dir          string
	ttl          time.Duration
	allowedHosts []string
	client       *http.Client
	group        singleflight.Group
	log          *zap.Logger
}

// New creates a cache rooted at dir. The directory is created if missing.
func New(dir string, ttl time.Duration, allowedHosts []string, log *zap.Logger) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	client := &http.Client{
		Timeout: fetchTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}

	return &Cache{
		dir:          dir,
		ttl:          ttl,
		allowedHosts: allowedHosts,
		client:       client,
		log:          log,
	}, nil
}

// HostAllowed reports whether the URL's host exactly equals, or is a
// subdomain of, one of the trusted image hosts.
func (c *Cache) HostAllowed(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}
	host := u.Hostname()
	for _, domain := range c.allowedHosts {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

// Key returns the cache key for a source URL.
func Key(rawURL string) string {
	sum := md5.Sum([]byte(rawURL))
	return hex.EncodeToString(sum[:])
}

// Fetch returns the image for rawURL, from cache when a fresh entry
// exists, otherwise from the external host. Concurrent misses for the
// same URL share a single in-flight download.
func (c *Cache) Fetch(ctx context.Context, rawURL string) (*Result, error) {
	key := Key(rawURL)

	if res := c.readCached(key); res != nil {
		return res, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// A follower queued behind the leader re-checks the cache so
		// only one download happens per expiry window.
		if res := c.readCached(key); res != nil {
			return res, nil
		}
		return c.download(ctx, rawURL, key)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Result), nil
}

// readCached returns the cached entry for key, or nil when the entry is
// absent, expired, or only partially written. Partial state is a miss,
// never an error.
func (c *Cache) readCached(key string) *Result {
	metaBytes, err := os.ReadFile(c.metaPath(key))
	if err != nil {
		return nil
	}

	var meta Meta
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return nil
	}

	if time.Since(time.Unix(meta.CachedAt, 0)) >= c.ttl {
		return nil
	}

	body, err := os.ReadFile(c.payloadPath(key))
	if err != nil || len(body) == 0 {
		return nil
	}

	return &Result{Body: body, ContentType: meta.ContentType, Hit: true}
}

func (c *Cache) download(ctx context.Context, rawURL, key string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &UpstreamError{Detail: err.Error()}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "image/*,*/*;q=0.8")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &UpstreamError{Detail: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Detail: "failed to fetch image"}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Detail: err.Error()}
	}
	if len(body) == 0 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Detail: "empty response body"}
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Detail: "response is not an image: " + contentType}
	}

	meta := Meta{
		URL:         rawURL,
		ContentType: contentType,
		Size:        int64(len(body)),
		CachedAt:    time.Now().Unix(),
	}

	if err := c.persist(key, body, meta); err != nil {
		// Serving the fetched bytes still works; only caching failed.
		c.log.Warn("failed to persist cache entry", zap.String("url", rawURL), zap.Error(err))
	}

	return &Result{Body: body, ContentType: contentType, Hit: false}, nil
}

// persist writes payload then metadata, each via a temp file and atomic
// rename, so a reader never observes a half-written pair: the metadata
// file only appears after the payload is complete.
func (c *Cache) persist(key string, body []byte, meta Meta) error {
	if err := writeAtomic(c.payloadPath(key), body); err != nil {
		return err
	}

	metaBytes, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return writeAtomic(c.metaPath(key), metaBytes)
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return nil
}

func (c *Cache) payloadPath(key string) string {
	return filepath.Join(c.dir, key)
}

func (c *Cache) metaPath(key string) string {
	return filepath.Join(c.dir, key+".meta")
}

// AsUpstreamError unwraps err as an UpstreamError, if it is one.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
