package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"

	"github.com/cotishq/cloudnest/pkg/internal/storage/kv"
)

const (
	defaultCacheMaxBodyBytes = 1 << 20
	defaultCacheTTL          = 30 * time.Second
	defaultKeyBuilderGrow    = 64
)

// CacheConfig configures the response cache middleware.
type CacheConfig struct {
	Store *kv.Client    // required: the KV backend
	TTL   time.Duration // entry lifetime, defaultCacheTTL when zero

	Methods     []string // cacheable methods (default GET, HEAD)
	StatusCodes []int    // cacheable statuses (default 200)

	VaryHeaders  []string // headers folded into the key
	BypassHeader string   // presence of this request header skips the cache
	MaxBodyBytes int      // largest cacheable body; bigger responses pass through
}

// CacheMiddleware caches whole responses in the KV store, keyed by method,
// path, query and the configured vary headers. Serves ETag/If-None-Match
// revalidation and marks responses with X-Cache. Cache failures never affect
// the main path. Used on the public share routes, where the same token is
// fetched repeatedly.
func CacheMiddleware(cfg CacheConfig) gin.HandlerFunc {
	if cfg.Store == nil {
		panic("CacheMiddleware: Store cannot be nil")
	}

	if cfg.TTL <= 0 {
		cfg.TTL = defaultCacheTTL
	}

	if len(cfg.Methods) == 0 {
		cfg.Methods = []string{http.MethodGet, http.MethodHead}
	}

	if len(cfg.StatusCodes) == 0 {
		cfg.StatusCodes = []int{http.StatusOK}
	}

	if cfg.BypassHeader == "" {
		cfg.BypassHeader = "X-Cache-Bypass"
	}

	if cfg.MaxBodyBytes == 0 {
		cfg.MaxBodyBytes = defaultCacheMaxBodyBytes
	}

	methodSet := make(map[string]struct{}, len(cfg.Methods))
	for _, m := range cfg.Methods {
		methodSet[strings.ToUpper(m)] = struct{}{}
	}

	statusSet := make(map[int]struct{}, len(cfg.StatusCodes))
	for _, s := range cfg.StatusCodes {
		statusSet[s] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := methodSet[c.Request.Method]; !ok || c.GetHeader(cfg.BypassHeader) != "" {
			c.Next()
			return
		}

		key := buildCacheKey(c, cfg.VaryHeaders)
		if serveFromCache(c, cfg, key) {
			return
		}

		bw := &bodyCaptureWriter{ResponseWriter: c.Writer, max: cfg.MaxBodyBytes}
		c.Writer = bw
		c.Next()
		storeResponse(c, cfg, key, bw, statusSet)
	}
}

type responseCacheEntry struct {
	Status   int               `json:"s"`
	Header   map[string]string `json:"h,omitempty"`
	Body     []byte            `json:"b,omitempty"`
	ETag     string            `json:"e,omitempty"`
	StoredAt int64             `json:"t"`
}

func buildCacheKey(c *gin.Context, vary []string) string {
	var b strings.Builder
	b.Grow(defaultKeyBuilderGrow)

	b.WriteString(c.Request.Method)
	b.WriteByte(':')

	full := c.FullPath()
	if full == "" {
		full = c.Request.URL.Path
	}

	b.WriteString(full)
	b.WriteByte('|')
	b.WriteString(c.Request.URL.Path)

	if q := c.Request.URL.Query(); len(q) > 0 {
		keys := make([]string, 0, len(q))
		for k := range q {
			keys = append(keys, k)
		}

		sort.Strings(keys)
		b.WriteByte('?')

		for i, k := range keys {
			if i > 0 {
				b.WriteByte('&')
			}

			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(strings.Join(q[k], ","))
		}
	}

	if len(vary) > 0 {
		sort.Strings(vary)
		b.WriteString("|hv=")

		for i, h := range vary {
			if i > 0 {
				b.WriteByte('&')
			}

			b.WriteString(h)
			b.WriteByte('=')
			b.WriteString(c.GetHeader(h))
		}
	}

	return fmt.Sprintf("rc:%x", xxhash.Sum64String(b.String()))
}

type bodyCaptureWriter struct {
	gin.ResponseWriter

	buf       bytes.Buffer
	max       int
	truncated bool
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	if w.truncated {
		return w.ResponseWriter.Write(b)
	}

	remain := w.max - w.buf.Len()
	if remain <= 0 {
		w.truncated = true
		return w.ResponseWriter.Write(b)
	}

	if len(b) > remain {
		w.buf.Write(b[:remain])
		w.truncated = true
	} else {
		w.buf.Write(b)
	}

	return w.ResponseWriter.Write(b)
}

func serveFromCache(c *gin.Context, cfg CacheConfig, key string) bool {
	raw, err := cfg.Store.Get(c.Request.Context(), key)
	if err != nil {
		return false
	}

	var entry responseCacheEntry
	if err := sonic.Unmarshal(raw, &entry); err != nil {
		return false
	}

	h := c.Writer.Header()
	for k, v := range entry.Header {
		h.Set(k, v)
	}

	if entry.ETag != "" {
		h.Set("ETag", entry.ETag)
	}

	age := time.Since(time.Unix(0, entry.StoredAt)).Seconds()
	h.Set("Age", fmt.Sprintf("%.0f", age))
	h.Set("X-Cache", "HIT")

	if entry.ETag != "" && c.GetHeader("If-None-Match") == entry.ETag {
		c.Status(http.StatusNotModified)
		c.Abort()

		return true
	}

	c.Status(entry.Status)

	if c.Request.Method != http.MethodHead {
		_, _ = c.Writer.Write(entry.Body)
	}

	c.Abort()

	return true
}

func storeResponse(c *gin.Context, cfg CacheConfig, key string, bw *bodyCaptureWriter, statusSet map[int]struct{}) {
	status := c.Writer.Status()
	if _, ok := statusSet[status]; !ok || bw.truncated {
		return
	}

	body := bw.buf.Bytes()
	hdr := make(map[string]string)

	for k, v := range c.Writer.Header() {
		if len(v) > 0 {
			hdr[k] = v[0]
		}
	}

	etag := c.Writer.Header().Get("ETag")
	if etag == "" {
		etag = fmt.Sprintf("\"%x\"", xxhash.Sum64(body))
		hdr["ETag"] = etag
	}

	entry := responseCacheEntry{
		Status:   status,
		Header:   hdr,
		Body:     body,
		ETag:     etag,
		StoredAt: time.Now().UnixNano(),
	}

	raw, err := sonic.Marshal(entry)
	if err != nil {
		return
	}

	_ = cfg.Store.Set(c.Request.Context(), key, raw, cfg.TTL)

	c.Writer.Header().Set("X-Cache", "MISS")
}
