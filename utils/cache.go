// utils/cache.go
package utils

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

// Responses are cached per request URI and flushed wholesale after every
// known mutation, so readers never see state older than the last write
// they were told about.
var responseCache = cache.New(time.Minute, 5*time.Minute)

type cachedResponse struct {
	status int
	header http.Header
	body   []byte
}

type bodyCacheWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyCacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w bodyCacheWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CacheResponses serves repeated GETs of the same URI from memory.
func CacheResponses(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.RequestURI
		if resp, found := responseCache.Get(key); found {
			cached := resp.(cachedResponse)
			for k, v := range cached.header {
				c.Writer.Header()[k] = v
			}
			c.Writer.WriteHeader(cached.status)
			c.Writer.Write(cached.body)
			c.Abort()
			return
		}

		bcw := &bodyCacheWriter{body: bytes.NewBuffer(nil), ResponseWriter: c.Writer}
		c.Writer = bcw

		c.Next()

		// Only cache successful responses
		if bcw.Status() >= 200 && bcw.Status() < 300 {
			responseCache.Set(key, cachedResponse{
				status: bcw.Status(),
				header: bcw.Header().Clone(),
				body:   bcw.body.Bytes(),
			}, ttl)
		}
	}
}

// FlushResponseCache drops every cached response. Called after mutations.
func FlushResponseCache() {
	responseCache.Flush()
}
