// Package web serves generated identicons over HTTP.
package web

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/gopix/identicon"
)

const (
	defaultSizeLimit    = 1024
	minSize             = 16
	defaultCacheEntries = 512
	cacheMaxAge         = 3600 // seconds
)

// Server renders and caches identicons for HTTP delivery.
type Server struct {
	log       *slog.Logger
	sizeLimit int
	cache     *cache
}

// ServerOption configures a Server during creation.
type ServerOption func(*Server)

// WithLogger sets a logger for this server only. Without it the server
// shares the package-level logger configured via identicon.SetLogger.
func WithLogger(l *slog.Logger) ServerOption {
	return func(s *Server) {
		s.log = l
	}
}

// WithSizeLimit caps the rendered icon size. It bounds both the ?s query
// parameter and the default size used when the query is absent.
func WithSizeLimit(px int) ServerOption {
	return func(s *Server) {
		if px >= minSize {
			s.sizeLimit = px
		}
	}
}

// WithCacheEntries bounds the number of encoded icons kept in memory.
func WithCacheEntries(n int) ServerOption {
	return func(s *Server) {
		if n > 0 {
			s.cache = newCache(n, s.render)
		}
	}
}

// NewServer creates a Server.
func NewServer(opts ...ServerOption) *Server {
	s := &Server{sizeLimit: defaultSizeLimit}
	s.cache = newCache(defaultCacheEntries, s.render)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// logger returns the server logger, falling back to the shared package
// logger so later identicon.SetLogger calls still take effect.
func (s *Server) logger() *slog.Logger {
	if s.log != nil {
		return s.log
	}
	return identicon.Logger()
}

// Handler returns the HTTP routing for the server.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/avatar/{name}", s.serveAvatar).Methods(http.MethodGet)
	return r
}

func (s *Server) serveAvatar(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(mux.Vars(r)["name"], ".png")

	size := identicon.CanvasSize
	if q := r.URL.Query().Get("s"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			http.Error(w, "invalid size", http.StatusBadRequest)
			return
		}
		size = n
	}
	// The operator's cap applies to the default size as well.
	size = clamp(size, minSize, s.sizeLimit)

	b, err := s.cache.get(cacheKey(name, size))
	if err != nil {
		s.logger().Warn("avatar render failed", "name", name, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", cacheMaxAge))
	_, _ = w.Write(b)
}

// render fills cache misses with a freshly encoded icon.
func (s *Server) render(key string) ([]byte, error) {
	size, name, err := splitKey(key)
	if err != nil {
		return nil, err
	}

	pm := identicon.Generate(name, identicon.WithSize(size))
	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		return nil, err
	}

	s.logger().Debug("avatar rendered", "name", name, "size", size, "bytes", buf.Len())
	return buf.Bytes(), nil
}

// cacheKey packs size and name into one cache key. The size prefix cannot
// collide with the name because names never start before the separator.
func cacheKey(name string, size int) string {
	return strconv.Itoa(size) + "/" + name
}

func splitKey(key string) (size int, name string, err error) {
	sizeStr, name, ok := strings.Cut(key, "/")
	if !ok {
		return 0, "", fmt.Errorf("malformed cache key %q", key)
	}
	size, err = strconv.Atoi(sizeStr)
	if err != nil {
		return 0, "", fmt.Errorf("malformed cache key %q: %w", key, err)
	}
	return size, name, nil
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
