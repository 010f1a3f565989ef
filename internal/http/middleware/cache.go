package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aduvalf/harmonie-site/internal/cache"
	logctx "github.com/aduvalf/harmonie-site/internal/pkg/log"
)

var (
	pageCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "harmonie",
		Subsystem: "page_cache",
		Name:      "hits_total",
		Help:      "Total number of public page responses served from cache",
	})
	pageCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "harmonie",
		Subsystem: "page_cache",
		Name:      "misses_total",
		Help:      "Total number of public page requests rendered fresh",
	})
)

// bufferWriter дублирует ответ в память для последующего сохранения в кеш.
type bufferWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *bufferWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bufferWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	w.buf.Write(p)
	return w.ResponseWriter.Write(p)
}

// PageCache отдаёт закешированные публичные страницы и наполняет кеш на промахах.
// Кешируются только GET-запросы кешируемых путей (cache.CacheablePath) со статусом 200.
// Недоступность Redis не фатальна: промах деградирует до обычного рендера (fail-open).
func PageCache(pc cache.PageCache) Middleware {
	return func(next http.Handler) http.Handler {
		if pc == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cache.CacheablePath(r.Method, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			page, err := pc.Get(r.Context(), r.URL.Path)
			if err == nil {
				pageCacheHits.Inc()
				for k, vv := range page.Header {
					for _, v := range vv {
						w.Header().Add(k, v)
					}
				}
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(page.Status)
				_, _ = w.Write(page.Body)
				return
			}
			if !errors.Is(err, cache.ErrMiss) {
				logctx.From(r.Context()).Warn("page_cache_get_failed",
					slog.String("path", r.URL.Path),
					slog.String("err", err.Error()))
			}
			pageCacheMisses.Inc()

			bw := &bufferWriter{ResponseWriter: w}
			w.Header().Set("X-Cache", "MISS")
			next.ServeHTTP(bw, r)

			// Ошибочные ответы в кеш не попадают.
			if bw.status != http.StatusOK {
				return
			}

			hdr := http.Header{}
			if ct := bw.Header().Get("Content-Type"); ct != "" {
				hdr.Set("Content-Type", ct)
			}

			err = pc.Set(r.Context(), r.URL.Path, &cache.Page{
				Status: bw.status,
				Header: hdr,
				Body:   bw.buf.Bytes(),
			})
			if err != nil {
				logctx.From(r.Context()).Warn("page_cache_set_failed",
					slog.String("path", r.URL.Path),
					slog.String("err", err.Error()))
			}
		})
	}
}
