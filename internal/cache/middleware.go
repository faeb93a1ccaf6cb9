package cache

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Policy describes how one route is cached: how long an entry is fresh,
// how long after that it may still be served stale while a background
// refresh runs, and which tags the cached response carries.
type Policy struct {
	Fresh time.Duration
	Stale time.Duration
	Tags  func(r *http.Request) []string
}

func (p Policy) header() string {
	return fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate=%d",
		int(p.Fresh.Seconds()), int(p.Stale.Seconds()))
}

// Middleware caches successful GET responses per request URL.
type Middleware struct {
	store Store
	log   *zap.Logger
	// Observe reports each lookup result: "hit", "stale", "miss" or
	// "bypass". Optional.
	observe func(result string)

	mu       sync.Mutex
	inflight map[string]bool

	now func() time.Time
}

func NewMiddleware(store Store, log *zap.Logger, observe func(result string)) *Middleware {
	return &Middleware{
		store:    store,
		log:      log,
		observe:  observe,
		inflight: make(map[string]bool),
		now:      time.Now,
	}
}

func (m *Middleware) report(result string) {
	if m.observe != nil {
		m.observe(result)
	}
}

func (m *Middleware) Wrap(p Policy, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			m.report("bypass")
			next.ServeHTTP(w, r)
			return
		}

		key := r.URL.RequestURI()

		e, ok, err := m.store.Get(r.Context(), key)
		if err != nil {
			m.log.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		if ok {
			age := m.now().Sub(e.StoredAt)
			switch {
			case age <= p.Fresh:
				m.report("hit")
				m.serve(w, p, e, "HIT")
				return
			case age <= p.Fresh+p.Stale:
				m.report("stale")
				m.refresh(p, next, r, key)
				m.serve(w, p, e, "STALE")
				return
			}
		}

		m.report("miss")
		rec := newRecorder(w)
		rec.Header().Set("Cache-Control", p.header())
		rec.Header().Set("X-Cache", "MISS")
		next.ServeHTTP(rec, r)
		m.record(r.Context(), p, r, key, rec)
	})
}

func (m *Middleware) serve(w http.ResponseWriter, p Policy, e Entry, state string) {
	w.Header().Set("Content-Type", e.ContentType)
	w.Header().Set("Cache-Control", p.header())
	w.Header().Set("X-Cache", state)
	w.WriteHeader(e.Status)
	_, _ = w.Write(e.Body)
}

func (m *Middleware) record(ctx context.Context, p Policy, r *http.Request, key string, rec *recorder) {
	if rec.status != http.StatusOK {
		return
	}

	e := Entry{
		Status:      rec.status,
		ContentType: rec.Header().Get("Content-Type"),
		Body:        rec.body.Bytes(),
		Tags:        p.Tags(r),
		StoredAt:    m.now(),
	}
	if err := m.store.Set(ctx, key, e, p.Fresh+p.Stale); err != nil {
		m.log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// refresh repopulates a stale entry in the background, replaying the
// request against the wrapped handler. At most one refresh per key runs
// at a time. The original request's chi route context is pooled and gets
// recycled when the request finishes, so its URL params are copied into
// a fresh one before detaching.
func (m *Middleware) refresh(p Policy, next http.Handler, r *http.Request, key string) {
	m.mu.Lock()
	if m.inflight[key] {
		m.mu.Unlock()
		return
	}
	m.inflight[key] = true
	m.mu.Unlock()

	rctx := chi.NewRouteContext()
	if old := chi.RouteContext(r.Context()); old != nil {
		for i, k := range old.URLParams.Keys {
			rctx.URLParams.Add(k, old.URLParams.Values[i])
		}
	}
	req := r.Clone(context.WithValue(context.Background(), chi.RouteCtxKey, rctx))

	go func() {
		defer func() {
			m.mu.Lock()
			delete(m.inflight, key)
			m.mu.Unlock()
		}()

		rec := newRecorder(nil)
		next.ServeHTTP(rec, req)
		m.record(context.Background(), p, req, key, rec)
	}()
}

type recorder struct {
	w      http.ResponseWriter
	header http.Header
	status int
	body   bytes.Buffer
}

func newRecorder(w http.ResponseWriter) *recorder {
	rec := &recorder{w: w, status: http.StatusOK}
	if w == nil {
		rec.header = make(http.Header)
	}
	return rec
}

func (r *recorder) Header() http.Header {
	if r.w != nil {
		return r.w.Header()
	}
	return r.header
}

func (r *recorder) WriteHeader(code int) {
	r.status = code
	if r.w != nil {
		r.w.WriteHeader(code)
	}
}

func (r *recorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	if r.w != nil {
		return r.w.Write(b)
	}
	return len(b), nil
}
