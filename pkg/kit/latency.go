package kit

import (
	"math/rand"
	"net/http"
	"time"
)

// Latency injects a jittered delay in [min, max] before the handler
// runs, standing in for the upstream feeds this demo does not have.
// Cancelling the request skips the handler.
func Latency(min, max time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := min
			if max > min {
				d += time.Duration(rand.Int63n(int64(max - min + 1)))
			}

			t := time.NewTimer(d)
			defer t.Stop()
			select {
			case <-t.C:
			case <-r.Context().Done():
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
