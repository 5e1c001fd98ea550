package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"carrental-backend/internal/api/metrics"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/security"
)

type contextKey string

const identityKey contextKey = "caller_identity"

// callerIdentity returns the authenticated identity stored by AuthMiddleware.
func callerIdentity(r *http.Request) domain.Identity {
	id, _ := r.Context().Value(identityKey).(domain.Identity)
	return id
}

// AuthMiddleware validates the bearer token and stores the caller identity
// in the request context. The token's subject is the opaque identity; the
// core never authenticates it further, only compares it.
func AuthMiddleware(tokens security.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, security.ErrInvalidToken)
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, claims.Identity())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SerializeMiddleware runs each API call to completion before the next
// begins. The core is single-writer; this is where that property is
// enforced, not inside the services. The mutex is shared with the snapshot
// job so background reads never interleave with a mutation.
func SerializeMiddleware(mu *sync.Mutex) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			defer mu.Unlock()
			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware records request counts and durations per named route.
func MetricsMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := "unknown"
			if current := mux.CurrentRoute(r); current != nil {
				if name := current.GetName(); name != "" {
					route = name
				}
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r)

			metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
			metrics.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		})
	}
}
