package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"
)

// ActorHeader carries the authenticated caller's user ID, set by the edge
// proxy after it has verified the session.
const ActorHeader = "X-Actor-ID"

type contextKey string

const actorKey contextKey = "actor"

// ActorID returns the caller's user ID from the request context, or ""
// when the request was not authenticated.
func ActorID(ctx context.Context) string {
	id, _ := ctx.Value(actorKey).(string)
	return id
}

// RequireActor rejects requests without an actor header and stores the
// actor ID in the request context for handlers.
func RequireActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := r.Header.Get(ActorHeader)
		if actor == "" {
			WriteError(w, ErrorParams{
				Code:    http.StatusUnauthorized,
				ErrCode: "unauthenticated",
				Message: "missing " + ActorHeader + " header",
			})
			return
		}
		ctx := context.WithValue(r.Context(), actorKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// respWriter captures the response status for access logging.
type respWriter struct {
	http.ResponseWriter
	status int
}

func (rw *respWriter) WriteHeader(status int) {
	rw.status = status
	rw.ResponseWriter.WriteHeader(status)
}

// Logging logs one line per request after it completes.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &respWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)
			logger.InfoContext(r.Context(), "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rw.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

// Recover converts handler panics into 500 responses instead of killing
// the connection.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.ErrorContext(r.Context(), "handler panic",
						"panic", rec,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)
					WriteError(w, ErrorParams{
						Code:    http.StatusInternalServerError,
						ErrCode: "internal",
						Message: "internal server error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
