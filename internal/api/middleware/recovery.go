package middleware

import (
	"log/slog"
	"net/http"

	"github.com/panda-project/panda/internal/api/response"
)

// Recovery is middleware that recovers from panics and returns a 500 error.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			requestID := GetRequestID(r.Context())
			slog.Error("panic recovered",
				"error", rec,
				"method", r.Method,
				"path", r.URL.Path,
				"requestId", requestID,
			)
			response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", requestID)
		}()
		next.ServeHTTP(w, r)
	})
}
