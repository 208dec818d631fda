package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// writeErrorJSON writes the API's uniform error envelope. Middleware sits
// below the handlers package, so it renders the envelope itself rather than
// importing the handlers' response helpers.
func writeErrorJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"success":false,"error":%d,"message":%q}`+"\n", status, message)
}

// Recoverer catches panics in downstream handlers, logs the stack trace,
// and answers with a 500 error envelope instead of crashing the server.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered",
					"error", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				writeErrorJSON(w, http.StatusInternalServerError, "internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
