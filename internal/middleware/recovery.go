package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"studio-backend/pkg/utils"
)

// PanicRecovery turns a handler panic into a 500 instead of dropping the
// connection. Outermost in the chain so it covers the other middleware too.
func PanicRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("[Recovery] panic on %s %s: %v\n%s", r.Method, r.URL.Path, err, debug.Stack())
				utils.Error(w, http.StatusInternalServerError, "Internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
