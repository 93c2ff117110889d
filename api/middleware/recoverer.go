package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/angelmondragon/salesdash-backend/api/responses"
	pkgerrors "github.com/angelmondragon/salesdash-backend/pkg/errors"
	"github.com/angelmondragon/salesdash-backend/pkg/logger"
)

// Recoverer turns a handler panic into an INTERNAL_ERROR envelope.
// http.ErrAbortHandler is re-raised so net/http can drop the connection.
func Recoverer(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				ctx := r.Context()
				if logg != nil {
					ctx = logg.WithFields(ctx, map[string]any{
						"panic":       fmt.Sprint(rec),
						"panic_stack": string(debug.Stack()),
						"path":        r.URL.Path,
					})
					logg.Warn(ctx, "panic.recovered")
				}
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, fmt.Sprintf("panic: %v", rec)))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
