package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-health-server/internal/logger"
)

// withRecover turns a panic in a downstream handler into an error for the
// terminal error handler. http.ErrAbortHandler is re-panicked so net/http
// can abort the response as intended.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := trackResponse(w)

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			var err error
			if recErr, ok := rec.(error); ok {
				err = fmt.Errorf("panic: %w", recErr)
			} else {
				err = fmt.Errorf("panic: %v", rec)
			}

			logger.FromRequest(r).Error().
				Str("stack", string(debug.Stack())).
				Msg("recovered from panic")
			h.handleError(tw, r, err)
		}()

		next.ServeHTTP(tw, r)
	})
}
