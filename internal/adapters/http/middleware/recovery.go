package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/watchstore-service/internal/adapters/http/dto"
)

// errPanic is what the client sees for a recovered panic; the panic value
// and stack only go to the log.
var errPanic = errors.New("panic in request handler")

// Recovery returns middleware that turns a handler panic into an RFC 9457
// 500 response and an ERROR log entry with the stack. Once the handler has
// started writing, only the log entry is emitted. http.ErrAbortHandler is
// re-panicked so net/http can abort the connection quietly.
//
// Recovery runs before RequestID, so the request id is read back from the
// response header RequestID sets.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", rw.Header().Get(headerRequestID)),
				)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errPanic)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
