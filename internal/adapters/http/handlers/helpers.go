package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/watchstore-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/watchstore-service/internal/domain"
	"github.com/jsamuelsen11/watchstore-service/internal/domain/user"
	"github.com/jsamuelsen11/watchstore-service/internal/platform/logging"
)

// maxRequestBody caps every JSON request body at 64 KiB. Watch and address
// payloads are far smaller.
const maxRequestBody = 64 << 10

// pathID reads a positive database id from the named chi URL parameter.
// Anything else is reported as a field error keyed by the parameter name.
func pathID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{
			Fields: map[string]string{"path." + param: "must be a positive integer"},
		}
	}
	return id, nil
}

// requirePrincipal returns the authenticated caller, or writes a 401 and
// reports false when the route was mounted without Authenticate.
func requirePrincipal(w http.ResponseWriter, r *http.Request) (user.Principal, bool) {
	p, ok := user.PrincipalFromContext(r.Context())
	if !ok {
		dto.WriteErrorResponse(w, r, fmt.Errorf("%w: missing credentials", domain.ErrUnauthorized))
		return user.Principal{}, false
	}
	return p, true
}

// writeJSON encodes body with the given status. Encoding failures happen
// after the header is sent, so they are only logged.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response body",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}

// bodyError converts a JSON decode failure into a field error on "body".
func bodyError(err error) error {
	var (
		tooLarge *http.MaxBytesError
		syntax   *json.SyntaxError
		typeErr  *json.UnmarshalTypeError
	)
	msg := "invalid JSON"
	switch {
	case errors.Is(err, io.EOF):
		msg = "must not be empty"
	case errors.As(err, &tooLarge):
		msg = fmt.Sprintf("must not exceed %d bytes", tooLarge.Limit)
	case errors.As(err, &syntax):
		msg = fmt.Sprintf("malformed JSON at offset %d", syntax.Offset)
	case errors.As(err, &typeErr) && typeErr.Field != "":
		msg = fmt.Sprintf("field %q has the wrong type", typeErr.Field)
	}
	return &domain.ValidationError{Fields: map[string]string{"body": msg}}
}

// readJSON decodes exactly one JSON value from the request body into dst.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := dec.Decode(dst); err != nil {
		return bodyError(err)
	}
	if dec.More() {
		return &domain.ValidationError{Fields: map[string]string{"body": "must contain a single JSON value"}}
	}
	return nil
}

type validatable interface {
	Validate() error
}

// bind reads the body into dst and runs its validator. On failure the
// problem response has already been written and bind returns false.
func bind[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	err := readJSON(w, r, dst)
	if err == nil {
		err = dst.Validate()
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
