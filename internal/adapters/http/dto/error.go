package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/watchstore-service/internal/domain"
)

// problemType is used for every problem: the HTTP status title is the whole
// classification (RFC 9457 section 4.2.1).
const problemType = "about:blank"

// internalDetail replaces the detail of 500 responses, whose errors may
// carry SQL or network text.
const internalDetail = "an unexpected error occurred"

// ErrorResponse is an RFC 9457 problem details body.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one field violation. Location is "body.<field>" for
// request body fields, "path.<param>" for URL parameters and plain "body"
// when the body as a whole could not be read.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// NewProblem builds a problem for status with the request URI as instance.
func NewProblem(r *http.Request, status int, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     problemType,
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

// NewErrorResponse classifies err by its domain sentinel.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := statusFor(err)
	detail := err.Error()
	if status == http.StatusInternalServerError {
		detail = internalDetail
	}

	resp := NewProblem(r, status, detail)
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse renders err as a problem response.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	WriteProblem(w, r, NewErrorResponse(r, err))
}

// WriteProblem writes resp as application/problem+json with its status code.
// 401 responses carry a Bearer challenge.
func WriteProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	h := w.Header()
	h.Set("Content-Type", "application/problem+json")
	h.Set("X-Content-Type-Options", "nosniff")
	if resp.Status == http.StatusUnauthorized {
		h.Set("WWW-Authenticate", `Bearer realm="watchstore"`)
	}
	w.WriteHeader(resp.Status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.ErrorContext(r.Context(), "encoding problem response",
			slog.Int("status", resp.Status),
			slog.Any("error", err),
		)
	}
}

// statusBySentinel maps domain sentinels to HTTP status codes. For errors
// wrapping more than one sentinel the first match wins.
var statusBySentinel = []struct {
	sentinel error
	status   int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
}

func statusFor(err error) int {
	for _, m := range statusBySentinel {
		if errors.Is(err, m.sentinel) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// fieldDetails converts validation fields to details sorted by location.
// Keys that already name a location ("body", "path.x", "query.x") are kept.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		loc := field
		if field != "body" && !strings.HasPrefix(field, "path.") && !strings.HasPrefix(field, "query.") {
			loc = "body." + field
		}
		details = append(details, ErrorDetail{Location: loc, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return strings.Compare(a.Location, b.Location)
	})
	return details
}
