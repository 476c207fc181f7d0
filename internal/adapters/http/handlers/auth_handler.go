package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/watchstore-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/watchstore-service/internal/ports"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	svc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler with the given service port.
func NewAuthHandler(svc ports.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !bind(w, r, &req) {
		return
	}

	tok, err := h.svc.Login(r.Context(), req.EmailID, req.Password)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, dto.ToTokenResponse(tok))
}

// Logout handles POST /api/v1/auth/logout. The presented token is revoked
// until it expires.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	if err := h.svc.Logout(r.Context(), p); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
