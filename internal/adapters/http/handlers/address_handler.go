package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/watchstore-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/watchstore-service/internal/domain/address"
	"github.com/jsamuelsen11/watchstore-service/internal/ports"
)

// AddressHandler handles the authenticated user's address book. The owner
// is always taken from the request principal, never from the body.
type AddressHandler struct {
	svc ports.AddressService
}

// NewAddressHandler creates a new AddressHandler with the given service port.
func NewAddressHandler(svc ports.AddressService) *AddressHandler {
	return &AddressHandler{svc: svc}
}

// Save handles POST /api/v1/addresses.
func (h *AddressHandler) Save(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	a := decodeAddress(w, r)
	if a == nil {
		return
	}

	if _, err := h.svc.Save(r.Context(), p.Email, a); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.MessageResponse{Message: dto.MsgAddressAdded})
}

// List handles GET /api/v1/addresses.
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	addresses, err := h.svc.List(r.Context(), p.Email)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToAddressListResponse(addresses))
}

// Update handles PUT /api/v1/addresses/{addressId}.
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	id, err := pathID(r, "addressId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	a := decodeAddress(w, r)
	if a == nil {
		return
	}

	if _, err := h.svc.Update(r.Context(), p.Email, id, a); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.MessageResponse{Message: dto.MsgAddressUpdated})
}

// Delete handles DELETE /api/v1/addresses/{addressId}.
func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	id, err := pathID(r, "addressId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), p.Email, id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.MessageResponse{Message: dto.MsgAddressDeleted})
}

// decodeAddress decodes and validates an AddressRequest, returning the
// mapped domain Address. Returns nil and writes an error response on failure.
func decodeAddress(w http.ResponseWriter, r *http.Request) *address.Address {
	var req dto.AddressRequest
	if !bind(w, r, &req) {
		return nil
	}
	a, err := mapAddressRequest(&req)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return nil
	}
	return a
}
