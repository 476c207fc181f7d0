package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/watchstore-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/watchstore-service/internal/ports"
)

// WatchHandler serves the public catalog and its admin maintenance endpoints.
type WatchHandler struct {
	svc ports.WatchService
}

// NewWatchHandler creates a new WatchHandler with the given service port.
func NewWatchHandler(svc ports.WatchService) *WatchHandler {
	return &WatchHandler{svc: svc}
}

// ListWatches handles GET /api/v1/watches?brand=&type=&status=.
func (h *WatchHandler) ListWatches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := dto.WatchFilterQuery{
		Brand:  q.Get("brand"),
		Type:   q.Get("type"),
		Status: q.Get("status"),
	}
	if err := filter.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	watches, err := h.svc.ListWatches(r.Context(), mapWatchFilter(&filter))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToWatchListResponse(watches))
}

// GetWatch handles GET /api/v1/watches/{watchId}.
func (h *WatchHandler) GetWatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "watchId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	found, err := h.svc.GetWatch(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToWatchResponse(found))
}

// CreateWatch handles POST /api/v1/watches.
func (h *WatchHandler) CreateWatch(w http.ResponseWriter, r *http.Request) {
	var req dto.WatchRequest
	if !bind(w, r, &req) {
		return
	}

	created, err := h.svc.CreateWatch(r.Context(), mapWatchRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToWatchResponse(created))
}

// UpdateWatch handles PUT /api/v1/watches/{watchId}.
func (h *WatchHandler) UpdateWatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "watchId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.WatchRequest
	if !bind(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateWatch(r.Context(), id, mapWatchRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToWatchResponse(updated))
}

// DeleteWatch handles DELETE /api/v1/watches/{watchId}.
func (h *WatchHandler) DeleteWatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "watchId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteWatch(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.MessageResponse{Message: dto.MsgWatchDeleted})
}
