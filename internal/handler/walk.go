package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dogwalk/dogwalk-go/internal/model"
	"github.com/dogwalk/dogwalk-go/internal/service"
)

// WalkHandler handles HTTP requests for walk operations.
type WalkHandler struct {
	service *service.WalkService
}

// NewWalkHandler creates a new WalkHandler.
func NewWalkHandler(svc *service.WalkService) *WalkHandler {
	return &WalkHandler{service: svc}
}

// HandleList handles GET /walks requests.
func (h *WalkHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	walks, err := h.service.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, walks)
}

// HandleGet handles GET /walks/{id} requests.
func (h *WalkHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid walk id"))
		return
	}

	walk, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrWalkNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("walk not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, walk)
}

// HandleListByWalker handles GET /walks/walker/{id} requests.
func (h *WalkHandler) HandleListByWalker(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid walker id"))
		return
	}

	walks, err := h.service.ListByWalker(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if len(walks) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, walks)
}

// HandleListByOwner handles GET /walks/owner/{id} requests.
func (h *WalkHandler) HandleListByOwner(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid owner id"))
		return
	}

	walks, err := h.service.ListByOwner(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if len(walks) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, walks)
}

// HandleSchedule handles POST /walks requests.
func (h *WalkHandler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.ScheduleWalkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	walk, err := h.service.Schedule(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, walk)
}

// HandleComplete handles PUT /walks/{id}/complete requests.
func (h *WalkHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.service.Complete)
}

// HandleCancel handles PUT /walks/{id}/cancel requests.
func (h *WalkHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.service.Cancel)
}

func (h *WalkHandler) setStatus(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, id int64) error) {
	id, ok := idParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid walk id"))
		return
	}

	if err := action(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrWalkNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("walk not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
