package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dogwalk/dogwalk-go/internal/middleware"
	"github.com/dogwalk/dogwalk-go/internal/model"
	"github.com/dogwalk/dogwalk-go/internal/service"
)

// DogHandler handles HTTP requests for dog operations.
type DogHandler struct {
	service *service.DogService
}

// NewDogHandler creates a new DogHandler.
func NewDogHandler(svc *service.DogService) *DogHandler {
	return &DogHandler{service: svc}
}

// HandleList handles GET /dogs requests, listing the caller's own dogs.
func (h *DogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	dogs, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if len(dogs) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, dogs)
}

// HandleGet handles GET /dogs/{id} requests. Any authenticated caller may
// read any dog.
func (h *DogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid dog id"))
		return
	}

	dog, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDogNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("dog not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, dog)
}

// HandleCreate handles POST /dogs requests.
func (h *DogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateDogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	dog, err := h.service.Create(r.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDogNameRequired), errors.Is(err, service.ErrDogSizeRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, dog)
}

// HandleUpdate handles PUT /dogs/{id} requests. Fields absent from the body
// keep their stored values.
func (h *DogHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, okID := idParam(r, "id")
	if !okID {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid dog id"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.UpdateDogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	dog, err := h.service.Update(r.Context(), id, req, userID)
	if err != nil {
		if errors.Is(err, service.ErrDogForbidden) {
			writeJSON(w, http.StatusForbidden, errorResponse("forbidden"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, dog)
}

// HandleDelete handles DELETE /dogs/{id} requests.
func (h *DogHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, okID := idParam(r, "id")
	if !okID {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid dog id"))
		return
	}

	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		if errors.Is(err, service.ErrDogForbidden) {
			writeJSON(w, http.StatusForbidden, errorResponse("forbidden"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
