package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/region"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
)

type RegionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type regionHandlerImpl struct {
	regionService region.RegionService
}

func NewRegionHandler(regionService region.RegionService) RegionHandler {
	return &regionHandlerImpl{
		regionService: regionService,
	}
}

// Create implements RegionHandler.
func (h *regionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req region.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.regionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Region created", result)
}

// Get implements RegionHandler.
func (h *regionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.regionService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements RegionHandler.
func (h *regionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.regionService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements RegionHandler.
func (h *regionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req region.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.regionService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Region updated", result)
}
