package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/candidate"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
)

type CandidateHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type candidateHandlerImpl struct {
	candidateService candidate.CandidateService
}

func NewCandidateHandler(candidateService candidate.CandidateService) CandidateHandler {
	return &candidateHandlerImpl{
		candidateService: candidateService,
	}
}

// Apply implements CandidateHandler.
func (h *candidateHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req candidate.ApplyRequest

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	file, _, err := r.FormFile("cv")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "A CV file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	req.CV, err = io.ReadAll(file)
	if err != nil {
		slog.Error("Failed to read CV file", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}

	result, err := h.candidateService.Apply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Application received", result)
}

// Accept implements CandidateHandler.
func (h *candidateHandlerImpl) Accept(w http.ResponseWriter, r *http.Request) {
	result, err := h.candidateService.Accept(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Candidate accepted", result)
}

// Reject implements CandidateHandler.
func (h *candidateHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	result, err := h.candidateService.Reject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Candidate rejected", result)
}

// Get implements CandidateHandler.
func (h *candidateHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.candidateService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements CandidateHandler.
func (h *candidateHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := candidate.Filter{
		Status: q.Get("status"),
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	result, err := h.candidateService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
