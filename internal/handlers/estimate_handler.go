package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"studio-backend/internal/middleware"
	"studio-backend/internal/models"
	"studio-backend/internal/services"
	"studio-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type EstimateHandler struct {
	Service       *services.EstimateService
	ReportService *services.ReportService
}

func NewEstimateHandler(s *services.EstimateService, reports *services.ReportService) *EstimateHandler {
	return &EstimateHandler{Service: s, ReportService: reports}
}

func (h *EstimateHandler) CreateEstimate(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req models.CreateInteriorEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	estimate, err := h.Service.CreateEstimate(r.Context(), userID, &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, estimate)
}

func (h *EstimateHandler) GetEstimate(w http.ResponseWriter, r *http.Request) {
	estimate, err := h.Service.GetEstimate(r.Context(), idParam(r))
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, estimate)
}

// ListEstimates returns all estimates, or one client's when ?client_id= is set.
func (h *EstimateHandler) ListEstimates(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("client_id"); raw != "" {
		clientID, err := strconv.Atoi(raw)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "client_id must be an integer")
			return
		}
		estimates, err := h.Service.ListByClient(r.Context(), clientID)
		if err != nil {
			serviceError(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, estimates)
		return
	}

	estimates, err := h.Service.ListEstimates(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, estimates)
}

// ListByClient serves the /client/{clientId} route.
func (h *EstimateHandler) ListByClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.Atoi(mux.Vars(r)["clientId"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "clientId must be an integer")
		return
	}

	estimates, err := h.Service.ListByClient(r.Context(), clientID)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, estimates)
}

func (h *EstimateHandler) UpdateEstimate(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateInteriorEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	estimate, err := h.Service.UpdateEstimate(r.Context(), idParam(r), &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, estimate)
}

func (h *EstimateHandler) DeleteEstimate(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteEstimate(r.Context(), idParam(r)); err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// ApproveEstimate runs the approval cascade: sibling cleanup, stage entry,
// advance income. Repeat approval answers 409.
func (h *EstimateHandler) ApproveEstimate(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	result, err := h.Service.Approve(r.Context(), idParam(r), userID)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, result)
}

// ExportPDF streams the estimate as a PDF download.
func (h *EstimateHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	data, err := h.ReportService.EstimatePDF(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="estimate-%d.pdf"`, id))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
