package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"studio-backend/internal/middleware"
	"studio-backend/internal/models"
	"studio-backend/internal/services"
	"studio-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type GeneralEstimateHandler struct {
	Service *services.GeneralEstimateService
}

func NewGeneralEstimateHandler(s *services.GeneralEstimateService) *GeneralEstimateHandler {
	return &GeneralEstimateHandler{Service: s}
}

func (h *GeneralEstimateHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req models.CreateGeneralEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	estimate, err := h.Service.Create(r.Context(), userID, &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, estimate)
}

func (h *GeneralEstimateHandler) Get(w http.ResponseWriter, r *http.Request) {
	estimate, err := h.Service.Get(r.Context(), idParam(r))
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, estimate)
}

func (h *GeneralEstimateHandler) List(w http.ResponseWriter, r *http.Request) {
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

	estimates, err := h.Service.List(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, estimates)
}

// ListByClient serves the /client/{clientId} route.
func (h *GeneralEstimateHandler) ListByClient(w http.ResponseWriter, r *http.Request) {
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

func (h *GeneralEstimateHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateGeneralEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	estimate, err := h.Service.Update(r.Context(), idParam(r), &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, estimate)
}

func (h *GeneralEstimateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), idParam(r)); err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
