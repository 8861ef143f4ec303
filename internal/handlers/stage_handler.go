package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"studio-backend/internal/middleware"
	"studio-backend/internal/models"
	"studio-backend/internal/services"
	"studio-backend/pkg/utils"
)

type StageHandler struct {
	Service *services.StageService
}

func NewStageHandler(s *services.StageService) *StageHandler {
	return &StageHandler{Service: s}
}

func (h *StageHandler) CreateStage(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req models.CreateStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	stage, err := h.Service.CreateStage(r.Context(), userID, &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, stage)
}

func (h *StageHandler) ListStages(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("client_id"); raw != "" {
		clientID, err := strconv.Atoi(raw)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "client_id must be an integer")
			return
		}
		stages, err := h.Service.ListByClient(r.Context(), clientID)
		if err != nil {
			serviceError(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, stages)
		return
	}

	stages, err := h.Service.ListStages(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, stages)
}
