package handlers

import (
	"encoding/json"
	"net/http"

	"studio-backend/internal/models"
	"studio-backend/internal/services"
	"studio-backend/pkg/utils"
)

type PresetHandler struct {
	Service *services.PresetService
}

func NewPresetHandler(s *services.PresetService) *PresetHandler {
	return &PresetHandler{Service: s}
}

func (h *PresetHandler) CreatePreset(w http.ResponseWriter, r *http.Request) {
	var req models.PresetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	preset, err := h.Service.CreatePreset(r.Context(), &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, preset)
}

func (h *PresetHandler) GetPreset(w http.ResponseWriter, r *http.Request) {
	preset, err := h.Service.GetPreset(r.Context(), idParam(r))
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, preset)
}

func (h *PresetHandler) ListPresets(w http.ResponseWriter, r *http.Request) {
	presets, err := h.Service.ListPresets(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, presets)
}

func (h *PresetHandler) UpdatePreset(w http.ResponseWriter, r *http.Request) {
	var req models.PresetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	preset, err := h.Service.UpdatePreset(r.Context(), idParam(r), &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, preset)
}

func (h *PresetHandler) DeletePreset(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeletePreset(r.Context(), idParam(r)); err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
