package handlers

import (
	"net/http"

	"studio-backend/internal/services"
	"studio-backend/pkg/utils"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(s *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: s}
}

func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.GetStats(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, stats)
}
