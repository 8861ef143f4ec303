package handlers

import (
	"net/http"

	"studio-backend/internal/services"
	"studio-backend/pkg/utils"
)

type CashFlowHandler struct {
	Service *services.CashFlowService
}

func NewCashFlowHandler(s *services.CashFlowService) *CashFlowHandler {
	return &CashFlowHandler{Service: s}
}

// GetCashFlow returns the combined ledger: collected income and all expenses
// newest first, each row carrying the running balance.
func (h *CashFlowHandler) GetCashFlow(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.GetCashFlow(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, resp)
}
