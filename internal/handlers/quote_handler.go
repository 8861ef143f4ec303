package handlers

import (
	"encoding/json"
	"net/http"

	"studio-backend/internal/models"
	"studio-backend/internal/services"
	"studio-backend/pkg/utils"
)

type QuoteHandler struct {
	Service *services.QuoteService
}

func NewQuoteHandler(s *services.QuoteService) *QuoteHandler {
	return &QuoteHandler{Service: s}
}

// CreateQuote takes public enquiry-form submissions; no auth.
func (h *QuoteHandler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	quote, err := h.Service.CreateQuote(r.Context(), &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, quote)
}

func (h *QuoteHandler) ListQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.Service.ListQuotes(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, quotes)
}

func (h *QuoteHandler) DeleteQuote(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteQuote(r.Context(), idParam(r)); err != nil {
		utils.Error(w, http.StatusNotFound, "Resource not found")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
