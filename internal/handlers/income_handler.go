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

type IncomeHandler struct {
	Service *services.IncomeService
}

func NewIncomeHandler(s *services.IncomeService) *IncomeHandler {
	return &IncomeHandler{Service: s}
}

func (h *IncomeHandler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req models.CreateIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	income, err := h.Service.CreateIncome(r.Context(), userID, &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, income)
}

func (h *IncomeHandler) ListIncome(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("client_id"); raw != "" {
		clientID, err := strconv.Atoi(raw)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "client_id must be an integer")
			return
		}
		income, err := h.Service.ListByClient(r.Context(), clientID)
		if err != nil {
			serviceError(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, income)
		return
	}

	income, err := h.Service.ListIncome(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, income)
}

// UpdateIncome is the collection action: mark an instalment paid with its
// method. The collector's email is stamped as marked_by.
func (h *IncomeHandler) UpdateIncome(w http.ResponseWriter, r *http.Request) {
	email, _ := middleware.GetEmailFromContext(r.Context())

	var req models.UpdateIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	income, err := h.Service.UpdateIncome(r.Context(), idParam(r), email, &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, income)
}
