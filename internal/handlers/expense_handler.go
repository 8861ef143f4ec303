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

type ExpenseHandler struct {
	Service *services.ExpenseService
}

func NewExpenseHandler(s *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{Service: s}
}

func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	email, _ := middleware.GetEmailFromContext(r.Context())

	var req models.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	expense, err := h.Service.CreateExpense(r.Context(), userID, email, &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, expense)
}

func (h *ExpenseHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("client_id"); raw != "" {
		clientID, err := strconv.Atoi(raw)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "client_id must be an integer")
			return
		}
		expenses, err := h.Service.ListByClient(r.Context(), clientID)
		if err != nil {
			serviceError(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, expenses)
		return
	}

	expenses, err := h.Service.ListExpenses(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, expenses)
}

func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteExpense(r.Context(), idParam(r)); err != nil {
		utils.Error(w, http.StatusNotFound, "Resource not found")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *ExpenseHandler) CreateCommonExpense(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	email, _ := middleware.GetEmailFromContext(r.Context())

	var req models.CreateCommonExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	expense, err := h.Service.CreateCommonExpense(r.Context(), userID, email, &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, expense)
}

func (h *ExpenseHandler) ListCommonExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.Service.ListCommonExpenses(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, expenses)
}

func (h *ExpenseHandler) DeleteCommonExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteCommonExpense(r.Context(), idParam(r)); err != nil {
		utils.Error(w, http.StatusNotFound, "Resource not found")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
