package handlers

import (
	"encoding/json"
	"net/http"

	"studio-backend/internal/models"
	"studio-backend/internal/repositories"
	"studio-backend/pkg/utils"
)

// BankHandler is thin CRUD over the firm's collection accounts; no business
// rules, so it talks to the repository directly.
type BankHandler struct {
	Repo *repositories.BankRepository
}

func NewBankHandler(repo *repositories.BankRepository) *BankHandler {
	return &BankHandler{Repo: repo}
}

func (h *BankHandler) CreateBank(w http.ResponseWriter, r *http.Request) {
	var req models.BankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.BankName == "" || req.AccountNumber == "" {
		utils.Error(w, http.StatusBadRequest, "bank_name and account_number are required")
		return
	}

	bank := &models.Bank{
		BankName:      req.BankName,
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		IFSC:          req.IFSC,
		Branch:        req.Branch,
		UPIID:         req.UPIID,
	}
	if err := h.Repo.Create(r.Context(), bank); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.JSON(w, http.StatusCreated, bank)
}

func (h *BankHandler) ListBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.Repo.List(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.JSON(w, http.StatusOK, banks)
}

func (h *BankHandler) UpdateBank(w http.ResponseWriter, r *http.Request) {
	var req models.BankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bank := &models.Bank{
		ID:            idParam(r),
		BankName:      req.BankName,
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		IFSC:          req.IFSC,
		Branch:        req.Branch,
		UPIID:         req.UPIID,
	}
	if err := h.Repo.Update(r.Context(), bank); err != nil {
		utils.Error(w, http.StatusNotFound, "Resource not found")
		return
	}
	utils.JSON(w, http.StatusOK, bank)
}

func (h *BankHandler) DeleteBank(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Delete(r.Context(), idParam(r)); err != nil {
		utils.Error(w, http.StatusNotFound, "Resource not found")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
