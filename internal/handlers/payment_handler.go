package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"studio-backend/internal/models"
	"studio-backend/internal/services"
	"studio-backend/pkg/utils"
)

type PaymentHandler struct {
	Service *services.RazorpayService
}

func NewPaymentHandler(s *services.RazorpayService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

// Status tells the frontend whether online collection is available and which
// key to use for checkout.
func (h *PaymentHandler) Status(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"enabled": h.Service.Enabled(),
		"key_id":  h.Service.KeyID(),
	})
}

func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	if !h.Service.Enabled() {
		utils.Error(w, http.StatusServiceUnavailable, "Online payments are not configured")
		return
	}

	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	txn, err := h.Service.CreateOrder(r.Context(), &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]interface{}{
		"order_id": txn.RazorpayOrderID,
		"amount":   int(txn.Amount * 100),
		"currency": "INR",
		"key_id":   h.Service.KeyID(),
	})
}

func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	txn, err := h.Service.VerifyPayment(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "transaction": txn})
}

// Webhook receives Razorpay server-to-server events. The raw body is needed
// for the signature check before any JSON parsing.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Failed to read body")
		return
	}

	if !h.Service.VerifyWebhookSignature(body, r.Header.Get("X-Razorpay-Signature")) {
		utils.Error(w, http.StatusUnauthorized, "Invalid webhook signature")
		return
	}

	var event struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(body, &event); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid webhook payload")
		return
	}

	if err := h.Service.ProcessWebhook(r.Context(), event.Event, event.Payload); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Webhook processing failed")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *PaymentHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txns, err := h.Service.ListTransactions(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, txns)
}
