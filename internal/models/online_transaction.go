package models

import "time"

// Online payment transaction statuses
const (
	TxnStatusCreated  = "created"
	TxnStatusPaid     = "paid"
	TxnStatusFailed   = "failed"
)

// OnlineTransaction records a Razorpay order raised against a pending
// InteriorIncome record and its settlement state.
type OnlineTransaction struct {
	ID                int       `json:"id"`
	IncomeID          int       `json:"income_id"`
	ClientID          int       `json:"client_id"`
	RazorpayOrderID   string    `json:"razorpay_order_id"`
	RazorpayPaymentID string    `json:"razorpay_payment_id,omitempty"`
	Amount            float64   `json:"amount"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type CreateOrderRequest struct {
	IncomeID int `json:"income_id"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}
