package models

import "time"

// Bank holds the firm's own collection account details shown on estimates
// and receipts.
type Bank struct {
	ID            int       `json:"id"`
	BankName      string    `json:"bank_name"`
	AccountName   string    `json:"account_name"`
	AccountNumber string    `json:"account_number"`
	IFSC          string    `json:"ifsc"`
	Branch        string    `json:"branch"`
	UPIID         string    `json:"upi_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BankRequest struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	IFSC          string `json:"ifsc"`
	Branch        string `json:"branch"`
	UPIID         string `json:"upi_id"`
}
