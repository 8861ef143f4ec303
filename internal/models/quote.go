package models

import "time"

// Quote is a public lead-capture record from the website enquiry form.
// Everything except the name may be missing; defaults are applied rather
// than rejecting the submission.
type Quote struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	RequestCall     bool      `json:"request_call"`
	ServiceInterest string    `json:"service_interest"`
	SqFeet          float64   `json:"sq_feet"`
	Package         string    `json:"package"`
	AdditionalInfo  string    `json:"additional_info"`
	CreatedAt       time.Time `json:"created_at"`
}

type CreateQuoteRequest struct {
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	RequestCall     bool    `json:"request_call"`
	ServiceInterest string  `json:"service_interest"`
	SqFeet          float64 `json:"sq_feet"`
	Package         string  `json:"package"`
	AdditionalInfo  string  `json:"additional_info"`
}
