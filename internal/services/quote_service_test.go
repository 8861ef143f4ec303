package services

import (
	"testing"

	"studio-backend/internal/models"
)

func TestQuoteFromRequestRequiresName(t *testing.T) {
	_, err := QuoteFromRequest(&models.CreateQuoteRequest{Phone: "9876543210"})
	if !IsValidation(err) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestQuoteFromRequestAcceptsPartialSubmission(t *testing.T) {
	quote, err := QuoteFromRequest(&models.CreateQuoteRequest{Name: "Ravi"})
	if err != nil {
		t.Fatalf("QuoteFromRequest: %v", err)
	}
	if quote.Name != "Ravi" {
		t.Errorf("name: got %q", quote.Name)
	}
	if quote.Phone != "" || quote.SqFeet != 0 || quote.RequestCall {
		t.Errorf("defaults not empty: %+v", quote)
	}
}

func TestQuoteFromRequestCopiesAllFields(t *testing.T) {
	req := &models.CreateQuoteRequest{
		Name:            "Meera",
		Phone:           "9000000000",
		RequestCall:     true,
		ServiceInterest: "full home interiors",
		SqFeet:          1450,
		Package:         "premium",
		AdditionalInfo:  "3BHK, possession in August",
	}
	quote, err := QuoteFromRequest(req)
	if err != nil {
		t.Fatalf("QuoteFromRequest: %v", err)
	}
	if quote.ServiceInterest != req.ServiceInterest || quote.SqFeet != req.SqFeet ||
		quote.Package != req.Package || !quote.RequestCall {
		t.Errorf("fields not copied: %+v", quote)
	}
}
