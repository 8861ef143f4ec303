package pricing

import (
	"math"
	"testing"

	"studio-backend/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestItemTotalByMeasurement(t *testing.T) {
	tests := []struct {
		name string
		item models.EstimateItem
		want float64
	}{
		{"area", models.EstimateItem{Measurement: "area", Width: 10, Height: 8, Rate: 120}, 9600},
		{"pieces", models.EstimateItem{Measurement: "pieces", Count: 4, Rate: 2500}, 10000},
		{"running", models.EstimateItem{Measurement: "running", Length: 15, Rate: 800}, 12000},
		{"running_sq_feet", models.EstimateItem{Measurement: "running_sq_feet", Length: 6.5, Rate: 400}, 2600},
		{"unknown measurement", models.EstimateItem{Measurement: "volume", Width: 2, Rate: 100}, 0},
	}
	for _, tt := range tests {
		if got := ItemTotal(tt.item); !almostEqual(got, tt.want) {
			t.Errorf("%s: got %v want %v", tt.name, got, tt.want)
		}
	}
}

func TestGeneralItemTotal(t *testing.T) {
	item := models.GeneralItem{Particulars: "structure", AmountPerSqFt: 45, SqFeet: 1200}
	if got := GeneralItemTotal(item); !almostEqual(got, 54000) {
		t.Errorf("got %v want 54000", got)
	}
}

func TestSubtotalRecomputesItemTotals(t *testing.T) {
	items := []models.EstimateItem{
		{Measurement: "area", Width: 10, Height: 10, Rate: 100, TotalAmount: 999}, // client-sent total ignored
		{Measurement: "pieces", Count: 2, Rate: 500},
	}
	got := Subtotal(items)
	if !almostEqual(got, 11000) {
		t.Fatalf("subtotal: got %v want 11000", got)
	}
	if !almostEqual(items[0].TotalAmount, 10000) {
		t.Errorf("item total not recomputed: got %v want 10000", items[0].TotalAmount)
	}
}

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name         string
		subtotal     float64
		discount     float64
		discountType string
		want         float64
	}{
		{"percentage", 10000, 10, "percentage", 9000},
		{"fixed", 10000, 1500, "fixed", 8500},
		{"zero discount", 10000, 0, "percentage", 10000},
		{"negative discount", 10000, -5, "fixed", 10000},
		{"unknown type", 10000, 10, "coupon", 10000},
		{"full percentage", 8000, 100, "percentage", 0},
	}
	for _, tt := range tests {
		if got := ApplyDiscount(tt.subtotal, tt.discount, tt.discountType); !almostEqual(got, tt.want) {
			t.Errorf("%s: got %v want %v", tt.name, got, tt.want)
		}
	}
}

// grandTotal == subtotal - discountAmount for every discount input
func TestDiscountIdentity(t *testing.T) {
	subtotals := []float64{0, 1, 999.99, 123456.78}
	discounts := []float64{-10, 0, 5, 50, 100}
	for _, sub := range subtotals {
		for _, d := range discounts {
			pct := ApplyDiscount(sub, d, "percentage")
			fixed := ApplyDiscount(sub, d, "fixed")
			if d <= 0 {
				if pct != sub || fixed != sub {
					t.Fatalf("discount %v should not reduce %v", d, sub)
				}
				continue
			}
			if !almostEqual(pct, sub-sub*d/100) {
				t.Errorf("percentage identity broken: sub=%v d=%v got=%v", sub, d, pct)
			}
			if !almostEqual(fixed, sub-d) {
				t.Errorf("fixed identity broken: sub=%v d=%v got=%v", sub, d, fixed)
			}
		}
	}
}
