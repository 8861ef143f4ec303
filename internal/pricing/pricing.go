// Package pricing is the single source of the estimate arithmetic. The same
// formulas apply to interior estimates, general estimates and presets, so
// they live here rather than in each service.
package pricing

import "studio-backend/internal/models"

// ItemTotal computes the line total for an interior estimate item from its
// measurement type:
//
//	area:            width x height x rate
//	pieces:          count x rate
//	running:         length x rate
//	running_sq_feet: length x rate
func ItemTotal(item models.EstimateItem) float64 {
	switch item.Measurement {
	case models.MeasurementArea:
		return item.Width * item.Height * item.Rate
	case models.MeasurementPieces:
		return item.Count * item.Rate
	case models.MeasurementRunning, models.MeasurementRunningSqFeet:
		return item.Length * item.Rate
	default:
		return 0
	}
}

// GeneralItemTotal computes the line total for a general estimate item.
func GeneralItemTotal(item models.GeneralItem) float64 {
	return item.SqFeet * item.AmountPerSqFt
}

// Subtotal recomputes every item total and returns their sum. The input
// slice is updated in place so stored items always carry server-computed
// totals.
func Subtotal(items []models.EstimateItem) float64 {
	var sum float64
	for i := range items {
		items[i].TotalAmount = ItemTotal(items[i])
		sum += items[i].TotalAmount
	}
	return sum
}

// GeneralSubtotal is Subtotal for general estimate items.
func GeneralSubtotal(items []models.GeneralItem) float64 {
	var sum float64
	for i := range items {
		items[i].TotalAmount = GeneralItemTotal(items[i])
		sum += items[i].TotalAmount
	}
	return sum
}

// ApplyDiscount returns the grand total after the discount. A percentage
// discount removes subtotal*discount/100, a fixed discount removes the flat
// amount. Discount <= 0 leaves the subtotal untouched.
func ApplyDiscount(subtotal, discount float64, discountType string) float64 {
	if discount <= 0 {
		return subtotal
	}
	switch discountType {
	case models.DiscountPercentage:
		return subtotal - subtotal*discount/100
	case models.DiscountFixed:
		return subtotal - discount
	default:
		return subtotal
	}
}
