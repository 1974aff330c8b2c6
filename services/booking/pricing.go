package booking

import "fmt"

// Hourly base rates for the quick-booking default course. The discounted
// rate may be absent, in which case the full rate applies.
var (
	baseTotalPrice      = 75.0
	baseDiscountedPrice = floatPtr(70.0)
)

func floatPtr(v float64) *float64 { return &v }

// PriceQuote is a derived lesson price. Values keep full precision; rounding
// to two decimals happens at display time only.
type PriceQuote struct {
	Total      float64 `json:"total"`
	Discounted float64 `json:"discounted"`
}

// DisplayTotal formats the total price for rendering.
func (q PriceQuote) DisplayTotal() string {
	return fmt.Sprintf("%.2f", q.Total)
}

// DisplayDiscounted formats the discounted price for rendering.
func (q PriceQuote) DisplayDiscounted() string {
	return fmt.Sprintf("%.2f", q.Discounted)
}

// CalculatePrice scales the default course's hourly rates by the selected
// duration. Pure function; exact rational scaling, so non-multiples of 60
// are handled without validation.
func CalculatePrice(durationMinutes int) PriceQuote {
	hours := float64(durationMinutes) / 60

	discountedBase := baseTotalPrice
	if baseDiscountedPrice != nil {
		discountedBase = *baseDiscountedPrice
	}

	return PriceQuote{
		Total:      baseTotalPrice * hours,
		Discounted: discountedBase * hours,
	}
}
