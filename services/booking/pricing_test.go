package booking

import (
	"testing"

	"driveline/models"
)

func TestCalculatePriceScalesWithDuration(t *testing.T) {
	discounted := baseTotalPrice
	if baseDiscountedPrice != nil {
		discounted = *baseDiscountedPrice
	}

	for _, minutes := range models.LessonDurations {
		hours := float64(minutes) / 60
		quote := CalculatePrice(minutes)

		if got, want := quote.Total, baseTotalPrice*hours; got != want {
			t.Errorf("CalculatePrice(%d).Total = %v, want %v", minutes, got, want)
		}
		if got, want := quote.Discounted, discounted*hours; got != want {
			t.Errorf("CalculatePrice(%d).Discounted = %v, want %v", minutes, got, want)
		}
	}
}

func TestCalculatePriceNonEnumDuration(t *testing.T) {
	// Unreachable through the UI, but a direct call must not misbehave:
	// exact rational scaling, no validation.
	quote := CalculatePrice(45)
	if got, want := quote.Total, baseTotalPrice*0.75; got != want {
		t.Errorf("CalculatePrice(45).Total = %v, want %v", got, want)
	}
}

func TestPriceQuoteDisplayRounding(t *testing.T) {
	quote := PriceQuote{Total: 112.5, Discounted: 105}
	if got := quote.DisplayTotal(); got != "112.50" {
		t.Errorf("DisplayTotal() = %q, want %q", got, "112.50")
	}
	if got := quote.DisplayDiscounted(); got != "105.00" {
		t.Errorf("DisplayDiscounted() = %q, want %q", got, "105.00")
	}
}
