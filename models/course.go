package models

// Course is a driving course offered by the school. Price fields are hourly
// base rates; the wizard scales them by the selected lesson duration.
type Course struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discounted_price,omitempty"`
	IsActive        bool     `json:"is_active"`
}
