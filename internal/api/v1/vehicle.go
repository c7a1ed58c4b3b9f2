package v1

import (
	"fmt"
	"strings"
)

// Vehicle is one catalog entry. Quantity units are owned, Available of them
// are currently not rented out.
type Vehicle struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	Available   int    `json:"available"`
	PricePerDay Amount `json:"price_per_day"`
}

// Validate checks a vehicle strictly before it is stored.
func (v *Vehicle) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(v.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(v.Category) == "" {
		return fmt.Errorf("category is required")
	}
	if v.Quantity < 0 {
		return fmt.Errorf("quantity must be >= 0")
	}
	if v.Available < 0 || v.Available > v.Quantity {
		return fmt.Errorf("available must be between 0 and quantity (%d)", v.Quantity)
	}
	return nil
}
