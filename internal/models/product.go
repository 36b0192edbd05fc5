package models

// Product represents a shop product. Products are static catalog data compiled
// into the binary; they are never persisted or mutated.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}
