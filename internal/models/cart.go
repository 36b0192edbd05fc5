package models

// CartItem is one line in the shopping cart. The product display fields are a
// snapshot taken at add time: the price shown in the cart is the price when the
// item was added, not the live catalog price.
//
// The JSON keys match the persisted cart record shape, where the line item
// carries the product's own id.
type CartItem struct {
	ProductID   int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
}

// CartSummary is the derived totals block shown with a cart or an order.
// It is always recomputed from the line items and never stored.
type CartSummary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}
