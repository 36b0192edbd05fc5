package models

import "time"

// CheckoutForm carries the shipping and payment fields submitted at checkout.
// Field order matters: presence is checked top to bottom, then the tagged
// format rules are applied in the same order.
type CheckoutForm struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	ZipCode    string `json:"zipCode" validate:"omitempty,len=5,number"`
	CardName   string `json:"cardName"`
	CardNumber string `json:"cardNumber" validate:"omitempty,len=16,number"`
	ExpDate    string `json:"expDate" validate:"omitempty,expdate"`
	CVV        string `json:"cvv" validate:"omitempty,len=3,number"`
}

// OrderConfirmation is returned when checkout commits. No payment gateway is
// involved and nothing is persisted; the cart is cleared and this record is the
// only trace of the order.
type OrderConfirmation struct {
	ID       string      `json:"id"`
	Items    []CartItem  `json:"items"`
	Summary  CartSummary `json:"summary"`
	PlacedAt time.Time   `json:"placedAt"`
}
