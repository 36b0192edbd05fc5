package services

import (
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/swaupd/OsBlogApp/internal/apperrors"
	"github.com/swaupd/OsBlogApp/internal/models"
)

// CheckoutState is the checkout flow's position. Validating always returns to
// Editing synchronously on failure; only a successful submit reaches
// Committed.
type CheckoutState int

const (
	StateEditing CheckoutState = iota
	StateValidating
	StateCommitted
)

func (s CheckoutState) String() string {
	switch s {
	case StateValidating:
		return "validating"
	case StateCommitted:
		return "committed"
	default:
		return "editing"
	}
}

var expDatePattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)

// CheckoutService validates the shipping/payment form and commits an order by
// clearing the cart. This is a format-validation gate only: no payment
// gateway is ever contacted and no order record is persisted.
type CheckoutService struct {
	cart     *CartService
	validate *validator.Validate
	state    CheckoutState
	mu       sync.Mutex
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(cart *CartService) *CheckoutService {
	v := validator.New()
	v.RegisterValidation("expdate", func(fl validator.FieldLevel) bool {
		return expDatePattern.MatchString(fl.Field().String())
	})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CheckoutService{
		cart:     cart,
		validate: v,
	}
}

// State reports the current flow state.
func (s *CheckoutService) State() CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Begin loads the current cart and refuses entry into checkout when it is
// empty; the caller redirects to the cart view on ErrEmptyCart.
func (s *CheckoutService) Begin() ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.cart.Items()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.ErrEmptyCart
	}
	s.state = StateEditing
	return items, nil
}

// Submit runs the form through the validation gate and, on success, clears
// the cart and returns the order confirmation. On any failure the flow drops
// back to Editing with no persisted change; the caller keeps the form for
// correction.
func (s *CheckoutService) Submit(form models.CheckoutForm) (*models.OrderConfirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.cart.Items()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.ErrEmptyCart
	}

	s.state = StateValidating
	if err := s.validateForm(form); err != nil {
		s.state = StateEditing
		return nil, err
	}

	if err := s.cart.Clear(); err != nil {
		s.state = StateEditing
		return nil, err
	}
	s.state = StateCommitted

	return &models.OrderConfirmation{
		ID:       uuid.New().String(),
		Items:    items,
		Summary:  s.cart.Summarize(items),
		PlacedAt: time.Now(),
	}, nil
}

// validateForm checks the fixed rule order: every field present, then the
// tagged format rules (zip, card number, expiration date, CVV) in form order.
// The first violation wins.
func (s *CheckoutService) validateForm(form models.CheckoutForm) error {
	fields := []struct {
		name  string
		value string
	}{
		{"firstName", form.FirstName},
		{"lastName", form.LastName},
		{"email", form.Email},
		{"address", form.Address},
		{"city", form.City},
		{"zipCode", form.ZipCode},
		{"cardName", form.CardName},
		{"cardNumber", form.CardNumber},
		{"expDate", form.ExpDate},
		{"cvv", form.CVV},
	}
	for _, f := range fields {
		if f.value == "" {
			return &apperrors.ValidationError{Field: f.name, Message: "All fields are required"}
		}
	}

	if err := s.validate.Struct(form); err != nil {
		first := err.(validator.ValidationErrors)[0]
		return &apperrors.ValidationError{
			Field:   first.Field(),
			Message: checkoutRuleMessage(first.Field()),
		}
	}
	return nil
}

func checkoutRuleMessage(field string) string {
	switch field {
	case "zipCode":
		return "Please enter a valid 5-digit zip code"
	case "cardNumber":
		return "Please enter a valid 16-digit card number"
	case "expDate":
		return "Please enter a valid expiration date (MM/YY)"
	case "cvv":
		return "Please enter a valid 3-digit CVV"
	default:
		return "Invalid value for " + field
	}
}
