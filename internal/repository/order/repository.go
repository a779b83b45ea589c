package order

import (
	"context"
	"time"

	"bookstore-api/internal/domain"
)

// CustomerInput carries the normalized checkout-form fields persisted as a
// new customer row.
type CustomerInput struct {
	Name         string
	Address      string
	Phone        string
	Email        string
	CCNumber     string
	CCExpiryDate time.Time
}

type LineInput struct {
	BookID   int64
	Quantity int
}

// PlacementInput is everything one placement writes: a customer, an order,
// and the order's line items in cart order.
type PlacementInput struct {
	Customer           CustomerInput
	Amount             int64
	ConfirmationNumber int64
	Lines              []LineInput
}

// Repository persists placements and reads them back. CreatePlacement is
// atomic: the customer, the order, and all line items are created in one
// transaction or not at all.
type Repository interface {
	CreatePlacement(ctx context.Context, in PlacementInput) (int64, error)
	FindOrderByID(ctx context.Context, orderID int64) (*domain.Order, error)
	FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)
	FindLineItemsByOrderID(ctx context.Context, orderID int64) ([]domain.LineItem, error)
}
