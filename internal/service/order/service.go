package order

import (
	"context"
	"math/rand"
	"time"

	"bookstore-api/internal/domain"
	orderrepo "bookstore-api/internal/repository/order"
)

// Service validates checkout requests, places orders atomically, and
// assembles order details for reads.
type Service struct {
	repo    orderRepo
	books   bookRepo
	now     func() time.Time
	confirm func() int64
}

type orderRepo interface {
	CreatePlacement(ctx context.Context, in orderrepo.PlacementInput) (int64, error)
	FindOrderByID(ctx context.Context, orderID int64) (*domain.Order, error)
	FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)
	FindLineItemsByOrderID(ctx context.Context, orderID int64) ([]domain.LineItem, error)
}

type bookRepo interface {
	FindByBookID(ctx context.Context, bookID int64) (*domain.Book, error)
}

func New(repo orderrepo.Repository, books bookRepo) *Service {
	return &Service{
		repo:    repo,
		books:   books,
		now:     time.Now,
		confirm: generateConfirmationNumber,
	}
}

// PlaceOrder validates the form and cart, then creates the customer, the
// order, and its line items in one transaction. Nothing is written if
// validation fails; a failed write rolls the whole placement back.
func (s *Service) PlaceOrder(ctx context.Context, form domain.CustomerForm, cart domain.ShoppingCart) (int64, error) {
	now := s.now()
	if err := validateCustomer(form, now); err != nil {
		return 0, err
	}
	books, err := s.validateCart(ctx, cart)
	if err != nil {
		return 0, err
	}

	ccExpiry, err := expiryDate(form.CCExpiryMonth, form.CCExpiryYear, now)
	if err != nil {
		return 0, err
	}

	var subtotal int64
	lines := make([]orderrepo.LineInput, len(cart.Items))
	for i, item := range cart.Items {
		subtotal += books[i].Price * int64(item.Quantity)
		lines[i] = orderrepo.LineInput{BookID: item.Book.BookID, Quantity: item.Quantity}
	}

	return s.repo.CreatePlacement(ctx, orderrepo.PlacementInput{
		Customer: orderrepo.CustomerInput{
			Name:         form.Name,
			Address:      form.Address,
			Phone:        form.Phone,
			Email:        form.Email,
			CCNumber:     form.CCNumber,
			CCExpiryDate: ccExpiry,
		},
		Amount:             subtotal + cart.Surcharge,
		ConfirmationNumber: s.confirm(),
		Lines:              lines,
	})
}

// GetOrderDetails reassembles an order with its customer, line items, and
// the line items' books in line-item order.
func (s *Service) GetOrderDetails(ctx context.Context, orderID int64) (*domain.OrderDetails, error) {
	ord, err := s.repo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	customer, err := s.repo.FindCustomerByID(ctx, ord.CustomerID)
	if err != nil {
		return nil, err
	}
	lineItems, err := s.repo.FindLineItemsByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	books := make([]domain.Book, 0, len(lineItems))
	for _, li := range lineItems {
		book, err := s.books.FindByBookID(ctx, li.BookID)
		if err != nil {
			return nil, err
		}
		books = append(books, *book)
	}

	return &domain.OrderDetails{
		Order:     *ord,
		Customer:  *customer,
		LineItems: lineItems,
		Books:     books,
	}, nil
}

// generateConfirmationNumber returns a random 9-digit display value.
// Collisions are tolerated; the number is not a key.
func generateConfirmationNumber() int64 {
	return 100000000 + rand.Int63n(900000000)
}
