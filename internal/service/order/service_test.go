package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookstore-api/internal/domain"
	orderrepo "bookstore-api/internal/repository/order"
)

type stubOrderRepo struct {
	nextOrderID    int64
	placements     []orderrepo.PlacementInput
	placementErr   error
	order          *domain.Order
	orderErr       error
	customer       *domain.Customer
	customerErr    error
	lineItems      []domain.LineItem
	lineItemsErr   error
	lastOrderID    int64
	lastCustomerID int64
}

func (s *stubOrderRepo) CreatePlacement(_ context.Context, in orderrepo.PlacementInput) (int64, error) {
	if s.placementErr != nil {
		return 0, s.placementErr
	}
	s.placements = append(s.placements, in)
	s.nextOrderID++
	return s.nextOrderID, nil
}

func (s *stubOrderRepo) FindOrderByID(_ context.Context, orderID int64) (*domain.Order, error) {
	s.lastOrderID = orderID
	return s.order, s.orderErr
}

func (s *stubOrderRepo) FindCustomerByID(_ context.Context, customerID int64) (*domain.Customer, error) {
	s.lastCustomerID = customerID
	return s.customer, s.customerErr
}

func (s *stubOrderRepo) FindLineItemsByOrderID(_ context.Context, _ int64) ([]domain.LineItem, error) {
	return s.lineItems, s.lineItemsErr
}

type stubBookRepo struct {
	books map[int64]domain.Book
	err   error
}

func (s *stubBookRepo) FindByBookID(_ context.Context, bookID int64) (*domain.Book, error) {
	if s.err != nil {
		return nil, s.err
	}
	b, ok := s.books[bookID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func newTestService(repo *stubOrderRepo, books *stubBookRepo) *Service {
	return &Service{
		repo:    repo,
		books:   books,
		now:     func() time.Time { return testNow },
		confirm: generateConfirmationNumber,
	}
}

func catalogWithBookOne() *stubBookRepo {
	return &stubBookRepo{books: map[int64]domain.Book{
		1: {ID: 1, Title: "The Time Machine", Author: "H. G. Wells", Price: 500, CategoryID: 10},
	}}
}

func cartWithBookOne() domain.ShoppingCart {
	return domain.ShoppingCart{
		Surcharge: 300,
		Items: []domain.ShoppingCartItem{
			{Quantity: 2, Book: domain.BookForm{BookID: 1, Price: 500, CategoryID: 10}},
		},
	}
}

func TestPlaceOrderHappyPath(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newTestService(repo, catalogWithBookOne())

	orderID, err := svc.PlaceOrder(context.Background(), validForm(), cartWithBookOne())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orderID != 1 {
		t.Fatalf("unexpected order id %d", orderID)
	}
	if len(repo.placements) != 1 {
		t.Fatalf("expected one placement, got %d", len(repo.placements))
	}

	in := repo.placements[0]
	if in.Amount != 1300 {
		t.Fatalf("expected amount 1300 (2x500 + 300 surcharge), got %d", in.Amount)
	}
	if in.ConfirmationNumber < 100000000 || in.ConfirmationNumber > 999999999 {
		t.Fatalf("confirmation number %d out of 9-digit range", in.ConfirmationNumber)
	}
	if len(in.Lines) != 1 || in.Lines[0].BookID != 1 || in.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected lines %+v", in.Lines)
	}
	if in.Customer.Name != "Jane Reader" || in.Customer.CCNumber != "4444 3333 2222 1111" {
		t.Fatalf("unexpected customer %+v", in.Customer)
	}
	wantExpiry := time.Date(2029, time.December, 31, 0, 0, 0, 0, time.UTC)
	if !in.Customer.CCExpiryDate.Equal(wantExpiry) {
		t.Fatalf("expected expiry %v, got %v", wantExpiry, in.Customer.CCExpiryDate)
	}
}

func TestPlaceOrderTwiceCreatesTwoOrders(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newTestService(repo, catalogWithBookOne())

	first, err := svc.PlaceOrder(context.Background(), validForm(), cartWithBookOne())
	if err != nil {
		t.Fatalf("first placement: %v", err)
	}
	second, err := svc.PlaceOrder(context.Background(), validForm(), cartWithBookOne())
	if err != nil {
		t.Fatalf("second placement: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct order ids, got %d twice", first)
	}
	if len(repo.placements) != 2 {
		t.Fatalf("expected two placements, got %d", len(repo.placements))
	}
}

func TestPlaceOrderInvalidFormSkipsRepo(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newTestService(repo, catalogWithBookOne())

	form := validForm()
	form.Email = "no-at-sign"
	_, err := svc.PlaceOrder(context.Background(), form, cartWithBookOne())
	assertFieldError(t, err, "email")
	if len(repo.placements) != 0 {
		t.Fatalf("expected no placement after validation failure")
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newTestService(repo, catalogWithBookOne())

	_, err := svc.PlaceOrder(context.Background(), validForm(), domain.ShoppingCart{Surcharge: 300})
	assertFieldError(t, err, "cart")
	if len(repo.placements) != 0 {
		t.Fatalf("expected no placement for empty cart")
	}
}

func TestPlaceOrderQuantityBounds(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newTestService(repo, catalogWithBookOne())

	for _, qty := range []int{-1, 100} {
		cart := cartWithBookOne()
		cart.Items[0].Quantity = qty
		_, err := svc.PlaceOrder(context.Background(), validForm(), cart)
		assertFieldError(t, err, "quantity")
	}

	// 0 and 99 are inside the allowed range.
	for _, qty := range []int{0, 99} {
		cart := cartWithBookOne()
		cart.Items[0].Quantity = qty
		if _, err := svc.PlaceOrder(context.Background(), validForm(), cart); err != nil {
			t.Fatalf("quantity %d: unexpected error %v", qty, err)
		}
	}
}

func TestPlaceOrderUnknownBook(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newTestService(repo, catalogWithBookOne())

	cart := cartWithBookOne()
	cart.Items[0].Book.BookID = 42
	_, err := svc.PlaceOrder(context.Background(), validForm(), cart)
	assertFieldError(t, err, "bookId")
}

func TestPlaceOrderPriceMismatch(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newTestService(repo, catalogWithBookOne())

	cart := cartWithBookOne()
	cart.Items[0].Book.Price = 499
	_, err := svc.PlaceOrder(context.Background(), validForm(), cart)
	assertFieldError(t, err, "price")
	if len(repo.placements) != 0 {
		t.Fatalf("expected no placement after price mismatch")
	}
}

func TestPlaceOrderCategoryMismatch(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newTestService(repo, catalogWithBookOne())

	cart := cartWithBookOne()
	cart.Items[0].Book.CategoryID = 11
	_, err := svc.PlaceOrder(context.Background(), validForm(), cart)
	assertFieldError(t, err, "categoryId")
}

func TestPlaceOrderCatalogReadErrorPropagates(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newTestService(repo, &stubBookRepo{err: errors.New("db down")})

	_, err := svc.PlaceOrder(context.Background(), validForm(), cartWithBookOne())
	if err == nil || err.Error() != "db down" {
		t.Fatalf("expected read error to surface unchanged, got %v", err)
	}
}

func TestPlaceOrderWriteErrorPropagates(t *testing.T) {
	writeErr := &domain.WriteError{Op: "create order", Err: errors.New("boom")}
	repo := &stubOrderRepo{placementErr: writeErr}
	svc := newTestService(repo, catalogWithBookOne())

	_, err := svc.PlaceOrder(context.Background(), validForm(), cartWithBookOne())
	var wErr *domain.WriteError
	if !errors.As(err, &wErr) {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestPlaceOrderMultiItemAmountUsesCatalogPrices(t *testing.T) {
	books := &stubBookRepo{books: map[int64]domain.Book{
		1: {ID: 1, Price: 500, CategoryID: 10},
		2: {ID: 2, Price: 250, CategoryID: 10},
	}}
	repo := &stubOrderRepo{}
	svc := newTestService(repo, books)

	cart := domain.ShoppingCart{
		Surcharge: 300,
		Items: []domain.ShoppingCartItem{
			{Quantity: 1, Book: domain.BookForm{BookID: 2, Price: 250, CategoryID: 10}},
			{Quantity: 3, Book: domain.BookForm{BookID: 1, Price: 500, CategoryID: 10}},
		},
	}
	if _, err := svc.PlaceOrder(context.Background(), validForm(), cart); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := repo.placements[0]
	if in.Amount != 250+3*500+300 {
		t.Fatalf("unexpected amount %d", in.Amount)
	}
	// Lines keep the cart's iteration order.
	if in.Lines[0].BookID != 2 || in.Lines[1].BookID != 1 {
		t.Fatalf("unexpected line order %+v", in.Lines)
	}
}

func TestGetOrderDetails(t *testing.T) {
	repo := &stubOrderRepo{
		order:    &domain.Order{ID: 7, Amount: 1300, ConfirmationNumber: 123456789, CustomerID: 3},
		customer: &domain.Customer{ID: 3, Name: "Jane Reader"},
		lineItems: []domain.LineItem{
			{OrderID: 7, BookID: 2, Quantity: 1},
			{OrderID: 7, BookID: 1, Quantity: 2},
		},
	}
	books := &stubBookRepo{books: map[int64]domain.Book{
		1: {ID: 1, Title: "The Time Machine"},
		2: {ID: 2, Title: "Moby-Dick"},
	}}
	svc := newTestService(repo, books)

	details, err := svc.GetOrderDetails(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastOrderID != 7 || repo.lastCustomerID != 3 {
		t.Fatalf("unexpected lookups order=%d customer=%d", repo.lastOrderID, repo.lastCustomerID)
	}
	if details.Order.ID != 7 || details.Customer.ID != 3 {
		t.Fatalf("unexpected details %+v", details)
	}
	if len(details.Books) != 2 || details.Books[0].ID != 2 || details.Books[1].ID != 1 {
		t.Fatalf("books not in line-item order: %+v", details.Books)
	}
}

func TestGetOrderDetailsNotFound(t *testing.T) {
	repo := &stubOrderRepo{orderErr: domain.ErrNotFound}
	svc := newTestService(repo, catalogWithBookOne())

	_, err := svc.GetOrderDetails(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGenerateConfirmationNumberRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		n := generateConfirmationNumber()
		if n < 100000000 || n > 999999999 {
			t.Fatalf("confirmation number %d out of range", n)
		}
	}
}
