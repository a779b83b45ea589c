package order

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bookstore-api/internal/domain"
)

func validationFailure(field, message string) error {
	return &domain.ValidationError{Field: field, Message: message}
}

// validateCustomer applies the checkout-form rules in field order, failing on
// the first violated rule.
func validateCustomer(form domain.CustomerForm, now time.Time) error {
	name := form.Name
	if name == "" || len(name) < 4 || len(name) > 45 {
		return validationFailure("name", "Invalid name field")
	}

	address := form.Address
	if address == "" || len(address) < 4 || len(address) > 45 {
		return validationFailure("address", "Invalid address field")
	}

	if form.Phone == "" {
		return validationFailure("phone", "Missing phone field")
	}
	if len(digitsOnly(form.Phone)) != 10 {
		return validationFailure("phone", "Invalid phone field")
	}

	email := form.Email
	if email == "" || !strings.Contains(email, "@") || strings.HasSuffix(email, ".") {
		return validationFailure("email", "Invalid email field")
	}

	ccNumber := stripCardSeparators(form.CCNumber)
	if ccNumber == "" || len(ccNumber) < 14 || len(ccNumber) > 16 {
		return validationFailure("ccNumber", "Invalid credit card number")
	}

	if expiryIsInvalid(form.CCExpiryMonth, form.CCExpiryYear, now) {
		return validationFailure("ccExpiryMonth", "Please enter a valid expiration date")
	}

	return nil
}

// validateCart checks cart shape and every item against the catalog, and
// returns the resolved books in item order so the caller can price the order
// from catalog truth rather than client-asserted values.
func (s *Service) validateCart(ctx context.Context, cart domain.ShoppingCart) ([]domain.Book, error) {
	if len(cart.Items) == 0 {
		return nil, validationFailure("cart", "Cart is empty")
	}

	books := make([]domain.Book, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.Quantity < 0 || item.Quantity > 99 {
			return nil, validationFailure("quantity", fmt.Sprintf("Invalid quantity %d", item.Quantity))
		}
		book, err := s.books.FindByBookID(ctx, item.Book.BookID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, validationFailure("bookId", fmt.Sprintf("Invalid book with ID %d", item.Book.BookID))
			}
			return nil, err
		}
		if item.Book.Price != book.Price {
			return nil, validationFailure("price", fmt.Sprintf("Price mismatch for book with ID %d", item.Book.BookID))
		}
		if item.Book.CategoryID != book.CategoryID {
			return nil, validationFailure("categoryId", "Invalid category for selected book")
		}
		books = append(books, *book)
	}
	return books, nil
}

// expiryDate parses the expiry fields and returns the last calendar day of
// that year-month. A malformed or already-expired value is a validation
// failure on ccExpiryMonth, mirroring the check in validateCustomer.
func expiryDate(monthStr, yearStr string, now time.Time) (time.Time, error) {
	ym, err := parseYearMonth(monthStr, yearStr)
	if err != nil {
		return time.Time{}, validationFailure("ccExpiryMonth", "Invalid credit card expiration date")
	}
	if ym.Before(currentYearMonth(now)) {
		return time.Time{}, validationFailure("ccExpiryMonth", "Credit card has expired")
	}
	// First day of the following month minus one day.
	return ym.AddDate(0, 1, -1), nil
}

func expiryIsInvalid(monthStr, yearStr string, now time.Time) bool {
	ym, err := parseYearMonth(monthStr, yearStr)
	if err != nil {
		return true
	}
	return ym.Before(currentYearMonth(now))
}

func parseYearMonth(monthStr, yearStr string) (time.Time, error) {
	month, err := strconv.Atoi(strings.TrimSpace(monthStr))
	if err != nil {
		return time.Time{}, err
	}
	year, err := strconv.Atoi(strings.TrimSpace(yearStr))
	if err != nil {
		return time.Time{}, err
	}
	if month < 1 || month > 12 || year < 1 {
		return time.Time{}, fmt.Errorf("invalid year-month %d-%d", year, month)
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), nil
}

func currentYearMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stripCardSeparators(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ', '\t', '-':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
