package domain

import "testing"

func TestShoppingCartSubtotal(t *testing.T) {
	cart := ShoppingCart{
		Surcharge: 300,
		Items: []ShoppingCartItem{
			{Quantity: 2, Book: BookForm{BookID: 1, Price: 500}},
			{Quantity: 1, Book: BookForm{BookID: 2, Price: 250}},
		},
	}
	if got := cart.Subtotal(); got != 1250 {
		t.Fatalf("Subtotal() = %d, want 1250", got)
	}
}

func TestShoppingCartSubtotalEmpty(t *testing.T) {
	if got := (ShoppingCart{}).Subtotal(); got != 0 {
		t.Fatalf("Subtotal() = %d, want 0", got)
	}
}
