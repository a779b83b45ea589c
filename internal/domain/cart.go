package domain

// BookForm is the client-asserted snapshot of a book inside a cart item.
// Price and category are re-checked against the catalog during validation.
type BookForm struct {
	BookID     int64 `json:"bookId"`
	Price      int64 `json:"price"`
	CategoryID int64 `json:"categoryId"`
}

type ShoppingCartItem struct {
	Quantity int      `json:"quantity"`
	Book     BookForm `json:"book"`
}

// ShoppingCart arrives with an order request and lives only for that request.
type ShoppingCart struct {
	Items     []ShoppingCartItem `json:"items"`
	Surcharge int64              `json:"surcharge"`
}

// Subtotal sums the client-asserted line prices. Validation guarantees these
// equal the catalog prices before the subtotal is ever persisted.
func (c ShoppingCart) Subtotal() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Book.Price * int64(item.Quantity)
	}
	return total
}
