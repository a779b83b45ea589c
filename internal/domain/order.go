package domain

import "time"

// Order is immutable once placed. The confirmation number is a display
// value only; it is not unique and never used as a key.
type Order struct {
	ID                 int64     `json:"orderId"`
	Amount             int64     `json:"amount"`
	DateCreated        time.Time `json:"dateCreated"`
	ConfirmationNumber int64     `json:"confirmationNumber"`
	CustomerID         int64     `json:"customerId"`
}

type LineItem struct {
	OrderID  int64 `json:"orderId"`
	BookID   int64 `json:"bookId"`
	Quantity int   `json:"quantity"`
}

// OrderDetails is the read-only composite returned to clients. Books are
// resolved in line-item order.
type OrderDetails struct {
	Order     Order      `json:"order"`
	Customer  Customer   `json:"customer"`
	LineItems []LineItem `json:"lineItems"`
	Books     []Book     `json:"books"`
}
