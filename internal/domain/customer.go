package domain

import "time"

// CustomerForm holds the raw checkout form fields as submitted by the client.
// It exists only for validation and placement; its normalized fields become a
// Customer row.
type CustomerForm struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	CCNumber      string `json:"ccNumber"`
	CCExpiryMonth string `json:"ccExpiryMonth"`
	CCExpiryYear  string `json:"ccExpiryYear"`
}

// Customer is created exactly once per placed order. There is no
// deduplication against existing customers.
type Customer struct {
	ID           int64     `json:"customerId"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	CCNumber     string    `json:"ccNumber"`
	CCExpiryDate time.Time `json:"ccExpiryDate"`
}
