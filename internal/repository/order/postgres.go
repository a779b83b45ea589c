package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"bookstore-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

// CreatePlacement writes the customer, the order, and every line item inside
// a single transaction. Any failed insert rolls the whole placement back.
func (r *postgresRepo) CreatePlacement(ctx context.Context, in PlacementInput) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("begin placement tx: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			r.logger.Printf("order repo: rollback error=%v", err)
		}
	}()

	customerID, err := createCustomer(ctx, tx, in.Customer)
	if err != nil {
		return 0, err
	}
	orderID, err := createOrder(ctx, tx, in.Amount, in.ConfirmationNumber, customerID)
	if err != nil {
		return 0, err
	}
	for _, line := range in.Lines {
		if err := createLineItem(ctx, tx, orderID, line); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, &domain.WriteError{Op: "commit placement", Err: err}
	}
	r.logger.Printf("order repo: placed order_id=%d customer_id=%d lines=%d", orderID, customerID, len(in.Lines))
	return orderID, nil
}

func createCustomer(ctx context.Context, tx pgx.Tx, c CustomerInput) (int64, error) {
	const q = `
INSERT INTO customer (customer_name, address, phone, email, cc_number, cc_expiry_date)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING customer_id
`
	var id int64
	if err := tx.QueryRow(ctx, q, c.Name, c.Address, c.Phone, c.Email, c.CCNumber, c.CCExpiryDate).Scan(&id); err != nil {
		return 0, &domain.WriteError{Op: "create customer", Err: err}
	}
	return id, nil
}

func createOrder(ctx context.Context, tx pgx.Tx, amount, confirmationNumber, customerID int64) (int64, error) {
	const q = `
INSERT INTO customer_order (amount, confirmation_number, customer_id)
VALUES ($1, $2, $3)
RETURNING customer_order_id
`
	var id int64
	if err := tx.QueryRow(ctx, q, amount, confirmationNumber, customerID).Scan(&id); err != nil {
		return 0, &domain.WriteError{Op: "create order", Err: err}
	}
	return id, nil
}

func createLineItem(ctx context.Context, tx pgx.Tx, orderID int64, line LineInput) error {
	const q = `
INSERT INTO customer_order_line_item (customer_order_id, book_id, quantity)
VALUES ($1, $2, $3)
`
	cmd, err := tx.Exec(ctx, q, orderID, line.BookID, line.Quantity)
	if err != nil {
		return &domain.WriteError{Op: "create line item", Err: err}
	}
	if cmd.RowsAffected() != 1 {
		return &domain.WriteError{Op: "create line item", Err: fmt.Errorf("affected row count = %d", cmd.RowsAffected())}
	}
	return nil
}

func (r *postgresRepo) FindOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	const q = `
SELECT customer_order_id, amount, date_created, confirmation_number, customer_id
FROM customer_order
WHERE customer_order_id = $1
`
	var o domain.Order
	err := r.pool.QueryRow(ctx, q, orderID).Scan(
		&o.ID, &o.Amount, &o.DateCreated, &o.ConfirmationNumber, &o.CustomerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: find order_id=%d error=%v", orderID, err)
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	const q = `
SELECT customer_id, customer_name, address, phone, email, cc_number, cc_expiry_date
FROM customer
WHERE customer_id = $1
`
	var c domain.Customer
	err := r.pool.QueryRow(ctx, q, customerID).Scan(
		&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.CCNumber, &c.CCExpiryDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: find customer_id=%d error=%v", customerID, err)
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) FindLineItemsByOrderID(ctx context.Context, orderID int64) ([]domain.LineItem, error) {
	const q = `
SELECT customer_order_id, book_id, quantity
FROM customer_order_line_item
WHERE customer_order_id = $1
ORDER BY line_no ASC
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		r.logger.Printf("order repo: line items order_id=%d error=%v", orderID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.LineItem
	for rows.Next() {
		var li domain.LineItem
		if err := rows.Scan(&li.OrderID, &li.BookID, &li.Quantity); err != nil {
			return nil, err
		}
		result = append(result, li)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
