package book

import (
	"context"
	"errors"
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

const bookColumns = `book_id, title, author, COALESCE(description, ''), price, rating, is_public, is_featured, category_id`

func (r *postgresRepo) FindByBookID(ctx context.Context, bookID int64) (*domain.Book, error) {
	const q = `
SELECT ` + bookColumns + `
FROM book
WHERE book_id = $1
`
	var b domain.Book
	err := r.pool.QueryRow(ctx, q, bookID).Scan(
		&b.ID, &b.Title, &b.Author, &b.Description, &b.Price, &b.Rating, &b.IsPublic, &b.IsFeatured, &b.CategoryID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("book repo: find book_id=%d error=%v", bookID, err)
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepo) FindByCategoryID(ctx context.Context, categoryID int64) ([]domain.Book, error) {
	const q = `
SELECT ` + bookColumns + `
FROM book
WHERE category_id = $1
ORDER BY book_id ASC
`
	return r.queryBooks(ctx, q, categoryID)
}

func (r *postgresRepo) FindRandomByCategoryID(ctx context.Context, categoryID int64, limit int) ([]domain.Book, error) {
	const q = `
SELECT ` + bookColumns + `
FROM book
WHERE category_id = $1
ORDER BY random()
LIMIT $2
`
	return r.queryBooks(ctx, q, categoryID, limit)
}

func (r *postgresRepo) queryBooks(ctx context.Context, q string, args ...interface{}) ([]domain.Book, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("book repo: query error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Description, &b.Price, &b.Rating, &b.IsPublic, &b.IsFeatured, &b.CategoryID,
		); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("book repo: rows error=%v", err)
		return nil, err
	}
	return result, nil
}
