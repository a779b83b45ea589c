package book

import (
	"context"

	"bookstore-api/internal/domain"
)

// Repository reads the book catalog. The catalog is never written by this
// service.
type Repository interface {
	FindByBookID(ctx context.Context, bookID int64) (*domain.Book, error)
	FindByCategoryID(ctx context.Context, categoryID int64) ([]domain.Book, error)
	FindRandomByCategoryID(ctx context.Context, categoryID int64, limit int) ([]domain.Book, error)
}
