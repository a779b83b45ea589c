package category

import (
	"context"

	"bookstore-api/internal/domain"
)

type Repository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindByCategoryID(ctx context.Context, categoryID int64) (*domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
}
