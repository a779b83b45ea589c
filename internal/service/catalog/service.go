package catalog

import (
	"context"

	"bookstore-api/internal/domain"
	bookrepo "bookstore-api/internal/repository/book"
	categoryrepo "bookstore-api/internal/repository/category"
)

const defaultSuggestedLimit = 3

// Service exposes catalog reads: categories, their books, and per-category
// book suggestions.
type Service struct {
	categories categoryRepo
	books      bookRepo
}

type categoryRepo interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindByCategoryID(ctx context.Context, categoryID int64) (*domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
}

type bookRepo interface {
	FindByBookID(ctx context.Context, bookID int64) (*domain.Book, error)
	FindByCategoryID(ctx context.Context, categoryID int64) ([]domain.Book, error)
	FindRandomByCategoryID(ctx context.Context, categoryID int64, limit int) ([]domain.Book, error)
}

func New(categories categoryrepo.Repository, books bookrepo.Repository) *Service {
	return &Service{categories: categories, books: books}
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.FindAll(ctx)
}

func (s *Service) Category(ctx context.Context, categoryID int64) (*domain.Category, error) {
	return s.categories.FindByCategoryID(ctx, categoryID)
}

func (s *Service) CategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	return s.categories.FindByName(ctx, name)
}

func (s *Service) Book(ctx context.Context, bookID int64) (*domain.Book, error) {
	return s.books.FindByBookID(ctx, bookID)
}

func (s *Service) BooksByCategory(ctx context.Context, categoryID int64) ([]domain.Book, error) {
	if _, err := s.categories.FindByCategoryID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.books.FindByCategoryID(ctx, categoryID)
}

// SuggestedBooks returns up to limit random books from a category. A
// non-positive limit falls back to the default.
func (s *Service) SuggestedBooks(ctx context.Context, categoryID int64, limit int) ([]domain.Book, error) {
	if limit <= 0 {
		limit = defaultSuggestedLimit
	}
	if _, err := s.categories.FindByCategoryID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.books.FindRandomByCategoryID(ctx, categoryID, limit)
}
