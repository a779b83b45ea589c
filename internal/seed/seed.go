package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type bookSeed struct {
	Title      string
	Author     string
	Desc       string
	Price      int64
	Rating     int
	IsFeatured bool
}

// Apply inserts a starter catalog for manual testing. It is idempotent via
// ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	catalog := map[string][]bookSeed{
		"Classics": {
			{Title: "Pride and Prejudice", Author: "Jane Austen", Desc: "A courtship novel of manners", Price: 999, Rating: 5, IsFeatured: true},
			{Title: "Moby-Dick", Author: "Herman Melville", Desc: "The hunt for the white whale", Price: 1299, Rating: 4},
			{Title: "Great Expectations", Author: "Charles Dickens", Price: 1099, Rating: 4},
		},
		"Mystery": {
			{Title: "The Hound of the Baskervilles", Author: "Arthur Conan Doyle", Price: 899, Rating: 5, IsFeatured: true},
			{Title: "And Then There Were None", Author: "Agatha Christie", Price: 949, Rating: 5},
		},
		"Science Fiction": {
			{Title: "The Time Machine", Author: "H. G. Wells", Price: 799, Rating: 4},
			{Title: "The War of the Worlds", Author: "H. G. Wells", Price: 849, Rating: 4},
		},
	}

	for name, books := range catalog {
		categoryID, err := ensureCategory(ctx, pool, name)
		if err != nil {
			return fmt.Errorf("ensure category %s: %w", name, err)
		}
		for _, b := range books {
			if err := upsertBook(ctx, pool, categoryID, b); err != nil {
				return fmt.Errorf("upsert book %s: %w", b.Title, err)
			}
		}
	}

	return nil
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, name string) (int64, error) {
	const q = `
INSERT INTO category (name)
VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING category_id
`
	var id int64
	if err := pool.QueryRow(ctx, q, name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func upsertBook(ctx context.Context, pool *pgxpool.Pool, categoryID int64, b bookSeed) error {
	const q = `
INSERT INTO book (title, author, description, price, rating, is_public, is_featured, category_id)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, TRUE, $6, $7)
ON CONFLICT (category_id, title) DO UPDATE SET
    author = EXCLUDED.author,
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    rating = EXCLUDED.rating,
    is_featured = EXCLUDED.is_featured
`
	_, err := pool.Exec(ctx, q, b.Title, b.Author, b.Desc, b.Price, b.Rating, b.IsFeatured, categoryID)
	return err
}
