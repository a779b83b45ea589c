package category

import (
	"context"
	"errors"

	"bookstore-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) FindAll(ctx context.Context) ([]domain.Category, error) {
	const q = `
SELECT category_id, name
FROM category
ORDER BY category_id ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) FindByCategoryID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	const q = `
SELECT category_id, name
FROM category
WHERE category_id = $1
`
	return r.fetchCategory(ctx, q, categoryID)
}

func (r *postgresRepo) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	const q = `
SELECT category_id, name
FROM category
WHERE name = $1
`
	return r.fetchCategory(ctx, q, name)
}

func (r *postgresRepo) fetchCategory(ctx context.Context, q string, arg interface{}) (*domain.Category, error) {
	var c domain.Category
	if err := r.pool.QueryRow(ctx, q, arg).Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
