package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trivialab/trivia-backend/internal/model"
)

// CategoryRepository handles category data access. Categories are
// read-only from this service's perspective.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// GetAll retrieves every category ordered by id.
func (r *CategoryRepository) GetAll(ctx context.Context) ([]model.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, type FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetByID retrieves a single category. Returns pgx.ErrNoRows when absent.
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (model.Category, error) {
	var c model.Category
	err := r.pool.QueryRow(ctx, `SELECT id, type FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Type)
	return c, err
}
