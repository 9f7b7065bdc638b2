package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/trivialab/trivia-backend/internal/model"
)

// categoryStore is the repository seam for category lookups.
type categoryStore interface {
	GetAll(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id int) (model.Category, error)
}

// CategoryCache caches the id-to-name category map. Implementations must
// treat failures as misses; the database path is always authoritative.
type CategoryCache interface {
	GetMap(ctx context.Context) (map[int]string, bool)
	SetMap(ctx context.Context, categories map[int]string)
}

// CategoryService resolves category references and serves the display-name
// map, with an optional cache in front of the store.
type CategoryService struct {
	categoryRepo categoryStore
	cache        CategoryCache
	log          zerolog.Logger
}

// NewCategoryService creates a new CategoryService. cache may be nil.
func NewCategoryService(categoryRepo categoryStore, cache CategoryCache, log zerolog.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		cache:        cache,
		log:          log.With().Str("component", "category_service").Logger(),
	}
}

// Resolve looks up a category by id, mapping an absent row to
// ErrCategoryNotFound. The all-categories sentinel must be branched on by
// the caller and never passed here; a dangling question reference thus
// degrades to a typed not-found, never a crash.
func (s *CategoryService) Resolve(ctx context.Context, id int) (model.Category, error) {
	c, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return model.Category{}, ErrCategoryNotFound
		}
		return model.Category{}, err
	}
	return c, nil
}

// AllAsMap returns every category as an id-to-display-name map. Categories
// are read-only here, which makes the map safe to cache; cache errors fall
// through to the store silently.
func (s *CategoryService) AllAsMap(ctx context.Context) (map[int]string, error) {
	if s.cache != nil {
		if m, ok := s.cache.GetMap(ctx); ok {
			return m, nil
		}
	}

	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	m := make(map[int]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}

	if s.cache != nil && len(m) > 0 {
		s.cache.SetMap(ctx, m)
	}
	return m, nil
}
