package service

import (
	"context"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/trivialab/trivia-backend/internal/model"
)

// memQuestionStore is an in-memory questionStore with the same observable
// behavior as the pgx-backed repository.
type memQuestionStore struct {
	questions  map[int]model.Question
	categories map[int]bool
	nextID     int
	failWith   error
}

func newMemQuestionStore(categories ...int) *memQuestionStore {
	cats := make(map[int]bool, len(categories))
	for _, id := range categories {
		cats[id] = true
	}
	return &memQuestionStore{
		questions:  make(map[int]model.Question),
		categories: cats,
		nextID:     1,
	}
}

func (s *memQuestionStore) add(q model.Question) model.Question {
	q.ID = s.nextID
	s.nextID++
	s.questions[q.ID] = q
	return q
}

func (s *memQuestionStore) sorted() []model.Question {
	out := make([]model.Question, 0, len(s.questions))
	for _, q := range s.questions {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memQuestionStore) ListAll(ctx context.Context) ([]model.Question, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.sorted(), nil
}

func (s *memQuestionStore) ListByCategory(ctx context.Context, categoryID int) ([]model.Question, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	var out []model.Question
	for _, q := range s.sorted() {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *memQuestionStore) Search(ctx context.Context, term string) ([]model.Question, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	var out []model.Question
	for _, q := range s.sorted() {
		if strings.Contains(strings.ToLower(q.Question), strings.ToLower(term)) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *memQuestionStore) GetByID(ctx context.Context, id int) (model.Question, error) {
	if s.failWith != nil {
		return model.Question{}, s.failWith
	}
	q, ok := s.questions[id]
	if !ok {
		return model.Question{}, pgx.ErrNoRows
	}
	return q, nil
}

func (s *memQuestionStore) Create(ctx context.Context, q *model.Question) error {
	if s.failWith != nil {
		return s.failWith
	}
	if !s.categories[q.Category] {
		return &pgconn.PgError{Code: pgForeignKeyViolation, Message: "violates foreign key constraint"}
	}
	*q = s.add(*q)
	return nil
}

func (s *memQuestionStore) Delete(ctx context.Context, id int) (bool, error) {
	if s.failWith != nil {
		return false, s.failWith
	}
	if _, ok := s.questions[id]; !ok {
		return false, nil
	}
	delete(s.questions, id)
	return true, nil
}

func (s *memQuestionStore) Count(ctx context.Context) (int, error) {
	if s.failWith != nil {
		return 0, s.failWith
	}
	return len(s.questions), nil
}

// memCategoryStore is an in-memory categoryStore.
type memCategoryStore struct {
	categories []model.Category
	failWith   error
}

func (s *memCategoryStore) GetAll(ctx context.Context) ([]model.Category, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.categories, nil
}

func (s *memCategoryStore) GetByID(ctx context.Context, id int) (model.Category, error) {
	if s.failWith != nil {
		return model.Category{}, s.failWith
	}
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Category{}, pgx.ErrNoRows
}

// memCategoryCache records cache traffic for assertions.
type memCategoryCache struct {
	stored map[int]string
	gets   int
	sets   int
}

func (c *memCategoryCache) GetMap(ctx context.Context) (map[int]string, bool) {
	c.gets++
	if c.stored == nil {
		return nil, false
	}
	return c.stored, true
}

func (c *memCategoryCache) SetMap(ctx context.Context, categories map[int]string) {
	c.sets++
	c.stored = categories
}
