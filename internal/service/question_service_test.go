package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trivialab/trivia-backend/internal/model"
)

func newQuestionService(store *memQuestionStore) *QuestionService {
	return NewQuestionService(store, zerolog.Nop())
}

func TestCreateAssignsIDAndRoundTrips(t *testing.T) {
	store := newMemQuestionStore(2)
	svc := newQuestionService(store)

	q := &model.Question{Question: "Q", Answer: "A", Category: 2, Difficulty: 3}
	require.NoError(t, svc.Create(context.Background(), q))
	require.NotZero(t, q.ID)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, *q, all[0])
}

func TestCreateUnresolvableCategory(t *testing.T) {
	store := newMemQuestionStore(1)
	svc := newQuestionService(store)

	q := &model.Question{Question: "Q", Answer: "A", Category: 42, Difficulty: 1}
	err := svc.Create(context.Background(), q)
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestDeleteThenFetchNotFound(t *testing.T) {
	store := newMemQuestionStore(1)
	q := store.add(model.Question{Question: "Q", Answer: "A", Category: 1, Difficulty: 1})
	svc := newQuestionService(store)

	require.NoError(t, svc.Delete(context.Background(), q.ID))

	_, err := svc.GetByID(context.Background(), q.ID)
	assert.ErrorIs(t, err, ErrQuestionNotFound)

	// A repeat delete is not-found, not success.
	err = svc.Delete(context.Background(), q.ID)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestDeletePropagatesStoreError(t *testing.T) {
	store := newMemQuestionStore(1)
	store.failWith = errors.New("connection reset")
	svc := newQuestionService(store)

	err := svc.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrQuestionNotFound)
}

func TestSearchMatchesSubstringCaseInsensitive(t *testing.T) {
	store := newMemQuestionStore(1)
	store.add(model.Question{Question: "What is the Title of the book?", Answer: "A", Category: 1, Difficulty: 1})
	store.add(model.Question{Question: "Entirely unrelated", Answer: "B", Category: 1, Difficulty: 1})
	store.add(model.Question{Question: "subtitle trivia", Answer: "C", Category: 1, Difficulty: 1})
	svc := newQuestionService(store)

	got, err := svc.Search(context.Background(), "title")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, q := range got {
		assert.Contains(t, []string{"What is the Title of the book?", "subtitle trivia"}, q.Question)
	}
}

func TestSearchEmptyTermMatchesEverything(t *testing.T) {
	store := newMemQuestionStore(1)
	store.add(model.Question{Question: "one", Answer: "A", Category: 1, Difficulty: 1})
	store.add(model.Question{Question: "two", Answer: "B", Category: 1, Difficulty: 1})
	svc := newQuestionService(store)

	got, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCountReflectsWrites(t *testing.T) {
	store := newMemQuestionStore(1)
	svc := newQuestionService(store)

	n, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	q := &model.Question{Question: "Q", Answer: "A", Category: 1, Difficulty: 1}
	require.NoError(t, svc.Create(context.Background(), q))

	n, err = svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
