package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trivialab/trivia-backend/internal/model"
	"github.com/trivialab/trivia-backend/internal/quiz"
)

func seedQuizStore() *memQuestionStore {
	store := newMemQuestionStore(1, 2)
	for i := 0; i < 4; i++ {
		store.add(model.Question{Question: "science", Answer: "A", Category: 1, Difficulty: 1})
	}
	for i := 0; i < 2; i++ {
		store.add(model.Question{Question: "art", Answer: "A", Category: 2, Difficulty: 1})
	}
	return store
}

func newQuizService(store *memQuestionStore) *QuizService {
	return NewQuizService(store, quiz.NewSelector(), zerolog.Nop())
}

func TestDrawFromCategoryStaysInCategory(t *testing.T) {
	svc := newQuizService(seedQuizStore())

	for i := 0; i < 25; i++ {
		q, err := svc.Draw(context.Background(), 2, nil)
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, 2, q.Category)
	}
}

func TestDrawAllCategoriesUsesFullPool(t *testing.T) {
	svc := newQuizService(seedQuizStore())

	seen := []int{}
	for i := 0; i < 6; i++ {
		q, err := svc.Draw(context.Background(), model.CategoryAll, seen)
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.NotContains(t, seen, q.ID)
		seen = append(seen, q.ID)
	}

	q, err := svc.Draw(context.Background(), model.CategoryAll, seen)
	require.NoError(t, err)
	assert.Nil(t, q, "all six questions seen, pool must be exhausted")
}

func TestDrawExcludesPreviousQuestions(t *testing.T) {
	store := seedQuizStore()
	svc := newQuizService(store)

	// Category 1 holds ids 1-4; with three of them seen only one remains.
	for i := 0; i < 20; i++ {
		q, err := svc.Draw(context.Background(), 1, []int{1, 2, 3})
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, 4, q.ID)
	}
}

func TestDrawExhaustedCategory(t *testing.T) {
	svc := newQuizService(seedQuizStore())

	q, err := svc.Draw(context.Background(), 2, []int{5, 6})
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestDrawEmptyCategory(t *testing.T) {
	store := newMemQuestionStore(1)
	svc := newQuizService(store)

	q, err := svc.Draw(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestDrawPropagatesStoreError(t *testing.T) {
	store := seedQuizStore()
	store.failWith = errors.New("connection reset")
	svc := newQuizService(store)

	_, err := svc.Draw(context.Background(), model.CategoryAll, nil)
	assert.Error(t, err)
}
