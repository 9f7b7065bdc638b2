package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trivialab/trivia-backend/internal/model"
)

func poolOf(ids ...int) []model.Question {
	pool := make([]model.Question, 0, len(ids))
	for _, id := range ids {
		pool = append(pool, model.Question{ID: id, Question: "q", Answer: "a", Category: 1, Difficulty: 1})
	}
	return pool
}

func TestEligibleExcludesSeen(t *testing.T) {
	pool := poolOf(1, 2, 3, 4, 5)

	eligible := Eligible(pool, []int{2, 4})

	require.Len(t, eligible, 3)
	assert.Equal(t, 1, eligible[0].ID)
	assert.Equal(t, 3, eligible[1].ID)
	assert.Equal(t, 5, eligible[2].ID)
}

func TestEligibleIgnoresUnknownSeenIDs(t *testing.T) {
	pool := poolOf(1, 2)
	assert.Len(t, Eligible(pool, []int{99, 100}), 2)
}

func TestEligibleEmptyPool(t *testing.T) {
	assert.Empty(t, Eligible(nil, []int{1}))
}

func TestDrawNeverReturnsSeen(t *testing.T) {
	pool := poolOf(1, 2, 3, 4, 5, 6)
	selector := NewSelector()

	// Simulate a full session: each draw feeds the next seen set.
	seen := []int{}
	for range pool {
		q, ok := selector.Draw(pool, seen)
		require.True(t, ok)
		assert.NotContains(t, seen, q.ID)
		seen = append(seen, q.ID)
	}

	_, ok := selector.Draw(pool, seen)
	assert.False(t, ok, "fully seen pool must report exhaustion")
}

func TestDrawExhaustedStaysExhausted(t *testing.T) {
	pool := poolOf(7, 8)
	selector := NewSelector()

	for i := 0; i < 20; i++ {
		_, ok := selector.Draw(pool, []int{7, 8, 9})
		assert.False(t, ok)
	}
}

func TestDrawEmptyPool(t *testing.T) {
	selector := NewSelector()
	_, ok := selector.Draw(nil, nil)
	assert.False(t, ok)
}

func TestDrawPicksByEligibleIndex(t *testing.T) {
	pool := poolOf(10, 20, 30, 40)

	// A fixed index source makes the pick deterministic: index 1 of the
	// eligible set {20, 40} after excluding 10 and 30.
	selector := &Selector{intn: func(n int) int { return 1 }}

	q, ok := selector.Draw(pool, []int{10, 30})
	require.True(t, ok)
	assert.Equal(t, 40, q.ID)
}

// With three eligible questions, repeated draws should land on each about
// a third of the time. Loose bounds keep the test stable while still
// catching a biased pick (e.g. always index 0 or insertion-order skew).
func TestDrawUniformity(t *testing.T) {
	pool := poolOf(1, 2, 3, 4, 5)
	seen := []int{2, 4}
	selector := NewSelector()

	const draws = 6000
	counts := map[int]int{}
	for i := 0; i < draws; i++ {
		q, ok := selector.Draw(pool, seen)
		require.True(t, ok)
		counts[q.ID]++
	}

	require.Len(t, counts, 3)
	for _, id := range []int{1, 3, 5} {
		assert.Greater(t, counts[id], draws/3-400, "question %d drawn too rarely", id)
		assert.Less(t, counts[id], draws/3+400, "question %d drawn too often", id)
	}
}
