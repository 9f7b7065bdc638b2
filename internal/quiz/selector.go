// Package quiz implements the random-draw-without-repeat selection used to
// run a quiz session.
package quiz

import (
	"math/rand/v2"

	"github.com/trivialab/trivia-backend/internal/model"
)

// Selector picks one not-yet-seen question uniformly at random. It holds
// no session state: the caller supplies the seen set on every draw and
// appends the returned id before the next one.
type Selector struct {
	intn func(n int) int
}

// NewSelector returns a Selector backed by the default random source.
func NewSelector() *Selector {
	return &Selector{intn: rand.IntN}
}

// Draw returns one question chosen uniformly from pool minus seen, or
// ok=false when every question in the pool has been seen. Selection is a
// single index pick into the eligible set, so cost stays linear in the
// pool and there is no retry loop to degenerate near exhaustion.
func (s *Selector) Draw(pool []model.Question, seen []int) (model.Question, bool) {
	eligible := Eligible(pool, seen)
	if len(eligible) == 0 {
		return model.Question{}, false
	}
	return eligible[s.intn(len(eligible))], true
}

// Eligible returns the questions in pool whose ids are not in seen,
// preserving pool order.
func Eligible(pool []model.Question, seen []int) []model.Question {
	if len(pool) == 0 {
		return nil
	}

	exclude := make(map[int]struct{}, len(seen))
	for _, id := range seen {
		exclude[id] = struct{}{}
	}

	eligible := make([]model.Question, 0, len(pool))
	for _, q := range pool {
		if _, skip := exclude[q.ID]; !skip {
			eligible = append(eligible, q)
		}
	}
	return eligible
}
