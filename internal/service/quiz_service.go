package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/trivialab/trivia-backend/internal/model"
	"github.com/trivialab/trivia-backend/internal/quiz"
)

// QuizService runs quiz draws. It is stateless between calls: the seen set
// travels with each request, so concurrent sessions never share anything
// but the store.
type QuizService struct {
	questionRepo questionStore
	selector     *quiz.Selector
	log          zerolog.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(questionRepo questionStore, selector *quiz.Selector, log zerolog.Logger) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		selector:     selector,
		log:          log.With().Str("component", "quiz_service").Logger(),
	}
}

// Draw picks one not-yet-seen question uniformly at random from the
// selected category, or from all questions for the CategoryAll sentinel.
// A nil question with a nil error means the pool is exhausted; the caller
// decides whether that ends the quiz. A question deleted since the last
// draw simply drops out of the pool on this one.
func (s *QuizService) Draw(ctx context.Context, categoryID int, previous []int) (*model.Question, error) {
	var (
		pool []model.Question
		err  error
	)
	if categoryID == model.CategoryAll {
		pool, err = s.questionRepo.ListAll(ctx)
	} else {
		pool, err = s.questionRepo.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, err
	}

	q, ok := s.selector.Draw(pool, previous)
	if !ok {
		s.log.Debug().Int("category", categoryID).Int("seen", len(previous)).Msg("quiz pool exhausted")
		return nil, nil
	}
	return &q, nil
}
