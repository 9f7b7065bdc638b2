package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/trivialab/trivia-backend/internal/model"
)

// pgForeignKeyViolation is the SQLSTATE the store raises when an inserted
// question references a category that does not exist.
const pgForeignKeyViolation = "23503"

// questionStore is the repository seam the services call through.
type questionStore interface {
	ListAll(ctx context.Context) ([]model.Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]model.Question, error)
	Search(ctx context.Context, term string) ([]model.Question, error)
	GetByID(ctx context.Context, id int) (model.Question, error)
	Create(ctx context.Context, q *model.Question) error
	Delete(ctx context.Context, id int) (bool, error)
	Count(ctx context.Context) (int, error)
}

// QuestionService handles question read/write logic.
type QuestionService struct {
	questionRepo questionStore
	log          zerolog.Logger
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(questionRepo questionStore, log zerolog.Logger) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		log:          log.With().Str("component", "question_service").Logger(),
	}
}

// ListAll retrieves every question ordered by id.
func (s *QuestionService) ListAll(ctx context.Context) ([]model.Question, error) {
	return s.questionRepo.ListAll(ctx)
}

// ListByCategory retrieves the questions of one category. Category
// existence is validated separately; an empty result here is not proof of
// a missing category.
func (s *QuestionService) ListByCategory(ctx context.Context, categoryID int) ([]model.Question, error) {
	return s.questionRepo.ListByCategory(ctx, categoryID)
}

// Search retrieves questions whose text contains term, case-insensitively.
func (s *QuestionService) Search(ctx context.Context, term string) ([]model.Question, error) {
	return s.questionRepo.Search(ctx, term)
}

// GetByID retrieves one question, mapping an absent row to
// ErrQuestionNotFound.
func (s *QuestionService) GetByID(ctx context.Context, id int) (model.Question, error) {
	q, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return model.Question{}, ErrQuestionNotFound
		}
		return model.Question{}, err
	}
	return q, nil
}

// Create inserts a question and fills in its assigned id. A foreign key
// rejection from the store surfaces as ErrInvalidCategory; referential
// integrity stays the store's job.
func (s *QuestionService) Create(ctx context.Context, q *model.Question) error {
	if err := s.questionRepo.Create(ctx, q); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return ErrInvalidCategory
		}
		return err
	}
	s.log.Debug().Int("question_id", q.ID).Msg("question created")
	return nil
}

// Delete removes a question by id. Deleting an id that no longer exists
// returns ErrQuestionNotFound, including on a repeat delete.
func (s *QuestionService) Delete(ctx context.Context, id int) error {
	deleted, err := s.questionRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrQuestionNotFound
	}
	s.log.Debug().Int("question_id", id).Msg("question deleted")
	return nil
}

// Count returns the total question count, always computed fresh.
func (s *QuestionService) Count(ctx context.Context) (int, error) {
	return s.questionRepo.Count(ctx)
}
