package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trivialab/trivia-backend/internal/model"
)

// QuestionRepository handles question data access.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

const questionColumns = `id, question, answer, category, difficulty`

// ListAll retrieves every question ordered by id so pagination windows
// stay stable across requests.
func (r *QuestionRepository) ListAll(ctx context.Context) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+questionColumns+` FROM questions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuestions(rows)
}

// ListByCategory retrieves the questions of one category ordered by id.
// An unknown category simply yields an empty slice; existence is checked
// separately through the category repository.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE category = $1 ORDER BY id`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuestions(rows)
}

// Search retrieves questions whose text contains term as a case-insensitive
// substring. Answer text is not searched. An empty term is a substring of
// every string, so it matches all questions.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+questionColumns+` FROM questions
		 WHERE question ILIKE '%' || $1 || '%' ORDER BY id`, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuestions(rows)
}

// GetByID retrieves a single question. Returns pgx.ErrNoRows when absent.
func (r *QuestionRepository) GetByID(ctx context.Context, id int) (model.Question, error) {
	var q model.Question
	err := r.pool.QueryRow(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE id = $1`, id,
	).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	return q, err
}

// Create inserts a new question and assigns its id. Category existence is
// enforced by the foreign key, not checked here.
func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO questions (question, answer, category, difficulty)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		q.Question, q.Answer, q.Category, q.Difficulty,
	).Scan(&q.ID)
}

// Delete removes a question by id. The bool reports whether a row was
// actually deleted, so a repeat delete of the same id comes back false.
func (r *QuestionRepository) Delete(ctx context.Context, id int) (bool, error) {
	ct, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

// Count returns the total question count, computed fresh on every call
// since writes can land between requests.
func (r *QuestionRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n)
	return n, err
}

type questionRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanQuestions(rows questionRows) ([]model.Question, error) {
	var questions []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
