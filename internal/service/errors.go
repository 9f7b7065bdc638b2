package service

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// Domain errors. Handlers are the single place these are translated into
// response status codes; nothing below the handler layer picks a status.
var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidCategory  = errors.New("category reference does not resolve")
)

// isNoRows reports whether err is the store's empty-result sentinel.
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
