package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBreakNotFound      = errors.New("break not found")
	ErrBoardNotFound      = errors.New("board not found")
	ErrEntryNotFound      = errors.New("journal entry not found")
	ErrEntryConflict      = errors.New("journal entry uuid belongs to another account")
	ErrNotSupported       = errors.New("operation not supported")
	ErrDatabaseError      = errors.New("database error")
)
