package domain

import "errors"

var (
	ErrUnknownChart    = errors.New("unknown chart")
	ErrSessionNotFound = errors.New("session not found")
	ErrUnsupportedSort = errors.New("unsupported sort mode")
	ErrInvalidInput    = errors.New("invalid input")
	ErrPresetNotFound  = errors.New("preset not found")
)
