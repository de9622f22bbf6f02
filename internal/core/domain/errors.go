package domain

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrSessionNotFound  = errors.New("session not found")
	ErrYearLevelRange   = errors.New("year level out of range")
)
