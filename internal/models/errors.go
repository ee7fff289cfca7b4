package models

import (
	"errors"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrComplaintNotFound  = errors.New("models: complaint not found")
	ErrPollNotFound       = errors.New("models: poll not found")
	ErrDuplicateVote      = errors.New("models: duplicate vote")
	ErrPollClosed         = errors.New("models: poll is closed")
	ErrInvalidOption      = errors.New("models: selected option is out of range")
	ErrForbidden          = errors.New("models: operation not permitted for role")
)
