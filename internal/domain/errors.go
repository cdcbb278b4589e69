package domain

import "errors"

var (
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrAccountNotFound      = errors.New("account not found")
	ErrInvalidTransaction   = errors.New("invalid transaction")
	ErrInvalidRatingScore   = errors.New("invalid rating score")
	ErrInvalidAccountID     = errors.New("invalid account id")
)
