// internal/services/errors.go
package services

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrNotReviewOwner     = errors.New("not the review owner")
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid account or password")
)
