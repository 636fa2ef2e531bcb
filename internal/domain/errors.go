package domain

import "errors"

// Sentinel errors shared by every layer. Repos and services wrap them with
// context; handlers match them with errors.Is to pick a status code.
var (
	// ErrNotFound: the destination or trip does not exist, or belongs to
	// another requester. Maps to 404.
	ErrNotFound = errors.New("not found")

	// ErrValidation: the request breaks a business rule such as an
	// out-of-range day count or unknown tier. Maps to 422.
	ErrValidation = errors.New("validation error")
)
