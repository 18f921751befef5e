// Package errs holds the sentinel errors shared by the use-case
// services. Adapters translate store-specific failures into these and
// controllers map them onto HTTP responses.
package errs

import "errors"

var (
	// ErrNotFound: the referenced entity does not exist, or fails its
	// visibility predicate for the requesting actor.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput: submitted fields failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrForbidden: the actor is not the resource's author.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict: a uniqueness constraint (username) was violated.
	ErrConflict = errors.New("conflict")
)
