package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Repos and services wrap these so callers can branch with errors.Is without
// leaking infrastructure details. ErrNotFound in particular is how a
// zero-row lookup is kept distinct from a real query failure.
var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
)
