package domain

import "errors"

// ErrNotFound is returned by service functions when the addressed day,
// country visit, activity or attachment does not exist in the current trip,
// and by the repo when a key has no stored value.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing window date, departure before arrival,
// malformed activity time, unknown country).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
