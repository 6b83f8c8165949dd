// Package apperror defines the error taxonomy shared across services.
// Callers classify failures with errors.Is against the sentinels below;
// wrapping preserves the underlying cause for logging.
package apperror

import "errors"

// ErrValidation indicates unparseable or malformed user input.
var ErrValidation = errors.New("validation failed")

// ErrPersistence indicates an underlying store operation failed.
var ErrPersistence = errors.New("persistence failed")

// ErrImaging indicates label rendering failed.
var ErrImaging = errors.New("imaging failed")

// ErrDuplicate indicates a uniqueness constraint observed an existing record.
var ErrDuplicate = errors.New("duplicate record")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("not found")
