package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidRequest = errors.New("invalid request")
	ErrValidation     = errors.New("validation error")
)

// ProviderError wraps any failure talking to a completion provider:
// transport errors, API errors, timeouts, open circuits and empty answers.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Provider == "" {
		return fmt.Sprintf("completion provider: %v", e.Err)
	}
	return fmt.Sprintf("completion provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// NewProviderError wraps err unless it already is a *ProviderError.
func NewProviderError(provider string, err error) error {
	if err == nil {
		return nil
	}
	var perr *ProviderError
	if errors.As(err, &perr) {
		return err
	}
	return &ProviderError{Provider: provider, Err: err}
}
