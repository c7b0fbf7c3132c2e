package norgfmt

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingChild reports a node that violates a formatter's structural
	// precondition, such as a heading without a star prefix. The render
	// aborts; a half-rendered document is worse than no output.
	ErrMissingChild = errors.New("missing required child")
	// ErrMalformedSpan reports a node span that cannot be resolved to valid
	// source text.
	ErrMalformedSpan = errors.New("malformed source span")
)

func missingChild(kind Kind, what string) error {
	return fmt.Errorf("%s has no %s: %w", kind, what, ErrMissingChild)
}
