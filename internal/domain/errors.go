package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownUnit     = errors.New("unknown unit")
	ErrInvalidInput    = errors.New("invalid input")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrInvalidRegistry = errors.New("invalid registry")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound        ErrorKind = "not_found"
	KindInvalidConfig   ErrorKind = "invalid_config"
	KindExecution       ErrorKind = "execution"
	KindUnknownCategory ErrorKind = "unknown_category"
	KindUnknownUnit     ErrorKind = "unknown_unit"
	KindInvalidInput    ErrorKind = "invalid_input"
	KindDivisionByZero  ErrorKind = "division_by_zero"
	KindInvalidRegistry ErrorKind = "invalid_registry"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

func unknownCategory(op, category string) error {
	return &OpError{
		Op:   op,
		Kind: KindUnknownCategory,
		Err:  fmt.Errorf("%q: %w", category, ErrUnknownCategory),
	}
}

func unknownUnit(op, category, unit string) error {
	return &OpError{
		Op:   op,
		Kind: KindUnknownUnit,
		Err:  fmt.Errorf("%q in category %q: %w", unit, category, ErrUnknownUnit),
	}
}

func invalidRegistry(format string, args ...any) error {
	return &OpError{
		Op:   "domain.newregistry",
		Kind: KindInvalidRegistry,
		Err:  fmt.Errorf(format+": %w", append(args, ErrInvalidRegistry)...),
	}
}
