package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidConfig     = errors.New("invalid config")
	ErrEmptyFile         = errors.New("file is empty")
	ErrMissingColumns    = errors.New("does not have the required columns")
	ErrMalformedHeader   = errors.New("is not in correct format")
	ErrUndefinedGroup    = errors.New("does not contain the group(s) referred to")
	ErrInvalidExpression = errors.New("logical expression invalid; check that the specified group(s) exist")
	ErrEmptySelection    = errors.New("no members found in the specified set")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound       ErrorKind = "not_found"
	KindInvalidConfig  ErrorKind = "invalid_config"
	KindFormat         ErrorKind = "format"
	KindSchema         ErrorKind = "schema"
	KindReferential    ErrorKind = "referential"
	KindExpression     ErrorKind = "invalid_expression"
	KindEmptySelection ErrorKind = "empty_selection"
	KindExecution      ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: offending file
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

// IsWarning reports whether err is a non-fatal condition the caller should
// report and then carry on.
func IsWarning(err error) bool {
	return IsKind(err, KindEmptySelection)
}

// Describe renders err for a human: the offending file (if any) followed by
// the innermost domain message, without the operation prefix.
func Describe(err error) string {
	var oe *OpError
	if !errors.As(err, &oe) {
		return err.Error()
	}
	msg := ""
	if oe.Err != nil {
		msg = oe.Err.Error()
	}
	if oe.Path != "" {
		return oe.Path + " " + msg
	}
	return msg
}
