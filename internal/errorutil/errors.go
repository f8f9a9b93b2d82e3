package errorutil

//go:generate go tool errtrace -w .

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ghettovoice/ascgrid/internal/util"
)

// Error is a string type that implements the error interface.
type Error string

func (s Error) Error() string { return string(s) }

// Class is a sentinel error that also matches its parent sentinel with [errors.Is].
type Class struct {
	msg    string
	parent error
}

func (c Class) Error() string { return c.msg }

func (c Class) Unwrap() error { return c.parent }

const (
	// ErrInvalidArgument is returned when an API is used with a missing or empty argument.
	ErrInvalidArgument Error = "invalid argument"
	// ErrInvalidNumberFormat is returned when a header value is not a valid numeral.
	ErrInvalidNumberFormat Error = "invalid number format"
	// ErrGridInvalid is the root of all grid content errors.
	ErrGridInvalid Error = "invalid grid"
)

var (
	// ErrHeaderInvalid is returned when a header is incomplete or contradictory.
	ErrHeaderInvalid = Class{"invalid header", ErrGridInvalid}
	// ErrHeaderSyntax is returned when a header field appears out of grammar order.
	ErrHeaderSyntax = Class{"header syntax error", ErrHeaderInvalid}
	// ErrGridSize is returned when the body disagrees with the declared grid size.
	ErrGridSize = Class{"grid size mismatch", ErrGridInvalid}
)

// NewWrapperError creates or wraps an error with a sentinel error.
// It supports multiple argument patterns:
//   - No args: returns sentinel
//   - error arg: wraps with sentinel (unless already wrapped)
//   - string arg: formats as message with sentinel
//   - string + args: formats with Sprintf then wraps with sentinel
func NewWrapperError(sentinel error, args ...any) error {
	if len(args) == 0 {
		return sentinel //errtrace:skip
	}
	switch v := args[0].(type) {
	case error:
		if errors.Is(v, sentinel) {
			return v //errtrace:skip
		}
		return fmt.Errorf("%w: %w", sentinel, v) //errtrace:skip
	case string:
		if len(args) == 1 {
			return fmt.Errorf("%w: %s", sentinel, v) //errtrace:skip
		}
		return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(v, args[1:]...)) //errtrace:skip
	default:
		return sentinel //errtrace:skip
	}
}

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return NewWrapperError(ErrInvalidArgument, args...) //errtrace:skip
}

// NewHeaderInvalidError creates a new error with [ErrHeaderInvalid].
func NewHeaderInvalidError(args ...any) error {
	return NewWrapperError(ErrHeaderInvalid, args...) //errtrace:skip
}

// JoinPrefix joins errs under a common prefix line.
// A single error is returned as "prefix: err", nil errors are skipped on rendering.
func JoinPrefix(prefix string, errs ...error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return fmt.Errorf("%s: %w", strings.TrimRight(prefix, ":"), errs[0]) //errtrace:skip
	}
	return &multiError{prefix: prefix, errs: errs} //errtrace:skip
}

type multiError struct {
	prefix string
	errs   []error
}

func (e *multiError) Error() string {
	if len(e.errs) == 0 {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(e.prefix)
	e.writeErrors(sb, "")

	return sb.String()
}

func (e *multiError) writeErrors(sb *strings.Builder, indent string) {
	for _, err := range e.errs {
		if err == nil {
			continue
		}

		sb.WriteString("\n")
		sb.WriteString(indent)
		sb.WriteString("  - ")

		if nested, ok := err.(*multiError); ok { //nolint:errorlint
			label := nested.prefix
			if label == "" {
				label = "multiple errors"
			}
			sb.WriteString(label)
			nested.writeErrors(sb, indent+"  ")
			continue
		}

		msg := err.Error()
		if strings.Contains(msg, "\n") {
			msg = strings.ReplaceAll(msg, "\n", "\n"+indent+"    ")
		}
		sb.WriteString(msg)
	}
}

func (e *multiError) Unwrap() []error { return e.errs }
