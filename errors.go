package ascgrid

import (
	"fmt"

	"github.com/ghettovoice/ascgrid/internal/errorutil"
)

const (
	ErrInvalidArgument     = errorutil.ErrInvalidArgument
	ErrInvalidNumberFormat = errorutil.ErrInvalidNumberFormat
	ErrGridInvalid         = errorutil.ErrGridInvalid
)

var (
	ErrHeaderInvalid = errorutil.ErrHeaderInvalid
	ErrHeaderSyntax  = errorutil.ErrHeaderSyntax
	ErrGridSize      = errorutil.ErrGridSize
)

// SizeError reports a grid body that disagrees with the size declared in the header.
//
// A column mismatch has Row set to the 1-based body row. Otherwise the row count is wrong:
// Found is the number of rows read, or -1 if the body has more rows than expected.
type SizeError struct {
	Row      int
	Found    int
	Expected int
}

func (e *SizeError) Error() string {
	return ErrGridSize.Error() + ": " + e.detail()
}

func (e *SizeError) detail() string {
	switch {
	case e.Row > 0:
		return fmt.Sprintf("row %d: found %d columns, expected %d", e.Row, e.Found, e.Expected)
	case e.Found < 0:
		return fmt.Sprintf("expected %d rows, found more", e.Expected)
	default:
		return fmt.Sprintf("expected %d rows, found %d", e.Expected, e.Found)
	}
}

func (e *SizeError) Unwrap() error { return ErrGridSize }

// ParseError reports a header line that could not be read.
type ParseError struct {
	// Line is the 1-based input line number.
	Line int
	// Text is the line as read.
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
