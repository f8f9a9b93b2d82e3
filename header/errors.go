package header

import "github.com/ghettovoice/ascgrid/internal/errorutil"

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
