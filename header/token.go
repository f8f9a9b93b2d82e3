package header

//go:generate go tool errtrace -w .

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/ascgrid/internal/errorutil"
	"github.com/ghettovoice/ascgrid/internal/grammar"
	"github.com/ghettovoice/ascgrid/internal/util"
)

// Token is a single header field: its kind, the verbatim value text and the parsed number.
// The zero value is an undefined token.
type Token struct {
	kind Kind
	text string
	fval float64
	ival int
}

// ParseToken parses a name/value pair into a token.
// An unknown name is reported with ok == false and no error.
func ParseToken(name, text string) (tok Token, ok bool, err error) {
	if name == "" {
		return Token{}, false, errtrace.Wrap(errorutil.NewInvalidArgumentError("empty token name"))
	}
	kind, ok := LookupKind(name)
	if !ok {
		return Token{}, false, nil
	}
	tok, err = NewToken(kind, text)
	if err != nil {
		return Token{}, false, errtrace.Wrap(err)
	}
	return tok, true, nil
}

// NewToken creates a token of the given kind from the value text.
func NewToken(kind Kind, text string) (Token, error) {
	if !kind.IsValid() {
		return Token{}, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown token kind %d", int(kind)))
	}
	if !grammar.IsNumeral(text) {
		return Token{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidNumberFormat, "%s %q", kind, text))
	}
	f, n, err := kinds[kind].parse(text)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return Token{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidNumberFormat, "%s %q: %v", kind, text, err))
	}
	return Token{kind: kind, text: text, fval: f, ival: n}, nil
}

// IsToken reports whether name is a known header field name, ignoring case.
func IsToken(name string) (bool, error) {
	if name == "" {
		return false, errtrace.Wrap(errorutil.NewInvalidArgumentError("empty token name"))
	}
	_, ok := LookupKind(name)
	return ok, nil
}

// Kind returns the field kind.
func (tok Token) Kind() Kind { return tok.kind }

// Text returns the value exactly as it was given.
func (tok Token) Text() string { return tok.text }

// Float returns the value as float64. Integer kinds are converted.
func (tok Token) Float() float64 { return tok.fval }

// Int returns the value of integer kinds, zero otherwise.
func (tok Token) Int() int { return tok.ival }

// IsZero reports whether the token is undefined.
func (tok Token) IsZero() bool { return tok.kind == KindUnknown }

// RenderTo writes the header line of the token without the line terminator.
func (tok Token) RenderTo(w io.Writer) (num int, err error) {
	if tok.IsZero() {
		return 0, nil
	}
	return errtrace.Wrap2(fmt.Fprintf(w, "%-13s %s", tok.kind, tok.text))
}

// Render returns the header line of the token.
func (tok Token) Render() string {
	if tok.IsZero() {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	tok.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// String returns the header line of the token.
func (tok Token) String() string { return tok.Render() }

// Format implements fmt.Formatter.
func (tok Token) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		if verb == 'v' && (f.Flag('+') || f.Flag('#')) {
			fmt.Fprintf(f, "header.Token{kind: %s, text: %q}", tok.kind, tok.text)
			return
		}
		fmt.Fprint(f, tok.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(tok.String()))
	default:
		fmt.Fprintf(f, "%%!%c(header.Token=%s)", verb, tok.String())
	}
}

// Equal reports whether both tokens have the same kind and value text.
func (tok Token) Equal(other Token) bool {
	return tok.kind == other.kind && tok.text == other.text
}
