package header

//go:generate go tool errtrace -w .

import (
	"io"
	"iter"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/ascgrid/internal/errorutil"
	"github.com/ghettovoice/ascgrid/internal/ioutil"
	"github.com/ghettovoice/ascgrid/internal/util"
)

// Header is the header of an ESRI ASCII grid.
//
// Tokens are fed in arrival order with [Header.Store], after that the header can be
// mutated any number of times. The zero value is an empty header ready to accept ncols.
// A Header is not safe for concurrent mutation.
type Header struct {
	state state

	ncols, nrows         Token
	xllcorner, yllcorner Token
	xllcenter, yllcenter Token
	cellsize, dx, dy     Token
	nodata               Token
	nodataOrig           string
	nodataOrigSet        bool
}

// Store appends the next token read from the input.
// A token out of grammar order fails with [ErrHeaderSyntax] and leaves the header unchanged.
func (h *Header) Store(tok Token) error {
	if tok.IsZero() {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("undefined token"))
	}
	st, err := h.state.next(tok.Kind())
	if err != nil {
		return errtrace.Wrap(err)
	}
	*h.field(tok.Kind()) = tok
	h.state = st
	return nil
}

func (h *Header) field(kind Kind) *Token {
	switch kind {
	case NCols:
		return &h.ncols
	case NRows:
		return &h.nrows
	case XllCorner:
		return &h.xllcorner
	case YllCorner:
		return &h.yllcorner
	case XllCenter:
		return &h.xllcenter
	case YllCenter:
		return &h.yllcenter
	case CellSize:
		return &h.cellsize
	case DX:
		return &h.dx
	case DY:
		return &h.dy
	case NoData:
		return &h.nodata
	default:
		panic("header: unexpected token kind " + kind.String())
	}
}

// Complete reports whether the stored tokens form a complete header.
func (h *Header) Complete() bool { return h.state.complete() }

// Terminal reports whether the header accepts no more tokens.
func (h *Header) Terminal() bool { return h.state.terminal() }

// Validate checks that the grid size is defined and not negative, and that the position
// and the cell size are defined.
func (h *Header) Validate() error {
	if h.ncols.Int() < 0 || h.nrows.Int() < 0 {
		return errtrace.Wrap(errorutil.NewHeaderInvalidError("negative grid size"))
	}
	if h.state.complete() {
		return nil
	}
	if h.ncols.IsZero() || h.nrows.IsZero() {
		return errtrace.Wrap(errorutil.NewHeaderInvalidError("grid size undefined"))
	}
	if h.IsCorner() == h.IsCenter() {
		return errtrace.Wrap(errorutil.NewHeaderInvalidError("position undefined"))
	}
	if h.IsCellSquare() == h.IsCellRectangular() || (h.IsCellRectangular() && (h.dx.IsZero() || h.dy.IsZero())) {
		return errtrace.Wrap(errorutil.NewHeaderInvalidError("cell size undefined"))
	}
	return nil
}

// IsCorner reports whether the position is given by the lower-left cell corner.
func (h *Header) IsCorner() bool { return !h.xllcorner.IsZero() && !h.yllcorner.IsZero() }

// IsCenter reports whether the position is given by the lower-left cell center.
func (h *Header) IsCenter() bool { return !h.xllcenter.IsZero() && !h.yllcenter.IsZero() }

// IsCellSquare reports whether a single cellsize is defined.
func (h *Header) IsCellSquare() bool { return !h.cellsize.IsZero() }

// IsCellRectangular reports whether dx or dy is defined.
func (h *Header) IsCellRectangular() bool { return !h.dx.IsZero() || !h.dy.IsZero() }

func (h *Header) NCols() Token { return h.ncols }

func (h *Header) NRows() Token { return h.nrows }

func (h *Header) XllCorner() (Token, bool) { return h.xllcorner, !h.xllcorner.IsZero() }

func (h *Header) YllCorner() (Token, bool) { return h.yllcorner, !h.yllcorner.IsZero() }

func (h *Header) XllCenter() (Token, bool) { return h.xllcenter, !h.xllcenter.IsZero() }

func (h *Header) YllCenter() (Token, bool) { return h.yllcenter, !h.yllcenter.IsZero() }

func (h *Header) CellSize() (Token, bool) { return h.cellsize, !h.cellsize.IsZero() }

func (h *Header) DX() (Token, bool) { return h.dx, !h.dx.IsZero() }

func (h *Header) DY() (Token, bool) { return h.dy, !h.dy.IsZero() }

func (h *Header) NoData() (Token, bool) { return h.nodata, !h.nodata.IsZero() }

// SetCorner replaces the position with the lower-left corner (x, y) and clears the center.
func (h *Header) SetCorner(x, y string) error {
	xt, yt, err := newTokenPair(XllCorner, x, YllCorner, y)
	if err != nil {
		return errtrace.Wrap(err)
	}
	h.xllcorner, h.yllcorner = xt, yt
	h.xllcenter, h.yllcenter = Token{}, Token{}
	return nil
}

// SetCenter replaces the position with the lower-left cell center (x, y) and clears the corner.
func (h *Header) SetCenter(x, y string) error {
	xt, yt, err := newTokenPair(XllCenter, x, YllCenter, y)
	if err != nil {
		return errtrace.Wrap(err)
	}
	h.xllcenter, h.yllcenter = xt, yt
	h.xllcorner, h.yllcorner = Token{}, Token{}
	return nil
}

// SetCellSize replaces the cell size with a uniform one and clears dx and dy.
func (h *Header) SetCellSize(size string) error {
	tok, err := NewToken(CellSize, size)
	if err != nil {
		return errtrace.Wrap(err)
	}
	h.cellsize = tok
	h.dx, h.dy = Token{}, Token{}
	return nil
}

// SetCellSizeXY replaces the cell size with a rectangular one and clears cellsize.
func (h *Header) SetCellSizeXY(dx, dy string) error {
	dxt, dyt, err := newTokenPair(DX, dx, DY, dy)
	if err != nil {
		return errtrace.Wrap(err)
	}
	h.dx, h.dy = dxt, dyt
	h.cellsize = Token{}
	return nil
}

// SetNoData replaces the NODATA value, an empty text clears it.
//
// The first time a defined NODATA value is overwritten its text is remembered as the original
// sentinel, see [Header.NoDataReplacer]. Later overwrites keep that first original.
func (h *Header) SetNoData(text string) error {
	if text == "" {
		h.nodata = Token{}
		return nil
	}
	tok, err := NewToken(NoData, text)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if !h.nodata.IsZero() && !h.nodataOrigSet {
		h.nodataOrig = h.nodata.Text()
		h.nodataOrigSet = true
	}
	h.nodata = tok
	return nil
}

// ForceCellSquare converts rectangular cells into square ones.
//
// The larger of dx and dy becomes the cellsize. When dx > dy the yllcorner is moved down by
// (dx - dy) * nrows, when dy > dx the xllcorner is moved left by (dy - dx) * ncols.
// Square cells are left as is.
func (h *Header) ForceCellSquare() error {
	if !h.IsCorner() && !h.IsCenter() {
		return errtrace.Wrap(errorutil.NewHeaderInvalidError("position undefined"))
	}
	if !h.IsCellRectangular() {
		return nil
	}
	if h.dx.IsZero() || h.dy.IsZero() {
		return errtrace.Wrap(errorutil.NewHeaderInvalidError("rectangular cell size partially defined"))
	}

	d, e := h.dx.Float(), h.dy.Float()
	if d != e && !h.IsCorner() {
		return errtrace.Wrap(errorutil.NewHeaderInvalidError("corner position required to shift the origin"))
	}

	var (
		size = h.dx
		x, y = h.xllcorner, h.yllcorner
		err  error
	)
	switch {
	case d > e:
		shift := float64((d - e) * float64(h.nrows.Int()))
		if y, err = NewToken(YllCorner, FormatFloat(h.yllcorner.Float()-shift)); err != nil {
			return errtrace.Wrap(err)
		}
	case d < e:
		size = h.dy
		shift := float64((e - d) * float64(h.ncols.Int()))
		if x, err = NewToken(XllCorner, FormatFloat(h.xllcorner.Float()-shift)); err != nil {
			return errtrace.Wrap(err)
		}
	}

	if h.IsCorner() {
		h.xllcorner, h.yllcorner = x, y
	}
	h.cellsize = Token{kind: CellSize, text: size.text, fval: size.fval}
	h.dx, h.dy = Token{}, Token{}
	return nil
}

// NoDataReplacer returns the cell substitution for a replaced NODATA value.
func (h *Header) NoDataReplacer() NoDataReplacer {
	if !h.nodataOrigSet || h.nodata.IsZero() {
		return NoDataReplacer{}
	}
	return NoDataReplacer{from: h.nodataOrig, to: h.nodata.Text(), active: true}
}

// Tokens yields the defined fields in canonical output order.
func (h *Header) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for _, tok := range [...]Token{
			h.ncols, h.nrows,
			h.xllcorner, h.yllcorner, h.xllcenter, h.yllcenter,
			h.cellsize, h.dx, h.dy,
			h.nodata,
		} {
			if tok.IsZero() {
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// RenderTo writes the header lines, each terminated with a line feed.
func (h *Header) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for tok := range h.Tokens() {
		cw.Call(tok.RenderTo)
		cw.WriteString("\n") //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the header text.
func (h *Header) Render() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	h.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

func (h *Header) String() string { return h.Render() }

func newTokenPair(k1 Kind, t1 string, k2 Kind, t2 string) (tok1, tok2 Token, err error) {
	if tok1, err = NewToken(k1, t1); err != nil {
		return Token{}, Token{}, errtrace.Wrap(err)
	}
	if tok2, err = NewToken(k2, t2); err != nil {
		return Token{}, Token{}, errtrace.Wrap(err)
	}
	return tok1, tok2, nil
}

// FormatFloat formats v as a header value text: the shortest decimal text that
// parses back to v, never in exponent form.
func FormatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
