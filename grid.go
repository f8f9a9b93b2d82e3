package ascgrid

//go:generate go tool errtrace -w .

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/ascgrid/header"
	"github.com/ghettovoice/ascgrid/internal/errorutil"
	"github.com/ghettovoice/ascgrid/internal/ioutil"
	"github.com/ghettovoice/ascgrid/internal/log"
)

// Grid is a parsed grid header together with the unread grid body.
//
// Header values can be changed until the grid is written. A Grid is written at most once
// since its body is consumed from the source while writing.
// A Grid is not safe for concurrent use.
type Grid struct {
	hdr header.Header
	src *ioutil.LineReader

	first    string
	hasFirst bool
	done     bool

	log *slog.Logger
}

// Parse reads and validates the grid header from r.
//
// Header lines are read until a line that is not a known "name value" pair, such a line is
// kept as the first body row. A known field the header does not accept at that point,
// e.g. a second NODATA_value, fails with [ErrHeaderSyntax].
// The rest of r is read by [Grid.Write].
func Parse(r io.Reader, opts *Options) (*Grid, error) {
	if r == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil reader"))
	}

	g := &Grid{
		src: ioutil.NewLineReader(r),
		log: opts.log(),
	}
	if err := g.readHeader(); err != nil {
		g.src.Release()
		return nil, errtrace.Wrap(err)
	}

	lines := g.src.Line()
	if g.hasFirst {
		lines--
	}
	g.log.LogAttrs(context.Background(), slog.LevelDebug, "grid header parsed",
		slog.Int("lines", lines),
		slog.Any("header", log.CalcValue(func() any { return g.hdr.Render() })),
	)
	return g, nil
}

func (g *Grid) readHeader() error {
	for {
		line, err := g.src.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return errtrace.Wrap(err)
		}

		name, value, ok := splitField(line)
		if !ok {
			g.first, g.hasFirst = line, true
			break
		}
		tok, ok, err := header.ParseToken(name, value)
		if err != nil {
			return errtrace.Wrap(&ParseError{Line: g.src.Line(), Text: line, Err: err})
		}
		if !ok {
			g.first, g.hasFirst = line, true
			break
		}
		if err := g.hdr.Store(tok); err != nil {
			return errtrace.Wrap(&ParseError{Line: g.src.Line(), Text: line, Err: err})
		}
	}
	return errtrace.Wrap(g.hdr.Validate())
}

func splitField(line string) (name, value string, ok bool) {
	var n int
	for f := range strings.FieldsSeq(line) {
		switch n {
		case 0:
			name = f
		case 1:
			value = f
		}
		n++
		if n == 2 {
			break
		}
	}
	return name, value, n == 2
}

// Header returns a copy of the grid header.
func (g *Grid) Header() header.Header { return g.hdr }

func (g *Grid) NCols() header.Token { return g.hdr.NCols() }

func (g *Grid) NRows() header.Token { return g.hdr.NRows() }

func (g *Grid) XllCorner() (header.Token, bool) { return g.hdr.XllCorner() }

func (g *Grid) YllCorner() (header.Token, bool) { return g.hdr.YllCorner() }

func (g *Grid) XllCenter() (header.Token, bool) { return g.hdr.XllCenter() }

func (g *Grid) YllCenter() (header.Token, bool) { return g.hdr.YllCenter() }

func (g *Grid) CellSize() (header.Token, bool) { return g.hdr.CellSize() }

func (g *Grid) DX() (header.Token, bool) { return g.hdr.DX() }

func (g *Grid) DY() (header.Token, bool) { return g.hdr.DY() }

func (g *Grid) NoData() (header.Token, bool) { return g.hdr.NoData() }

func (g *Grid) IsCorner() bool { return g.hdr.IsCorner() }

func (g *Grid) IsCenter() bool { return g.hdr.IsCenter() }

func (g *Grid) IsCellSquare() bool { return g.hdr.IsCellSquare() }

func (g *Grid) IsCellRectangular() bool { return g.hdr.IsCellRectangular() }

// mutate applies fn to a copy of the header and keeps the copy only if fn succeeds
// and the result is valid.
func (g *Grid) mutate(fn func(h *header.Header) error) error {
	h := g.hdr
	if err := fn(&h); err != nil {
		return errtrace.Wrap(err)
	}
	if err := h.Validate(); err != nil {
		return errtrace.Wrap(err)
	}
	g.hdr = h
	return nil
}

// SetCorner sets the lower-left corner position, see [header.Header.SetCorner].
func (g *Grid) SetCorner(x, y string) error {
	return errtrace.Wrap(g.mutate(func(h *header.Header) error { return errtrace.Wrap(h.SetCorner(x, y)) }))
}

func (g *Grid) SetCornerFloat(x, y float64) error {
	return errtrace.Wrap(g.SetCorner(header.FormatFloat(x), header.FormatFloat(y)))
}

// SetCenter sets the lower-left cell center position, see [header.Header.SetCenter].
func (g *Grid) SetCenter(x, y string) error {
	return errtrace.Wrap(g.mutate(func(h *header.Header) error { return errtrace.Wrap(h.SetCenter(x, y)) }))
}

func (g *Grid) SetCenterFloat(x, y float64) error {
	return errtrace.Wrap(g.SetCenter(header.FormatFloat(x), header.FormatFloat(y)))
}

// SetCellSize sets a uniform cell size, see [header.Header.SetCellSize].
func (g *Grid) SetCellSize(size string) error {
	return errtrace.Wrap(g.mutate(func(h *header.Header) error { return errtrace.Wrap(h.SetCellSize(size)) }))
}

func (g *Grid) SetCellSizeFloat(size float64) error {
	return errtrace.Wrap(g.SetCellSize(header.FormatFloat(size)))
}

// SetCellSizeXY sets a rectangular cell size, see [header.Header.SetCellSizeXY].
func (g *Grid) SetCellSizeXY(dx, dy string) error {
	return errtrace.Wrap(g.mutate(func(h *header.Header) error { return errtrace.Wrap(h.SetCellSizeXY(dx, dy)) }))
}

func (g *Grid) SetCellSizeXYFloat(dx, dy float64) error {
	return errtrace.Wrap(g.SetCellSizeXY(header.FormatFloat(dx), header.FormatFloat(dy)))
}

// SetNoData sets the NODATA value, see [header.Header.SetNoData].
// Cells holding the NODATA text read from the input are rewritten with the new value.
func (g *Grid) SetNoData(text string) error {
	return errtrace.Wrap(g.mutate(func(h *header.Header) error { return errtrace.Wrap(h.SetNoData(text)) }))
}

func (g *Grid) SetNoDataFloat(v float64) error {
	return errtrace.Wrap(g.SetNoData(header.FormatFloat(v)))
}

// ForceCellSquare converts rectangular cells into square ones, see [header.Header.ForceCellSquare].
func (g *Grid) ForceCellSquare() error {
	return errtrace.Wrap(g.mutate(func(h *header.Header) error { return errtrace.Wrap(h.ForceCellSquare()) }))
}

// Write writes the header and streams the body to w.
//
// Each cell goes through NODATA substitution and then through l.Cell if l is not nil.
// Output is buffered and flushed before Write returns, also on failure, so rows written
// before an error stay in w. If w has a Flush() error method it is called too.
//
// Write can be called once, a second call fails with [ErrInvalidArgument].
func (g *Grid) Write(w io.Writer, l ScanListener) (err error) {
	if w == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil writer"))
	}
	if g.done {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("grid already written"))
	}
	g.done = true
	defer g.src.Release()

	bw := bufio.NewWriter(w)
	cw := ioutil.GetCountingWriter(bw)
	defer ioutil.FreeCountingWriter(cw)

	defer func() {
		if ferr := flush(bw, w); err == nil {
			err = ferr
		}
		if err != nil {
			g.log.LogAttrs(context.Background(), slog.LevelWarn, "grid write failed",
				slog.Int("line", g.src.Line()),
				slog.Int("bytes", cw.Count()),
				slog.Any("error", err),
			)
			return
		}
		g.log.LogAttrs(context.Background(), slog.LevelDebug, "grid written",
			slog.Int("rows", cw.Lines()),
			slog.Int("bytes", cw.Count()),
		)
	}()

	if err := cw.Call(g.hdr.RenderTo).Err(); err != nil {
		return errtrace.Wrap(err)
	}

	s := bodyStreamer{
		rows:     g.hdr.NRows().Int(),
		cols:     g.hdr.NCols().Int(),
		src:      g.src,
		first:    g.first,
		hasFirst: g.hasFirst,
		repl:     g.hdr.NoDataReplacer(),
		lsnr:     l,
		out:      cw,
	}
	return errtrace.Wrap(s.run())
}

// Close releases the unread body without writing it.
// Closing a written grid is a no-op.
func (g *Grid) Close() error {
	if !g.done {
		g.done = true
		g.src.Release()
	}
	return nil
}

type flusher interface {
	Flush() error
}

func flush(bw *bufio.Writer, w io.Writer) error {
	if err := bw.Flush(); err != nil {
		return errtrace.Wrap(err)
	}
	if f, ok := w.(flusher); ok {
		return errtrace.Wrap(f.Flush())
	}
	return nil
}
