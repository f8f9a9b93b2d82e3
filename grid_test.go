package ascgrid_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/ascgrid"
)

const squareHeader = "ncols         4\n" +
	"nrows         3\n" +
	"xllcorner     -1.263438463211\n" +
	"yllcorner     51.749325071480\n" +
	"cellsize      0.000289614900\n" +
	"NODATA_value  -9999\n"

func mustParse(tb testing.TB, in string) *ascgrid.Grid {
	tb.Helper()

	g, err := ascgrid.Parse(strings.NewReader(in), nil)
	if err != nil {
		tb.Fatalf("ascgrid.Parse() error = %v, want nil", err)
	}
	return g
}

func writeGrid(tb testing.TB, g *ascgrid.Grid, l ascgrid.ScanListener) (string, error) {
	tb.Helper()

	var buf bytes.Buffer
	err := g.Write(&buf, l)
	return buf.String(), err
}

func TestGrid_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name, in, want string
	}{
		{"square", "testdata/square.asc", "testdata/square.asc"},
		{"center rect", "testdata/center_rect.asc", "testdata/center_rect.asc"},
		{"messy", "testdata/messy.asc", "testdata/messy.golden.asc"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			in, err := os.ReadFile(c.in)
			if err != nil {
				t.Fatal(err)
			}
			want, err := os.ReadFile(c.want)
			if err != nil {
				t.Fatal(err)
			}

			got, err := writeGrid(t, mustParse(t, string(in)), nil)
			if err != nil {
				t.Fatalf("g.Write() error = %v, want nil", err)
			}
			if diff := cmp.Diff(got, string(want)); diff != "" {
				t.Errorf("g.Write() output mismatch\ndiff (-got +want):\n%v", diff)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		in       string
		wantErr  error
		wantMsg  string
		wantLine int
	}{
		{"empty", "", ascgrid.ErrHeaderInvalid, "grid size undefined", 0},
		{"no header", "1 2 3\n", ascgrid.ErrHeaderInvalid, "grid size undefined", 0},
		{
			"missing position",
			"ncols 2\nnrows 2\ncellsize 1\n",
			ascgrid.ErrHeaderSyntax, "unexpected token cellsize", 3,
		},
		{
			"corner twice",
			"ncols 2\nnrows 2\nxllcorner 0\nxllcorner 0\n",
			ascgrid.ErrHeaderSyntax, "unexpected token xllcorner", 4,
		},
		{
			"bad number",
			"ncols 2\nnrows 2.5\n",
			ascgrid.ErrInvalidNumberFormat, "nrows \"2.5\"", 2,
		},
		{
			"truncated header",
			"ncols 2\nnrows 2\nxllcorner 0\nyllcorner 0\n",
			ascgrid.ErrHeaderInvalid, "cell size undefined", 0,
		},
		{
			"half rect",
			"ncols 2\nnrows 2\nxllcorner 0\nyllcorner 0\ndx 1\n1 2\n",
			ascgrid.ErrHeaderInvalid, "cell size undefined", 0,
		},
		{
			"header after complete",
			"ncols 2\nnrows 2\nxllcorner 0\nyllcorner 0\ncellsize 1\nncols 2\n",
			ascgrid.ErrHeaderSyntax, "unexpected token ncols", 6,
		},
		{
			"token after nodata",
			"ncols 2\nnrows 2\nxllcorner 0\nyllcorner 0\ncellsize 1\nNODATA_value -1\nNODATA_value -2\n1 2\n",
			ascgrid.ErrHeaderSyntax, "unexpected token NODATA_value", 7,
		},
		{
			"negative rows",
			"ncols 2\nnrows -1\nxllcorner 0\nyllcorner 0\ncellsize 1\n",
			ascgrid.ErrHeaderInvalid, "negative grid size", 0,
		},
		{
			"complete",
			"ncols 2\nnrows 2\nxllcorner 0\nyllcorner 0\ncellsize 1\n1 2\n3 4\n",
			nil, "", 0,
		},
		{
			"complete with nodata",
			"ncols 2\nnrows 2\nxllcorner 0\nyllcorner 0\ncellsize 1\nNODATA_value -1\n1 2\n3 4\n",
			nil, "", 0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			g, err := ascgrid.Parse(strings.NewReader(c.in), nil)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("ascgrid.Parse() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if err == nil {
				if g == nil {
					t.Fatal("ascgrid.Parse() = nil, want grid")
				}
				g.Close()
				return
			}
			if g != nil {
				t.Errorf("ascgrid.Parse() = %v, want nil", g)
			}
			if !strings.Contains(err.Error(), c.wantMsg) {
				t.Errorf("ascgrid.Parse() error = %q, want containing %q", err, c.wantMsg)
			}
			if !errors.Is(err, ascgrid.ErrGridInvalid) && !errors.Is(err, ascgrid.ErrInvalidNumberFormat) {
				t.Errorf("ascgrid.Parse() error = %v, want grid invalid or number format error", err)
			}

			var perr *ascgrid.ParseError
			if c.wantLine == 0 {
				if errors.As(err, &perr) {
					t.Errorf("ascgrid.Parse() error = %v, want no line information", err)
				}
				return
			}
			if !errors.As(err, &perr) {
				t.Fatalf("ascgrid.Parse() error = %v, want *ParseError", err)
			}
			if perr.Line != c.wantLine {
				t.Errorf("ParseError.Line = %d, want %d", perr.Line, c.wantLine)
			}
			if want := fmt.Sprintf("line %d: ", c.wantLine); !strings.HasPrefix(err.Error(), want) {
				t.Errorf("ascgrid.Parse() error = %q, want prefix %q", err, want)
			}
		})
	}

	if _, err := ascgrid.Parse(nil, nil); !errors.Is(err, ascgrid.ErrInvalidArgument) {
		t.Errorf("ascgrid.Parse(nil, nil) error = %v, want %v", err, ascgrid.ErrInvalidArgument)
	}
}

func TestParse_Getters(t *testing.T) {
	t.Parallel()

	g := mustParse(t, "ncols 3\nnrows 2\nxllcenter 10\nyllcenter 20.\ndx 0.5\ndy 0.25\n1 2 3\n4 5 6\n")
	defer g.Close()

	if got := g.NCols().Int(); got != 3 {
		t.Errorf("g.NCols().Int() = %d, want 3", got)
	}
	if got := g.NRows().Int(); got != 2 {
		t.Errorf("g.NRows().Int() = %d, want 2", got)
	}
	if tok, ok := g.YllCenter(); !ok || tok.Text() != "20." || tok.Float() != 20 {
		t.Errorf("g.YllCenter() = (%v, %v), want (yllcenter 20., true)", tok, ok)
	}
	if _, ok := g.XllCorner(); ok {
		t.Error("g.XllCorner() ok = true, want false")
	}
	if _, ok := g.NoData(); ok {
		t.Error("g.NoData() ok = true, want false")
	}
	if !g.IsCenter() || g.IsCorner() {
		t.Errorf("g.IsCenter(), g.IsCorner() = %v, %v, want true, false", g.IsCenter(), g.IsCorner())
	}
	if !g.IsCellRectangular() || g.IsCellSquare() {
		t.Errorf("g.IsCellRectangular(), g.IsCellSquare() = %v, %v, want true, false",
			g.IsCellRectangular(), g.IsCellSquare(),
		)
	}
	if tok, _ := g.DY(); tok.Text() != "0.25" {
		t.Errorf("g.DY() = %v, want dy 0.25", tok)
	}
}

func TestGrid_SetNoData(t *testing.T) {
	t.Parallel()

	g := mustParse(t, squareHeader+"1 2 3 4\n-9999 0 0.0 -9999\n5.5 6 7 8\n")
	if err := g.SetNoData("0"); err != nil {
		t.Fatalf("g.SetNoData(\"0\") error = %v, want nil", err)
	}

	got, err := writeGrid(t, g, nil)
	if err != nil {
		t.Fatalf("g.Write() error = %v, want nil", err)
	}
	want := strings.Replace(squareHeader, "NODATA_value  -9999", "NODATA_value  0", 1) +
		"1 2 3 4\n0 0 0.0 0\n5.5 6 7 8\n"
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("g.Write() output mismatch\ndiff (-got +want):\n%v", diff)
	}
}

func TestGrid_SetNoDataFloat(t *testing.T) {
	t.Parallel()

	g := mustParse(t, squareHeader+"1 2 3 4\n-9999 0 0.0 -9999\n5.5 6 7 8\n")
	if err := g.SetNoDataFloat(-3.5); err != nil {
		t.Fatalf("g.SetNoDataFloat(-3.5) error = %v, want nil", err)
	}
	if err := g.SetNoDataFloat(-1); err != nil {
		t.Fatalf("g.SetNoDataFloat(-1) error = %v, want nil", err)
	}

	got, err := writeGrid(t, g, nil)
	if err != nil {
		t.Fatalf("g.Write() error = %v, want nil", err)
	}
	if want := "NODATA_value  -1\n1 2 3 4\n-1 0 0.0 -1\n"; !strings.Contains(got, want) {
		t.Errorf("g.Write() output = %q, want containing %q", got, want)
	}
}

func TestGrid_Mutators(t *testing.T) {
	t.Parallel()

	g := mustParse(t, squareHeader)
	defer g.Close()

	if err := g.SetCenterFloat(0.5, 1.25); err != nil {
		t.Fatalf("g.SetCenterFloat() error = %v, want nil", err)
	}
	if err := g.SetCellSizeXYFloat(2, 0.5); err != nil {
		t.Fatalf("g.SetCellSizeXYFloat() error = %v, want nil", err)
	}
	want := "ncols         4\n" +
		"nrows         3\n" +
		"xllcenter     0.5\n" +
		"yllcenter     1.25\n" +
		"dx            2\n" +
		"dy            0.5\n" +
		"NODATA_value  -9999\n"
	hdr := g.Header()
	if got := hdr.Render(); got != want {
		t.Errorf("g.Header().Render() = %q, want %q", got, want)
	}

	// a center position cannot be shifted
	if err := g.ForceCellSquare(); !errors.Is(err, ascgrid.ErrHeaderInvalid) {
		t.Errorf("g.ForceCellSquare() error = %v, want %v", err, ascgrid.ErrHeaderInvalid)
	}
	if err := g.SetCornerFloat(1, 2); err != nil {
		t.Fatalf("g.SetCornerFloat() error = %v, want nil", err)
	}
	if err := g.ForceCellSquare(); err != nil {
		t.Fatalf("g.ForceCellSquare() error = %v, want nil", err)
	}
	if err := g.SetCellSizeFloat(0.125); err != nil {
		t.Fatalf("g.SetCellSizeFloat() error = %v, want nil", err)
	}
	want = "ncols         4\n" +
		"nrows         3\n" +
		"xllcorner     1\n" +
		"yllcorner     -2.5\n" +
		"cellsize      0.125\n" +
		"NODATA_value  -9999\n"
	hdr = g.Header()
	if got := hdr.Render(); got != want {
		t.Errorf("g.Header().Render() = %q, want %q", got, want)
	}

	for name, fn := range map[string]func() error{
		"SetCorner":     func() error { return g.SetCorner("1", "2e3") },
		"SetCenter":     func() error { return g.SetCenter("", "1") },
		"SetCellSize":   func() error { return g.SetCellSize("big") },
		"SetCellSizeXY": func() error { return g.SetCellSizeXY("1", "+") },
		"SetNoData":     func() error { return g.SetNoData("N/A") },
		"SetNoDataNaN":  func() error { return g.SetNoDataFloat(nan()) },
	} {
		if err := fn(); !errors.Is(err, ascgrid.ErrInvalidNumberFormat) {
			t.Errorf("g.%s() error = %v, want %v", name, err, ascgrid.ErrInvalidNumberFormat)
		}
		hdr = g.Header()
		if got := hdr.Render(); got != want {
			t.Errorf("after g.%s(): g.Header().Render() = %q, want %q", name, got, want)
		}
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestGrid_ForceCellSquare(t *testing.T) {
	t.Parallel()

	in := "ncols         53\n" +
		"nrows         28\n" +
		"xllcorner     -1.263438463211\n" +
		"yllcorner     51.749325071480\n" +
		"dx            0.000289614900\n" +
		"dy            0.000179755100\n" +
		"NODATA_value  -9999\n" +
		strings.Repeat(strings.TrimSpace(strings.Repeat("1 ", 53))+"\n", 28)

	g := mustParse(t, in)
	if err := g.ForceCellSquare(); err != nil {
		t.Fatalf("g.ForceCellSquare() error = %v, want nil", err)
	}
	got, err := writeGrid(t, g, nil)
	if err != nil {
		t.Fatalf("g.Write() error = %v, want nil", err)
	}

	wantHeader := "ncols         53\n" +
		"nrows         28\n" +
		"xllcorner     -1.263438463211\n" +
		"yllcorner     51.74624899708\n" +
		"cellsize      0.000289614900\n" +
		"NODATA_value  -9999\n"
	if !strings.HasPrefix(got, wantHeader) {
		t.Errorf("g.Write() output = %q, want prefix %q", got[:min(len(got), len(wantHeader))], wantHeader)
	}
	if got, want := strings.Count(got, "\n"), 6+28; got != want {
		t.Errorf("g.Write() wrote %d lines, want %d", got, want)
	}
}

func TestGrid_Write_SizeErrors(t *testing.T) {
	t.Parallel()

	const hdr = "ncols         5\n" +
		"nrows         3\n" +
		"xllcorner     0\n" +
		"yllcorner     0\n" +
		"cellsize      1\n"

	cases := []struct {
		name      string
		body      string
		wantErr   *ascgrid.SizeError
		wantMsg   string
		wantWrote string
	}{
		{
			"columns",
			"1 2 3 4 5\n1 2 3 4\n1 2 3 4 5\n",
			&ascgrid.SizeError{Row: 2, Found: 4, Expected: 5},
			"grid size mismatch: row 2: found 4 columns, expected 5",
			"1 2 3 4 5\n",
		},
		{
			"too many columns",
			"1 2 3 4 5 6\n",
			&ascgrid.SizeError{Row: 1, Found: 6, Expected: 5},
			"grid size mismatch: row 1: found 6 columns, expected 5",
			"",
		},
		{
			"blank row inside",
			"1 2 3 4 5\n\n1 2 3 4 5\n",
			&ascgrid.SizeError{Row: 2, Found: 0, Expected: 5},
			"grid size mismatch: row 2: found 0 columns, expected 5",
			"1 2 3 4 5\n",
		},
		{
			"fewer rows",
			"1 2 3 4 5\n1 2 3 4 5\n",
			&ascgrid.SizeError{Found: 2, Expected: 3},
			"grid size mismatch: expected 3 rows, found 2",
			"1 2 3 4 5\n1 2 3 4 5\n",
		},
		{
			"no rows",
			"",
			&ascgrid.SizeError{Found: 0, Expected: 3},
			"grid size mismatch: expected 3 rows, found 0",
			"",
		},
		{
			"more rows",
			"1 2 3 4 5\n1 2 3 4 5\n1 2 3 4 5\n1 2 3 4 5\n",
			&ascgrid.SizeError{Found: -1, Expected: 3},
			"grid size mismatch: expected 3 rows, found more",
			"1 2 3 4 5\n1 2 3 4 5\n1 2 3 4 5\n",
		},
		{
			"trailing blanks",
			"1 2 3 4 5\n1 2 3 4 5\n1 2 3 4 5\n\n  \n\n",
			nil, "",
			"1 2 3 4 5\n1 2 3 4 5\n1 2 3 4 5\n",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := writeGrid(t, mustParse(t, hdr+c.body), nil)
			if c.wantErr == nil {
				if err != nil {
					t.Fatalf("g.Write() error = %v, want nil", err)
				}
			} else {
				var serr *ascgrid.SizeError
				if !errors.As(err, &serr) {
					t.Fatalf("g.Write() error = %v, want *SizeError", err)
				}
				if diff := cmp.Diff(serr, c.wantErr); diff != "" {
					t.Errorf("g.Write() error = %+v, want %+v\ndiff (-got +want):\n%v", serr, c.wantErr, diff)
				}
				if err.Error() != c.wantMsg {
					t.Errorf("g.Write() error = %q, want %q", err, c.wantMsg)
				}
				if !errors.Is(err, ascgrid.ErrGridSize) || !errors.Is(err, ascgrid.ErrGridInvalid) {
					t.Errorf("g.Write() error = %v, want grid size error", err)
				}
			}
			if diff := cmp.Diff(got, hdr+c.wantWrote); diff != "" {
				t.Errorf("g.Write() output mismatch\ndiff (-got +want):\n%v", diff)
			}
		})
	}
}

func TestGrid_Write_RowCount(t *testing.T) {
	t.Parallel()

	row := strings.TrimSpace(strings.Repeat("0 ", 53)) + "\n"
	in := "ncols         53\n" +
		"nrows         28\n" +
		"xllcorner     0\n" +
		"yllcorner     0\n" +
		"cellsize      1\n" +
		strings.Repeat(row, 27)

	_, err := writeGrid(t, mustParse(t, in), nil)
	if want := "grid size mismatch: expected 28 rows, found 27"; err == nil || err.Error() != want {
		t.Errorf("g.Write() error = %v, want %q", err, want)
	}
}

func TestGrid_Write_Twice(t *testing.T) {
	t.Parallel()

	g := mustParse(t, squareHeader+"1 2 3 4\n1 2 3 4\n1 2 3 4\n")
	if _, err := writeGrid(t, g, nil); err != nil {
		t.Fatalf("g.Write() error = %v, want nil", err)
	}
	got, err := writeGrid(t, g, nil)
	if !errors.Is(err, ascgrid.ErrInvalidArgument) {
		t.Errorf("second g.Write() error = %v, want %v", err, ascgrid.ErrInvalidArgument)
	}
	if got != "" {
		t.Errorf("second g.Write() output = %q, want empty", got)
	}
	if err := g.Write(nil, nil); !errors.Is(err, ascgrid.ErrInvalidArgument) {
		t.Errorf("g.Write(nil, nil) error = %v, want %v", err, ascgrid.ErrInvalidArgument)
	}
}

type flushWriter struct {
	bytes.Buffer
	flushed int
}

func (w *flushWriter) Flush() error {
	w.flushed++
	return nil
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestGrid_Write_Sink(t *testing.T) {
	t.Parallel()

	t.Run("flush", func(t *testing.T) {
		t.Parallel()

		var w flushWriter
		if err := mustParse(t, squareHeader+"1 2 3 4\n1 2 3 4\n1 2 3 4\n").Write(&w, nil); err != nil {
			t.Fatalf("g.Write() error = %v, want nil", err)
		}
		if w.flushed != 1 {
			t.Errorf("w.Flush() called %d times, want 1", w.flushed)
		}
		if !strings.HasPrefix(w.String(), squareHeader) {
			t.Errorf("g.Write() output = %q, want prefix %q", w.String(), squareHeader)
		}
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()

		errSink := errors.New("disk full")
		err := mustParse(t, squareHeader+"1 2 3 4\n1 2 3 4\n1 2 3 4\n").Write(failWriter{errSink}, nil)
		if !errors.Is(err, errSink) {
			t.Errorf("g.Write() error = %v, want %v", err, errSink)
		}
	})
}

func TestParse_Log(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := &ascgrid.Options{
		Log: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
	g, err := ascgrid.Parse(strings.NewReader(squareHeader+"1 2 3 4\n"), opts)
	if err != nil {
		t.Fatalf("ascgrid.Parse() error = %v, want nil", err)
	}
	if err := g.Write(&bytes.Buffer{}, nil); err == nil {
		t.Fatal("g.Write() error = nil, want error")
	}

	out := buf.String()
	for _, want := range []string{
		`msg="grid header parsed" lines=6`,
		`msg="grid write failed"`,
		`error="grid size mismatch: expected 3 rows, found 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output = %q, want containing %q", out, want)
		}
	}
}
