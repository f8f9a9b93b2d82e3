package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ghettovoice/ascgrid"
	"github.com/ghettovoice/ascgrid/scan"
)

type rewriteOptions struct {
	nodata       string
	forceSquare  bool
	corner       string
	center       string
	cellsize     string
	dxdy         string
	offset       float64
	preview      string
	previewWidth int
}

func newRewriteCmd(a *app) *cobra.Command {
	var opts rewriteOptions

	cmd := &cobra.Command{
		Use:   "rewrite IN OUT",
		Short: "Rewrite a grid with a changed header",
		Long: "Rewrite reads the grid IN, applies the header changes and writes the result to OUT.\n" +
			"Use - for standard input or output.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("nodata") && a.cfg.Rewrite.NoData != "" {
				opts.nodata = a.cfg.Rewrite.NoData
			}
			if !flags.Changed("force-square") {
				opts.forceSquare = a.cfg.Rewrite.ForceSquare
			}
			if !flags.Changed("preview-width") && a.cfg.Preview.Width > 0 {
				opts.previewWidth = a.cfg.Preview.Width
			}
			return a.rewrite(cmd, args[0], args[1], &opts, flags.Changed("offset"))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.nodata, "nodata", "", "replace the NODATA value, cells holding the old value are rewritten")
	flags.BoolVar(&opts.forceSquare, "force-square", false, "convert rectangular cells into square ones")
	flags.StringVar(&opts.corner, "corner", "", "set the lower-left corner position `X,Y`")
	flags.StringVar(&opts.center, "center", "", "set the lower-left cell center position `X,Y`")
	flags.StringVar(&opts.cellsize, "cellsize", "", "set a uniform cell size")
	flags.StringVar(&opts.dxdy, "dxdy", "", "set a rectangular cell size `DX,DY`")
	flags.Float64Var(&opts.offset, "offset", 0, "add a constant to every value cell")
	flags.StringVar(&opts.preview, "preview", "", "also render the grid into a PNG `file`")
	flags.IntVar(&opts.previewWidth, "preview-width", 0, "preview width in pixels (default: one pixel per cell)")
	cmd.MarkFlagsMutuallyExclusive("corner", "center")
	cmd.MarkFlagsMutuallyExclusive("cellsize", "dxdy")
	return cmd
}

func (a *app) rewrite(cmd *cobra.Command, in, out string, opts *rewriteOptions, offset bool) error {
	src, closeSrc, err := openInput(cmd, in)
	if err != nil {
		return err
	}
	defer closeSrc()

	g, err := ascgrid.Parse(src, &ascgrid.Options{Log: a.log.With(slog.String("input", in))})
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	defer g.Close()

	if err := applyHeaderChanges(g, opts); err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	var nodata string
	if tok, ok := g.NoData(); ok {
		nodata = tok.Text()
	}
	var (
		listeners []ascgrid.ScanListener
		preview   *scan.Preview
	)
	if offset {
		listeners = append(listeners, scan.Offset{Delta: opts.offset, Skip: nodata})
	}
	if opts.preview != "" {
		if preview, err = scan.NewPreview(a.cfg.Preview.Palette...); err != nil {
			return err
		}
		preview.NoData = nodata
		preview.Width = opts.previewWidth
		preview.Smooth = a.cfg.Preview.Smooth
		listeners = append(listeners, preview)
	}

	dst, closeDst, err := openOutput(cmd, out)
	if err != nil {
		return err
	}
	if err := g.Write(dst, scan.Chain(listeners...)); err != nil {
		closeDst() //nolint:errcheck
		return fmt.Errorf("%s: %w", in, err)
	}
	if err := closeDst(); err != nil {
		return err
	}

	if preview != nil {
		if err := writePreview(opts.preview, preview); err != nil {
			return err
		}
	}
	return nil
}

func applyHeaderChanges(g *ascgrid.Grid, opts *rewriteOptions) error {
	if opts.corner != "" {
		x, y, err := splitPair(opts.corner)
		if err != nil {
			return err
		}
		if err := g.SetCorner(x, y); err != nil {
			return err
		}
	}
	if opts.center != "" {
		x, y, err := splitPair(opts.center)
		if err != nil {
			return err
		}
		if err := g.SetCenter(x, y); err != nil {
			return err
		}
	}
	if opts.cellsize != "" {
		if err := g.SetCellSize(opts.cellsize); err != nil {
			return err
		}
	}
	if opts.dxdy != "" {
		dx, dy, err := splitPair(opts.dxdy)
		if err != nil {
			return err
		}
		if err := g.SetCellSizeXY(dx, dy); err != nil {
			return err
		}
	}
	if opts.forceSquare {
		if err := g.ForceCellSquare(); err != nil {
			return err
		}
	}
	if opts.nodata != "" {
		if err := g.SetNoData(opts.nodata); err != nil {
			return err
		}
	}
	return nil
}

func splitPair(s string) (first, second string, err error) {
	first, second, ok := strings.Cut(s, ",")
	if !ok {
		return "", "", fmt.Errorf("invalid pair %q: want two comma separated values", s)
	}
	return strings.TrimSpace(first), strings.TrimSpace(second), nil
}

func openInput(cmd *cobra.Command, name string) (io.Reader, func(), error) {
	if name == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func openOutput(cmd *cobra.Command, name string) (io.Writer, func() error, error) {
	if name == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func writePreview(name string, p *scan.Preview) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := p.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", name, err)
	}
	return f.Close()
}
