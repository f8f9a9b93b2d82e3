package scan

//go:generate go tool errtrace -w .

import (
	"image"
	"image/color"
	"io"
	"math"
	"slices"
	"strconv"

	"braces.dev/errtrace"
	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"

	"github.com/ghettovoice/ascgrid/internal/errorutil"
)

// DefaultPalette is the colour ramp used by a [Preview] without a palette, from low to high values.
var DefaultPalette = []string{"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"}

// Preview renders the streamed grid into an image, one pixel per cell.
//
// Values are mapped onto the palette after clipping them to the [Low, High] percentile range,
// NODATA and non-numeric cells are transparent. Unlike other listeners Preview keeps one
// float64 per cell until the image is rendered.
//
// The zero value renders in grayscale, use [NewPreview] for a colour ramp.
type Preview struct {
	// NoData is the NODATA text seen by the listener.
	NoData string
	// Width is the output image width in pixels, the height keeps the grid aspect ratio.
	// Zero keeps one pixel per cell.
	Width int
	// Low and High are the clipping percentiles in [0, 1]. Both zero means 0.02 and 0.98.
	Low, High float64
	// Smooth is the Gaussian blur radius in pixels applied before resizing, zero disables it.
	Smooth float64

	palette []colorful.Color
	vals    []float64
	cols    int
	rowLen  int
	rows    int
}

// NewPreview creates a preview with a palette of hex colours, see [DefaultPalette].
func NewPreview(palette ...string) (*Preview, error) {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	p := &Preview{palette: make([]colorful.Color, len(palette))}
	for i, hex := range palette {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("palette colour %q: %v", hex, err))
		}
		p.palette[i] = c
	}
	return p, nil
}

func (p *Preview) GridBegin() {
	p.vals = p.vals[:0]
	p.cols, p.rows, p.rowLen = 0, 0, 0
}

func (*Preview) GridEnd() {}

func (p *Preview) RowBegin() { p.rowLen = 0 }

func (p *Preview) RowEnd() {
	if p.rows == 0 {
		p.cols = p.rowLen
	}
	p.rows++
}

func (p *Preview) Cell(value string) string {
	p.rowLen++
	v := math.NaN()
	if p.NoData == "" || value != p.NoData {
		if f, err := strconv.ParseFloat(value, 64); err == nil && !math.IsInf(f, 0) {
			v = f
		}
	}
	p.vals = append(p.vals, v)
	return value
}

// Image renders the collected grid.
func (p *Preview) Image() (image.Image, error) {
	if p.rows == 0 || p.cols == 0 || len(p.vals) < p.rows*p.cols {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("empty preview"))
	}

	lo, hi := p.bounds()
	img := image.NewNRGBA(image.Rect(0, 0, p.cols, p.rows))
	for i, v := range p.vals[:p.rows*p.cols] {
		if math.IsNaN(v) {
			continue
		}
		t := 0.5
		if hi > lo {
			t = min(max((v-lo)/(hi-lo), 0), 1)
		}
		img.Set(i%p.cols, i/p.cols, p.colorAt(t))
	}

	var out image.Image = img
	if p.Smooth > 0 {
		out = blur.Gaussian(out, p.Smooth)
	}
	if p.Width > 0 && p.Width != p.cols {
		out = imaging.Resize(out, p.Width, 0, imaging.Lanczos)
	}
	return out, nil
}

// Encode renders the collected grid and writes it to w as PNG.
func (p *Preview) Encode(w io.Writer) error {
	img, err := p.Image()
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(imaging.Encode(w, img, imaging.PNG))
}

func (p *Preview) bounds() (lo, hi float64) {
	sorted := make([]float64, 0, len(p.vals))
	for _, v := range p.vals {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	if len(sorted) == 0 {
		return 0, 0
	}
	slices.Sort(sorted)

	low, high := p.Low, p.High
	if low == 0 && high == 0 {
		low, high = 0.02, 0.98
	}
	low, high = min(max(low, 0), 1), min(max(high, 0), 1)
	return stat.Quantile(low, stat.Empirical, sorted, nil), stat.Quantile(high, stat.Empirical, sorted, nil)
}

func (p *Preview) colorAt(t float64) color.Color {
	pal := p.palette
	if len(pal) == 0 {
		return color.Gray{Y: uint8(t * 255)}
	}
	if len(pal) == 1 {
		return pal[0]
	}
	pos := t * float64(len(pal)-1)
	i := min(int(pos), len(pal)-2)
	return pal[i].BlendLab(pal[i+1], pos-float64(i)).Clamped()
}
