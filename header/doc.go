// Package header provides facilities for working with the header of ESRI ASCII grid files.
//
// This package offers the typed header fields (tokens), the grammar that decides in which
// order fields may appear, validation of the assembled header, in-place mutation with
// all-or-nothing semantics and rendering back to text.
//
// # Tokens
//
// A header line is a name followed by a numeric value:
//
//	ncols         53
//	nrows         28
//	xllcorner     -1.263438463211
//	yllcorner     51.749325071480
//	cellsize      0.000289614900
//	NODATA_value  -9999
//
// There are ten known field kinds, see [Kind]. Names are matched case-insensitively.
// Values must be decimal numerals: an optional sign, at least one digit and an optional
// fraction ("-9999", "1.", "0.25"); exponents and bare fractions (".5") are rejected.
// ncols and nrows must be integers.
//
// Use [ParseToken] to turn a name/value pair into a [Token]:
//
//	tok, ok, err := header.ParseToken("cellsize", "20.6")
//
// A [Token] keeps the exact source text of its value next to the parsed number.
// The text is what gets written back, so "-9999" is never rewritten as "-9999.0".
//
// # Grammar
//
// [Header.Store] feeds tokens in arrival order. The accepted order is fixed:
//
//	ncols, nrows,
//	(xllcorner, yllcorner | xllcenter, yllcenter),
//	(cellsize | dx, dy),
//	[NODATA_value]
//
// Any token out of this order fails with [ErrHeaderSyntax]. Once the optional
// NODATA_value is stored the header is terminal and accepts nothing else.
//
// # Mutation
//
// Position, cell size and NODATA value can be replaced after parsing with
// [Header.SetCorner], [Header.SetCenter], [Header.SetCellSize], [Header.SetCellSizeXY]
// and [Header.SetNoData]. New values are validated before anything is changed, a failed
// call leaves the header as it was.
//
// [Header.ForceCellSquare] turns rectangular cells (dx, dy) into square ones, shifting
// the lower-left corner to compensate.
//
// Replacing an existing NODATA value remembers the original text once, so that cells
// holding the old sentinel can be rewritten while the grid body is streamed, see
// [Header.NoDataReplacer].
//
// # Rendering
//
// [Header.RenderTo] writes the header in canonical order, each field name left-justified
// in a 13 character column followed by a space and the original value text.
package header
