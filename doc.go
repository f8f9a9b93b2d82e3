// Package ascgrid reads, validates, mutates and rewrites ESRI ASCII grid files.
//
// A grid file is a short header of name/value pairs followed by nrows lines of ncols
// whitespace separated cells. [Parse] consumes the header and validates it, the body is
// not read until [Grid.Write] streams it to the output one line at a time:
//
//	g, err := ascgrid.Parse(in, nil)
//	if err != nil {
//		return err
//	}
//	if err := g.SetNoData("0"); err != nil {
//		return err
//	}
//	return g.Write(out, nil)
//
// While streaming, cells equal to the original NODATA text are replaced by the new one,
// and an optional [ScanListener] observes grid and row boundaries and may rewrite cells.
// Row and column counts are checked against the header, a mismatch fails with a
// [*SizeError].
//
// Header values are written back with their original text, so a grid that is parsed and
// written without changes is reproduced byte for byte.
package ascgrid
