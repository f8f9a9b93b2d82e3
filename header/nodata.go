package header

// NoDataReplacer substitutes a replaced NODATA sentinel in grid cells.
// The zero value is the identity replacer.
type NoDataReplacer struct {
	from, to string
	active   bool
}

// Replace returns the current NODATA text if cell is exactly the original NODATA text,
// otherwise cell itself. Cells are compared as text: "0" and "0.0" differ.
func (r NoDataReplacer) Replace(cell string) string {
	if r.active && cell == r.from {
		return r.to
	}
	return cell
}

// IsIdentity reports whether Replace returns every cell unchanged.
func (r NoDataReplacer) IsIdentity() bool { return !r.active || r.from == r.to }
