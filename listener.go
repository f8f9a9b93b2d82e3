package ascgrid

//go:generate go tool mockgen -destination=internal/mocks/listener.go -package=mocks . ScanListener

// ScanListener observes a grid while its body is streamed by [Grid.Write].
//
// Boundary hooks are called in order GridBegin, then RowBegin and RowEnd around each row,
// then GridEnd. Cell is called for every cell after NODATA substitution, its result is what
// gets written.
type ScanListener interface {
	GridBegin()
	GridEnd()
	RowBegin()
	RowEnd()
	Cell(value string) string
}

// ScanFuncs is a [ScanListener] built from optional functions.
// A nil function is a no-op, a nil OnCell keeps cells unchanged.
type ScanFuncs struct {
	OnGridBegin func()
	OnGridEnd   func()
	OnRowBegin  func()
	OnRowEnd    func()
	OnCell      func(value string) string
}

func (f ScanFuncs) GridBegin() {
	if f.OnGridBegin != nil {
		f.OnGridBegin()
	}
}

func (f ScanFuncs) GridEnd() {
	if f.OnGridEnd != nil {
		f.OnGridEnd()
	}
}

func (f ScanFuncs) RowBegin() {
	if f.OnRowBegin != nil {
		f.OnRowBegin()
	}
}

func (f ScanFuncs) RowEnd() {
	if f.OnRowEnd != nil {
		f.OnRowEnd()
	}
}

func (f ScanFuncs) Cell(value string) string {
	if f.OnCell != nil {
		return f.OnCell(value)
	}
	return value
}
