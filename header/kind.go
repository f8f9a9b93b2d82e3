package header

import (
	"strconv"

	"braces.dev/errtrace"
	"fortio.org/safecast"

	"github.com/ghettovoice/ascgrid/internal/util"
)

// Kind identifies one of the known header fields.
type Kind uint8

const (
	KindUnknown Kind = iota
	NCols
	NRows
	XllCorner
	YllCorner
	XllCenter
	YllCenter
	CellSize
	DX
	DY
	NoData
)

type numParser func(text string) (num float64, n int, err error)

var kinds = [...]struct {
	name  string
	parse numParser
}{
	KindUnknown: {"", nil},
	NCols:       {"ncols", parseInt},
	NRows:       {"nrows", parseInt},
	XllCorner:   {"xllcorner", parseFloat},
	YllCorner:   {"yllcorner", parseFloat},
	XllCenter:   {"xllcenter", parseFloat},
	YllCenter:   {"yllcenter", parseFloat},
	CellSize:    {"cellsize", parseFloat},
	DX:          {"dx", parseFloat},
	DY:          {"dy", parseFloat},
	NoData:      {"NODATA_value", parseFloat},
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kinds))
	for k := NCols; k <= NoData; k++ {
		m[util.LCase(kinds[k].name)] = k
	}
	return m
}()

// LookupKind returns the kind with the given name, ignoring case.
func LookupKind(name string) (Kind, bool) {
	k, ok := kindsByName[util.LCase(name)]
	return k, ok
}

// String returns the canonical field name, e.g. "ncols" or "NODATA_value".
func (k Kind) String() string {
	if !k.IsValid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kinds[k].name
}

// IsValid reports whether k is one of the known field kinds.
func (k Kind) IsValid() bool { return k >= NCols && k <= NoData }

// IsInteger reports whether values of k are parsed as integers.
func (k Kind) IsInteger() bool { return k == NCols || k == NRows }

func parseInt(text string) (float64, int, error) {
	i64, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, 0, errtrace.Wrap(err)
	}
	n, err := safecast.Conv[int](i64)
	if err != nil {
		return 0, 0, errtrace.Wrap(err)
	}
	return float64(n), n, nil
}

func parseFloat(text string) (float64, int, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, 0, errtrace.Wrap(err)
	}
	return f, 0, nil
}
