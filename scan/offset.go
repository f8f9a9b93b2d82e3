package scan

import (
	"strconv"

	"github.com/ghettovoice/ascgrid/header"
)

// Offset adds Delta to every numeric cell.
// Cells equal to Skip and cells that are not numbers are left as is.
type Offset struct {
	Delta float64
	Skip  string
}

func (Offset) GridBegin() {}

func (Offset) GridEnd() {}

func (Offset) RowBegin() {}

func (Offset) RowEnd() {}

func (o Offset) Cell(value string) string {
	if value == o.Skip {
		return value
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return value
	}
	return header.FormatFloat(f + o.Delta)
}
