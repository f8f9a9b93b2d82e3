package scan

import "github.com/ghettovoice/ascgrid"

type chain []ascgrid.ScanListener

// Chain combines listeners into one.
//
// Boundary hooks are called on each listener in order. A cell is passed through the
// listeners in order, each receiving the value returned by the previous one.
// Nil listeners are skipped, Chain of no listeners returns nil.
func Chain(ls ...ascgrid.ScanListener) ascgrid.ScanListener {
	c := make(chain, 0, len(ls))
	for _, l := range ls {
		if l == nil {
			continue
		}
		if nested, ok := l.(chain); ok {
			c = append(c, nested...)
			continue
		}
		c = append(c, l)
	}
	switch len(c) {
	case 0:
		return nil
	case 1:
		return c[0]
	default:
		return c
	}
}

func (c chain) GridBegin() {
	for _, l := range c {
		l.GridBegin()
	}
}

func (c chain) GridEnd() {
	for _, l := range c {
		l.GridEnd()
	}
}

func (c chain) RowBegin() {
	for _, l := range c {
		l.RowBegin()
	}
}

func (c chain) RowEnd() {
	for _, l := range c {
		l.RowEnd()
	}
}

func (c chain) Cell(value string) string {
	for _, l := range c {
		value = l.Cell(value)
	}
	return value
}
