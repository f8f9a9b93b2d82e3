package ascgrid

//go:generate go tool errtrace -w .

import (
	"errors"
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/ascgrid/header"
	"github.com/ghettovoice/ascgrid/internal/ioutil"
	"github.com/ghettovoice/ascgrid/internal/util"
)

// bodyStreamer copies the grid body row by row, holding a single line at a time.
type bodyStreamer struct {
	rows, cols int
	src        *ioutil.LineReader
	first      string
	hasFirst   bool
	repl       header.NoDataReplacer
	lsnr       ScanListener
	out        *ioutil.CountingWriter

	row int
}

func (s *bodyStreamer) run() error {
	if s.lsnr != nil {
		s.lsnr.GridBegin()
	}

	// blank lines are rows only when more data follows them
	var blanks int
	for {
		line, err := s.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return errtrace.Wrap(err)
		}
		if util.IsBlank(line) {
			blanks++
			continue
		}
		for ; blanks > 0; blanks-- {
			if err := s.copyRow(""); err != nil {
				return errtrace.Wrap(err)
			}
		}
		if err := s.copyRow(line); err != nil {
			return errtrace.Wrap(err)
		}
	}

	if s.row < s.rows {
		return errtrace.Wrap(&SizeError{Found: s.row, Expected: s.rows})
	}

	if s.lsnr != nil {
		s.lsnr.GridEnd()
	}
	return nil
}

func (s *bodyStreamer) next() (string, error) {
	if s.hasFirst {
		s.hasFirst = false
		return s.first, nil
	}
	return errtrace.Wrap2(s.src.ReadLine())
}

func (s *bodyStreamer) copyRow(line string) error {
	if s.lsnr != nil {
		s.lsnr.RowBegin()
	}

	if s.row >= s.rows {
		return errtrace.Wrap(&SizeError{Found: -1, Expected: s.rows})
	}
	s.row++

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	var n int
	for cell := range strings.FieldsSeq(line) {
		cell = s.repl.Replace(cell)
		if s.lsnr != nil {
			cell = s.lsnr.Cell(cell)
		}
		if n > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(cell)
		n++
	}
	if n != s.cols {
		return errtrace.Wrap(&SizeError{Row: s.row, Found: n, Expected: s.cols})
	}

	if _, err := s.out.WriteLine(sb.String()); err != nil {
		return errtrace.Wrap(err)
	}

	if s.lsnr != nil {
		s.lsnr.RowEnd()
	}
	return nil
}
