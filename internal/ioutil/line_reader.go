package ioutil

//go:generate go tool errtrace -w .

import (
	"bufio"
	"io"
	"net/textproto"
	"sync"

	"braces.dev/errtrace"
)

var bufRdrPool = &sync.Pool{
	New: func() any { return bufio.NewReaderSize(nil, 64*1024) },
}

// LineReader reads an input one line at a time.
// Line terminators (LF or CRLF) are stripped, a final line without a terminator is
// still returned. Lines are not limited in length.
type LineReader struct {
	br   *bufio.Reader
	tr   textproto.Reader
	num  int
	done bool
}

// NewLineReader creates a LineReader over r.
// Call Release once the reader is no longer needed to recycle its buffer.
func NewLineReader(r io.Reader) *LineReader {
	br := bufRdrPool.Get().(*bufio.Reader) //nolint:forcetypeassert
	br.Reset(r)
	lr := &LineReader{br: br}
	lr.tr.R = br
	return lr
}

// ReadLine returns the next line.
// It returns [io.EOF] once the input is exhausted, and keeps returning it afterwards.
func (lr *LineReader) ReadLine() (string, error) {
	if lr.done || lr.br == nil {
		return "", io.EOF
	}
	line, err := lr.tr.ReadLine()
	if err != nil {
		lr.done = true
		if err == io.EOF { //nolint:errorlint
			return "", io.EOF //errtrace:skip
		}
		return "", errtrace.Wrap(err)
	}
	lr.num++
	return line, nil
}

// Line returns the 1-based number of the last line returned by ReadLine.
func (lr *LineReader) Line() int { return lr.num }

// Release returns the internal buffer to the pool.
// ReadLine reports io.EOF after Release.
func (lr *LineReader) Release() {
	if lr.br == nil {
		return
	}
	lr.br.Reset(nil)
	bufRdrPool.Put(lr.br)
	lr.br = nil
	lr.tr.R = nil
}
