package mtree

import (
	"bufio"
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// lineSource yields manifest lines one at a time, stripping the line
// break and one trailing '\r' for CRLF input. Gzip- and zstd-compressed
// input is detected by its magic bytes and decompressed transparently.
type lineSource struct {
	raw  io.Reader
	buf  *bufio.Reader
	line int
}

func newLineSource(r io.Reader) *lineSource {
	return &lineSource{raw: r}
}

// sniff inspects the stream head for compression magic and installs the
// buffered, decompressed reader. Streams shorter than the longest magic
// are read as plain text.
func (s *lineSource) sniff() error {
	br := bufio.NewReader(s.raw)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF {
		return err
	}
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return err
		}
		s.buf = bufio.NewReader(zr)
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return err
		}
		s.buf = bufio.NewReader(zr)
	default:
		s.buf = br
	}
	return nil
}

// next returns the next line and its 1-based line number. It returns
// io.EOF after the final line. Each returned slice is freshly allocated;
// callers may retain sub-slices of it.
func (s *lineSource) next() ([]byte, int, error) {
	if s.buf == nil {
		if err := s.sniff(); err != nil {
			return nil, 0, err
		}
	}
	line, err := s.buf.ReadBytes('\n')
	if len(line) == 0 {
		if err == nil {
			err = io.EOF
		}
		return nil, s.line, err
	}
	s.line++
	if err != nil && err != io.EOF {
		return nil, s.line, err
	}
	line = bytes.TrimSuffix(line, []byte{'\n'})
	line = bytes.TrimSuffix(line, []byte{'\r'})
	return line, s.line, nil
}
