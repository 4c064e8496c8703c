package mtree

import (
	"errors"
	"io"
	"iter"
	"os"
	"path/filepath"
)

// Reader parses an mtree manifest into a stream of resolved entries.
//
// A Reader owns its parse state: the virtual current directory that
// relative names resolve against, and the attribute defaults accumulated
// by /set directives. One Reader is not safe for concurrent use, but
// separate Readers are fully independent.
type Reader struct {
	src       *lineSource
	dir       string
	defaults  Params
	strictPop bool
}

// NewReader returns a Reader consuming manifest lines from r.
//
// Gzip- and zstd-compressed input is decompressed transparently. The
// virtual current directory starts at the process working directory, or
// empty if that cannot be determined; use WithStartingDirectory to set it
// explicitly.
func NewReader(r io.Reader, opts ...Option) *Reader {
	rd := &Reader{src: newLineSource(r)}
	rd.dir, _ = os.Getwd()
	for _, opt := range opts {
		opt(rd)
	}
	return rd
}

// Next returns the next resolved entry, skipping blank lines, comments
// and directives.
//
// It returns io.EOF once the input is exhausted. A *ParseError reports
// one undecodable line; the Reader remains usable afterwards and Next may
// be called again to continue with the following line. I/O errors from
// the underlying reader are returned unchanged.
func (r *Reader) Next() (*Entry, error) {
	for {
		raw, lineno, err := r.src.next()
		if err != nil {
			return nil, err
		}
		entry, err := r.resolve(raw)
		if err != nil {
			return nil, &ParseError{Line: lineno, Text: string(raw), Err: err}
		}
		if entry != nil {
			return entry, nil
		}
	}
}

// resolve classifies one raw line and applies it to the parse state. A
// nil, nil return means the line produced no entry.
func (r *Reader) resolve(raw []byte) (*Entry, error) {
	c, err := classifyLine(raw)
	if err != nil {
		return nil, err
	}
	switch c.kind {
	case lineBlank, lineComment:
		return nil, nil
	case lineSet:
		r.defaults.merge(c.delta)
		return nil, nil
	case lineDotDot:
		// With no parent left, ".." is a no-op unless strict mode asked
		// for an error. This is a deliberate policy choice; the format
		// leaves the case undefined.
		if parent := filepath.Dir(r.dir); r.dir != "" && parent != r.dir {
			r.dir = parent
			return nil, nil
		}
		if r.strictPop {
			return nil, ErrPopAtRoot
		}
		return nil, nil
	case lineRelative:
		if r.dir == "" {
			return nil, ErrNoCurrentDirectory
		}
		params := r.defaults
		params.merge(c.delta)
		return &Entry{Path: filepath.Join(r.dir, string(c.name)), Params: params}, nil
	case lineFull:
		params := r.defaults
		params.merge(c.delta)
		return &Entry{Path: string(c.name), Params: params}, nil
	}
	return nil, nil
}

// Entries returns a single-use iterator over the Reader's remaining
// results.
//
// Each pair is either one resolved entry or the error for one failed
// line. Iteration continues past per-line parse errors, ends at the end
// of input, and ends after yielding a non-parse (I/O) error, since the
// underlying source cannot make further progress.
func (r *Reader) Entries() iter.Seq2[*Entry, error] {
	return func(yield func(*Entry, error) bool) {
		for {
			entry, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(entry, err) {
				return
			}
			if err != nil {
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					return
				}
			}
		}
	}
}
