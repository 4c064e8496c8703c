package mtree

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKeyword is returned when a line carries a keyword this
	// package does not recognize.
	ErrUnknownKeyword = errors.New("mtree: unknown keyword")

	// ErrMissingValue is returned when a keyword that requires a value
	// appears without one.
	ErrMissingValue = errors.New("mtree: keyword requires a value")

	// ErrUnknownDirective is returned for a '/' line whose directive word
	// is neither "set" nor "unset".
	ErrUnknownDirective = errors.New("mtree: unknown directive")

	// ErrUnsetUnsupported is returned for /unset lines. The directive is
	// part of the format, but this package does not implement it and
	// refuses it explicitly rather than silently ignoring it.
	ErrUnsetUnsupported = errors.New("mtree: /unset directive is not supported")

	// ErrUnknownFileType is returned when a type keyword names an
	// unrecognized file type.
	ErrUnknownFileType = errors.New("mtree: unknown file type")

	// ErrNoCurrentDirectory is returned when a relative entry appears but
	// no current directory could be established for the parse session.
	ErrNoCurrentDirectory = errors.New("mtree: relative entry without a current directory")

	// ErrPopAtRoot is returned under WithStrictDirectoryPop when a ".."
	// line appears with no parent directory left to pop to.
	ErrPopAtRoot = errors.New(`mtree: ".." with no parent directory`)
)

// ParseError reports one manifest line that failed to decode. The Reader
// stays usable after returning one; the caller decides whether to keep
// consuming lines.
type ParseError struct {
	// Line is the 1-based line number within the input.
	Line int

	// Text is the raw line as read, without its line break.
	Text string

	// Err is the underlying cause.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
