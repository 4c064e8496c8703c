package mtree

import (
	"fmt"

	"github.com/meigma/mtree/internal/decode"
)

// Perms is one read/write/execute permission triple.
type Perms uint8

const (
	// PermExecute grants execute (or directory-search) permission.
	PermExecute Perms = 1 << iota
	// PermWrite grants write permission.
	PermWrite
	// PermRead grants read permission.
	PermRead
)

// String renders the triple in ls(1) form, e.g. "rw-".
func (p Perms) String() string {
	buf := [3]byte{'-', '-', '-'}
	if p&PermRead != 0 {
		buf[0] = 'r'
	}
	if p&PermWrite != 0 {
		buf[1] = 'w'
	}
	if p&PermExecute != 0 {
		buf[2] = 'x'
	}
	return string(buf[:])
}

// FileMode holds the owner, group and other permission triples of an
// entry's mode keyword.
type FileMode struct {
	Owner Perms
	Group Perms
	Other Perms
}

// parseFileMode decodes a mode keyword value. Only the three-octal-digit
// numeric form is supported; symbolic mode strings fail.
func parseFileMode(b []byte) (FileMode, error) {
	if len(b) != 3 {
		return FileMode{}, fmt.Errorf("mode %q: want exactly 3 octal digits", b)
	}
	var triples [3]Perms
	for i, c := range b {
		v, ok := decode.OctalDigit(c)
		if !ok {
			return FileMode{}, fmt.Errorf("mode %q: invalid octal digit %q at offset %d", b, c, i)
		}
		triples[i] = Perms(v)
	}
	return FileMode{Owner: triples[0], Group: triples[1], Other: triples[2]}, nil
}

// String renders the mode in symbolic ls(1) form, e.g. "rw-r--r--".
func (m FileMode) String() string {
	return m.Owner.String() + m.Group.String() + m.Other.String()
}
