// Package decode implements the primitive wire decoders used by mtree
// keyword values: overflow-checked decimal integers, exact-length hex
// byte sequences, single octal digits, and fixed-point timestamps.
//
// All decoders report the offending byte and its offset where that is
// meaningful; callers wrap the result with keyword-level context.
package decode

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrOverflow is returned when a decimal value does not fit the target
// integer width.
var ErrOverflow = errors.New("value too large for target width")

type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Decimal decodes b as an unsigned base-10 integer of type T.
//
// Any non-digit byte fails with its offset. Values exceeding T's range
// fail with ErrOverflow rather than wrapping.
func Decimal[T unsigned](b []byte) (T, error) {
	if len(b) == 0 {
		return 0, errors.New("empty decimal value")
	}
	maxVal := ^T(0)
	var acc T
	for i, c := range b {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid decimal digit %q at offset %d in %q", c, i, b)
		}
		d := T(c - '0')
		if acc > maxVal/10 || acc*10 > maxVal-d {
			return 0, fmt.Errorf("%w: %q", ErrOverflow, b)
		}
		acc = acc*10 + d
	}
	return acc, nil
}

// Hex decodes b as exactly size bytes of lower- or upper-case hex.
//
// A length other than 2*size fails with the expected and actual lengths;
// a non-hex byte fails with its offset.
func Hex(b []byte, size int) ([]byte, error) {
	if len(b) != 2*size {
		return nil, fmt.Errorf("hex value %q is %d characters, want %d", b, len(b), 2*size)
	}
	out := make([]byte, size)
	for i := 0; i < size; i++ {
		hi, ok := hexDigit(b[2*i])
		if !ok {
			return nil, fmt.Errorf("invalid hex digit %q at offset %d in %q", b[2*i], 2*i, b)
		}
		lo, ok := hexDigit(b[2*i+1])
		if !ok {
			return nil, fmt.Errorf("invalid hex digit %q at offset %d in %q", b[2*i+1], 2*i+1, b)
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// OctalDigit returns the value of a single octal digit character.
func OctalDigit(c byte) (uint8, bool) {
	if c < '0' || c > '7' {
		return 0, false
	}
	return c - '0', true
}

// Timestamp decodes a fixed-point "seconds.nanoseconds" value. Both
// halves are required and decimal: seconds is unsigned 64-bit,
// nanoseconds unsigned 32-bit.
func Timestamp(b []byte) (secs uint64, nsecs uint32, err error) {
	dot := bytes.IndexByte(b, '.')
	if dot < 0 {
		return 0, 0, fmt.Errorf("timestamp %q has no '.' separator", b)
	}
	secs, err = Decimal[uint64](b[:dot])
	if err != nil {
		return 0, 0, fmt.Errorf("timestamp %q seconds: %w", b, err)
	}
	nsecs, err = Decimal[uint32](b[dot+1:])
	if err != nil {
		return 0, 0, fmt.Errorf("timestamp %q nanoseconds: %w", b, err)
	}
	return secs, nsecs, nil
}
