package mtree

import (
	"bytes"
	"fmt"
)

// lineKind classifies one manifest line.
type lineKind uint8

const (
	// lineBlank has no tokens; always a no-op.
	lineBlank lineKind = iota
	// lineComment starts with '#'.
	lineComment
	// lineSet is a /set directive merging defaults for later entries.
	lineSet
	// lineDotDot pops one component off the current directory.
	lineDotDot
	// lineRelative names a file in the current directory.
	lineRelative
	// lineFull names a file by a path containing a '/', carried verbatim.
	lineFull
)

// classified is the outcome of classifying one raw manifest line.
type classified struct {
	kind lineKind

	// name holds the path bytes for lineRelative and lineFull lines.
	name []byte

	// delta holds the decoded keyword attributes of entry and /set lines.
	delta *Params
}

// classifyLine splits a raw line (line break already stripped) into
// space-separated tokens, collapsing runs of spaces, and classifies it.
//
// Keyword decode failures fail the whole line; a partially decoded
// attribute set is never returned.
func classifyLine(raw []byte) (classified, error) {
	var toks [][]byte
	for _, t := range bytes.Split(raw, []byte{' '}) {
		if len(t) > 0 {
			toks = append(toks, t)
		}
	}

	switch {
	case len(toks) == 0:
		return classified{kind: lineBlank}, nil
	case toks[0][0] == '#':
		return classified{kind: lineComment, name: raw}, nil
	case bytes.Equal(toks[0], []byte("..")):
		// Anything after the ".." is out of scope and ignored.
		return classified{kind: lineDotDot}, nil
	}

	first, rest := toks[0], toks[1:]

	if first[0] == '/' {
		// The directive word is checked before keyword decoding so that
		// an unsupported /unset reports itself: its keywords are
		// value-less and would otherwise fail with a misleading
		// missing-value error.
		switch string(first[1:]) {
		case "set":
		case "unset":
			return classified{}, ErrUnsetUnsupported
		default:
			return classified{}, fmt.Errorf("%w %q", ErrUnknownDirective, first[1:])
		}
		delta, err := decodeKeywords(rest)
		if err != nil {
			return classified{}, err
		}
		return classified{kind: lineSet, delta: delta}, nil
	}

	delta, err := decodeKeywords(rest)
	if err != nil {
		return classified{}, err
	}
	kind := lineRelative
	if bytes.IndexByte(first, '/') >= 0 {
		kind = lineFull
	}
	return classified{kind: kind, name: first, delta: delta}, nil
}

// decodeKeywords decodes each token into a fresh attribute delta. Later
// tokens targeting the same attribute overwrite earlier ones.
func decodeKeywords(toks [][]byte) (*Params, error) {
	delta := new(Params)
	for _, tok := range toks {
		if err := applyKeyword(delta, tok); err != nil {
			return nil, err
		}
	}
	return delta, nil
}
