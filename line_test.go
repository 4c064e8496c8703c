package mtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLineKinds(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind lineKind
		wantName string
	}{
		{"empty", "", lineBlank, ""},
		{"spaces only", "    ", lineBlank, ""},
		{"comment", "# user: root", lineComment, "# user: root"},
		{"comment no space", "#user", lineComment, "#user"},
		{"dotdot", "..", lineDotDot, ""},
		{"dotdot with trailing junk", ".. whatever=1 bogus", lineDotDot, ""},
		{"set", "/set type=file", lineSet, ""},
		{"relative", ".BUILDINFO size=8602", lineRelative, ".BUILDINFO"},
		{"relative bare", "etc", lineRelative, "etc"},
		{"full leading dot slash", "./usr/bin type=dir", lineFull, "./usr/bin"},
		{"full nested", "usr/bin/env size=1", lineFull, "usr/bin/env"},
		{"repeated spaces collapse", "etc   size=10    uid=0", lineRelative, "etc"},
		{"dotdot name with suffix is an entry", "..foo", lineRelative, "..foo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := classifyLine([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, got.kind)
			if tt.wantName != "" {
				assert.Equal(t, []byte(tt.wantName), got.name)
			}
		})
	}
}

func TestClassifyLineLeadingSlashIsDirective(t *testing.T) {
	// A leading '/' always reads as a directive word, so an absolute path
	// is not representable as an entry line.
	_, err := classifyLine([]byte("/usr/bin/env size=1"))
	require.ErrorIs(t, err, ErrUnknownDirective)
}

func TestClassifyLineDirectives(t *testing.T) {
	t.Run("set collects keywords", func(t *testing.T) {
		got, err := classifyLine([]byte("/set type=file uid=0 gid=0 mode=644"))
		require.NoError(t, err)
		assert.Equal(t, lineSet, got.kind)
		require.NotNil(t, got.delta)
		require.NotNil(t, got.delta.Type)
		assert.Equal(t, TypeFile, *got.delta.Type)
		require.NotNil(t, got.delta.UID)
		assert.Equal(t, uint64(0), *got.delta.UID)
		require.NotNil(t, got.delta.Mode)
		assert.Equal(t, "rw-r--r--", got.delta.Mode.String())
	})

	t.Run("set with no keywords", func(t *testing.T) {
		got, err := classifyLine([]byte("/set"))
		require.NoError(t, err)
		assert.Equal(t, lineSet, got.kind)
	})

	t.Run("unset is refused", func(t *testing.T) {
		_, err := classifyLine([]byte("/unset type"))
		require.ErrorIs(t, err, ErrUnsetUnsupported)
	})

	t.Run("unknown directive", func(t *testing.T) {
		_, err := classifyLine([]byte("/frobnicate uid=0"))
		require.ErrorIs(t, err, ErrUnknownDirective)
		assert.Contains(t, err.Error(), "frobnicate")
	})
}

func TestClassifyLineKeywordFailureAbortsLine(t *testing.T) {
	t.Run("entry line", func(t *testing.T) {
		_, err := classifyLine([]byte("foo size=1 bogus_key=1 uid=0"))
		require.ErrorIs(t, err, ErrUnknownKeyword)
	})
	t.Run("set line", func(t *testing.T) {
		_, err := classifyLine([]byte("/set uid=0 size=wat"))
		require.Error(t, err)
	})
}

func TestClassifyLineLaterKeywordOverwrites(t *testing.T) {
	got, err := classifyLine([]byte("foo size=1 size=2"))
	require.NoError(t, err)
	require.NotNil(t, got.delta.Size)
	assert.Equal(t, uint64(2), *got.delta.Size)
}
