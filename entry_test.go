package mtree

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsMerge(t *testing.T) {
	uid := uint64(0)
	mode644, err := parseFileMode([]byte("644"))
	require.NoError(t, err)
	base := Params{UID: &uid, Mode: &mode644, Ignore: true}

	newUID := uint64(1000)
	size := uint64(10)
	base.merge(&Params{UID: &newUID, Size: &size})

	assert.Equal(t, uint64(1000), *base.UID)
	assert.Equal(t, uint64(10), *base.Size)
	// Untouched attributes survive the merge.
	assert.Equal(t, mode644, *base.Mode)
	assert.True(t, base.Ignore)
}

func TestParamsMergeFlagsNeverClear(t *testing.T) {
	base := Params{Ignore: true, Optional: true}
	base.merge(&Params{NoChange: true})
	assert.True(t, base.Ignore)
	assert.True(t, base.Optional)
	assert.True(t, base.NoChange)
}

func TestParamsString(t *testing.T) {
	size := uint64(8602)
	uid := uint64(0)
	ts := time.Unix(1523250074, 300237174)
	typ := TypeFile
	mode, err := parseFileMode([]byte("644"))
	require.NoError(t, err)

	p := Params{
		Size: &size,
		UID:  &uid,
		Time: &ts,
		Type: &typ,
		Mode: &mode,
		MD5:  []byte{0x13, 0xc0},
	}
	s := p.String()
	assert.Contains(t, s, "size: 8602")
	assert.Contains(t, s, "uid: 0")
	assert.Contains(t, s, "type: file")
	assert.Contains(t, s, "mode: rw-r--r--")
	assert.Contains(t, s, "md5: 13c0")

	// Absent attributes render nothing.
	assert.NotContains(t, s, "gid")
	assert.NotContains(t, s, "sha256")
}

func TestEntryString(t *testing.T) {
	size := uint64(1)
	e := Entry{Path: "./x", Params: Params{Size: &size}}
	s := e.String()
	assert.Contains(t, s, `mtree entry for "./x"`)
	assert.Contains(t, s, "size: 1")
}
