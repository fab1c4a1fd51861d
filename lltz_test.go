package lltz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoidx/lltz/format"
)

func TestOpenAndLookup(t *testing.T) {
	data := []byte(format.Magic)
	data = append(data, 0, 0)
	data = append(data, make([]byte, format.GridBlockSize)...)

	r, err := Open(data)
	require.NoError(t, err)

	got, err := r.Lookup(0, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestOpenBadMagic(t *testing.T) {
	_, err := Open([]byte("not an lltz file"))
	require.Error(t, err)
}
