package trace

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderBasic(t *testing.T) {
	r := NewReader(strings.NewReader("0 1 100\n1 2 200\n2 1 100\n"))

	want := [][2]uint64{{1, 100}, {2, 200}, {1, 100}}
	for i, w := range want {
		id, size, err := r.Next()
		require.NoErrorf(t, err, "request %d", i)
		require.Equalf(t, w[0], id, "request %d id", i)
		require.Equalf(t, w[1], size, "request %d size", i)
	}

	_, _, err := r.Next()
	require.Equal(t, io.EOF, err)
}

func TestReaderSkipsBlankLines(t *testing.T) {
	r := NewReader(strings.NewReader("0 1 100\n\n\n1 2 200\n"))

	id, size, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)
	require.Equal(t, uint64(100), size)

	id, size, err = r.Next()
	require.NoError(t, err)
	require.Equal(t, uint64(2), id)
	require.Equal(t, uint64(200), size)
}

func TestReaderBadLine(t *testing.T) {
	r := NewReader(strings.NewReader("0 1\n"))
	_, _, err := r.Next()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrBadLine)
}
