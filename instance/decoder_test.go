package instance_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cspath/instance"
)

const sampleInput = `3 100
0 1 5
1 0 1
5 1 0
0 2 10
2 0 2
10 2 0
0 0
`

func TestDecoder_Sample(t *testing.T) {
	dec := instance.NewDecoder(strings.NewReader(sampleInput))

	in, err := dec.Next()
	require.NoError(t, err)
	assert.Equal(t, 0, in.Index)
	assert.Equal(t, 3, in.Nodes())
	assert.Equal(t, int64(100), in.TimeLimit)

	v, err := in.Time.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v, "time matrix comes first")
	v, err = in.Cost.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(10), v, "cost matrix comes second")

	_, err = dec.Next()
	require.ErrorIs(t, err, io.EOF)
	_, err = dec.Next()
	require.ErrorIs(t, err, io.EOF, "EOF is sticky")
}

func TestDecoder_LayoutIsFree(t *testing.T) {
	// Same record on one line, with tabs, plus a second record.
	in := "3\t100 0 1 5 1 0 1 5 1 0 0 2 10 2 0 2 10 2 0\n1 7 0 0 0 0"
	dec := instance.NewDecoder(strings.NewReader(in))

	first, err := dec.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, first.Nodes())

	second, err := dec.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, second.Index)
	assert.Equal(t, 1, second.Nodes())
	assert.Equal(t, int64(7), second.TimeLimit)

	_, err = dec.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestDecoder_StopsAtTerminator(t *testing.T) {
	dec := instance.NewDecoder(strings.NewReader("0 0\n1 5 0 0"))
	_, err := dec.Next()
	require.ErrorIs(t, err, io.EOF, "records after the terminator are ignored")
}

func TestDecoder_MissingTerminator(t *testing.T) {
	in := "1 5 0 0"

	dec := instance.NewDecoder(strings.NewReader(in))
	_, err := dec.Next()
	require.NoError(t, err)
	_, err = dec.Next()
	require.ErrorIs(t, err, io.EOF)

	dec = instance.NewDecoder(strings.NewReader(in), instance.WithStrictSentinel())
	_, err = dec.Next()
	require.NoError(t, err)
	_, err = dec.Next()
	require.ErrorIs(t, err, instance.ErrMissingSentinel)
}

func TestDecoder_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"letters", "3 abc", instance.ErrSyntax},
		{"float", "1 2.5 0 0", instance.ErrSyntax},
		{"negative nodes", "-1 5", instance.ErrBadHeader},
		{"zero nodes with limit", "0 5", instance.ErrBadHeader},
		{"header cut", "3", instance.ErrTruncated},
		{"matrix cut", "2 10 0 1 1 0 0 4", instance.ErrTruncated},
		{"too large", "100000 1", instance.ErrTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dec := instance.NewDecoder(strings.NewReader(tc.in))
			_, err := dec.Next()
			require.ErrorIs(t, err, tc.want)
			assert.False(t, errors.Is(err, io.EOF))
		})
	}
}

func TestDecoder_ErrorNamesPosition(t *testing.T) {
	dec := instance.NewDecoder(strings.NewReader("1 5 0 0\n2 5 0 x"))
	_, err := dec.Next()
	require.NoError(t, err)

	_, err = dec.Next()
	require.ErrorIs(t, err, instance.ErrSyntax)
	assert.Contains(t, err.Error(), "record 1")
	assert.Contains(t, err.Error(), `"x"`)

	_, err = dec.Next()
	require.ErrorIs(t, err, io.EOF, "decoder stops after an error")
}

func TestDecoder_MaxNodes(t *testing.T) {
	dec := instance.NewDecoder(strings.NewReader("3 1"), instance.WithMaxNodes(2))
	_, err := dec.Next()
	require.ErrorIs(t, err, instance.ErrTooLarge)
}
