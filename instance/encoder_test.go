package instance_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cspath/cspath"
	"github.com/katalvlaran/cspath/instance"
)

func TestEncoder_Lines(t *testing.T) {
	var buf bytes.Buffer
	enc := instance.NewEncoder(&buf)

	require.NoError(t, enc.Encode(cspath.Result{Cost: 4, Time: 2, Feasible: true}))
	require.NoError(t, enc.Encode(cspath.Result{Cost: cspath.Infinity, Time: cspath.Infinity}))
	assert.Empty(t, buf.String(), "output is buffered until Flush")

	require.NoError(t, enc.Flush())
	assert.Equal(t, "4 2\n2147483647 2147483647\n", buf.String())
}

func TestEncoder_CustomSentinel(t *testing.T) {
	var buf bytes.Buffer
	enc := instance.NewEncoder(&buf, instance.WithSentinel(-1))
	require.NoError(t, enc.Encode(cspath.Result{}))
	require.NoError(t, enc.Flush())
	assert.Equal(t, "-1 -1\n", buf.String())
}

func TestEncoder_ErrorPolicy(t *testing.T) {
	var buf bytes.Buffer
	enc := instance.NewEncoder(&buf, instance.WithInfeasiblePolicy(instance.InfeasibleError))

	require.NoError(t, enc.Encode(cspath.Result{Cost: 4, Time: 2, Feasible: true}))
	err := enc.Encode(cspath.Result{Cost: cspath.Infinity, Time: cspath.Infinity})
	require.ErrorIs(t, err, cspath.ErrInfeasible)

	require.NoError(t, enc.Flush())
	assert.Equal(t, "4 2\n", buf.String())
}

func TestParseInfeasiblePolicy(t *testing.T) {
	p, err := instance.ParseInfeasiblePolicy("error")
	require.NoError(t, err)
	assert.Equal(t, instance.InfeasibleError, p)
	assert.Equal(t, "error", p.String())

	p, err = instance.ParseInfeasiblePolicy("")
	require.NoError(t, err)
	assert.Equal(t, instance.InfeasibleSentinel, p)

	_, err = instance.ParseInfeasiblePolicy("panic")
	require.ErrorIs(t, err, instance.ErrUnknownPolicy)
}

// TestRoundTrip drives the decoder, solver and encoder the way the CLI does.
func TestRoundTrip(t *testing.T) {
	in := sampleInput[:strings.Index(sampleInput, "0 0\n")] +
		strings.Replace(sampleInput, "3 100", "3 1", 1)

	dec := instance.NewDecoder(strings.NewReader(in))
	var buf bytes.Buffer
	enc := instance.NewEncoder(&buf)
	for {
		rec, err := dec.Next()
		if err != nil {
			break
		}
		res, err := cspath.Solve(rec.Cost, rec.Time, cspath.WithTimeLimit(rec.TimeLimit))
		if err != nil {
			require.ErrorIs(t, err, cspath.ErrInfeasible)
		}
		require.NoError(t, enc.Encode(res))
	}
	require.NoError(t, enc.Flush())
	assert.Equal(t, "4 2\n2147483647 2147483647\n", buf.String())
}
