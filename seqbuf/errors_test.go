package seqbuf_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"seqbuf-generator/seqbuf"
)

func TestError_Messages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  *seqbuf.Error
		want string
	}{
		{
			err:  &seqbuf.Error{Op: "seqbuf.New", Kind: seqbuf.KindInvalidCapacity},
			want: "seqbuf.New: initial capacity (0) must be greater than 0",
		},
		{
			err:  &seqbuf.Error{Op: "Buffer.Get", Kind: seqbuf.KindOutOfBounds, Index: 5, Bound: 3},
			want: "Buffer.Get: index (5) out of bounds (3)",
		},
		{
			err:  &seqbuf.Error{Op: "Buffer.grow", Kind: seqbuf.KindGrowthOverflow, Index: 6, Bound: 5},
			want: "Buffer.grow: capacity (6) cannot be doubled without overflow, max allowed is 5 entries",
		},
		{
			err:  &seqbuf.Error{Op: "Buffer.Push", Kind: seqbuf.KindReleased},
			want: "Buffer.Push: buffer has been released",
		},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.Error())
	}
}

func TestError_IsThroughWrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading: %w", seqbuf.CheckIndex("op", 4, 4))

	require.ErrorIs(t, err, seqbuf.ErrOutOfBounds)
	assert.False(t, errors.Is(err, seqbuf.ErrGrowthOverflow))
	assert.NoError(t, seqbuf.CheckIndex("op", 3, 4))
	assert.NoError(t, seqbuf.CheckPosition("op", 4, 4))
	assert.ErrorIs(t, seqbuf.CheckPosition("op", 5, 4), seqbuf.ErrOutOfBounds)
}

func TestErrorKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "OutOfBounds", seqbuf.KindOutOfBounds.String())
	assert.Equal(t, "Released", seqbuf.KindReleased.String())
	assert.Equal(t, "ErrorKind(0)", seqbuf.ErrorKind(0).String())
}

func TestBuffer_ReportsFailuresToLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)

	b, err := seqbuf.New[string](2, seqbuf.WithLogger(zap.New(core)))
	require.NoError(t, err)

	require.NoError(t, b.Push("a"))
	assert.Equal(t, 0, logs.Len(), "successful operations stay silent")

	require.Error(t, b.Remove(4))
	require.Equal(t, 1, logs.Len())

	entry := logs.All()[0]
	fields := entry.ContextMap()
	assert.Equal(t, "Buffer.Remove", fields["op"])
	assert.Equal(t, "OutOfBounds", fields["kind"])
	assert.EqualValues(t, 4, fields["index"])
	assert.EqualValues(t, 1, fields["bound"])
}

func TestNew_ReportsToLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)

	_, err := seqbuf.New[byte](0, seqbuf.WithLogger(zap.New(core)))
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterField(zap.String("op", "seqbuf.New")).Len())
}

func TestWithLogger_Nil(t *testing.T) {
	t.Parallel()

	b, err := seqbuf.New[int](1, seqbuf.WithLogger(nil))
	require.NoError(t, err)
	assert.Error(t, b.Set(0, 1))
}

// Not parallel: swaps the package logger.
func TestSetLogger_NilRestoresNop(t *testing.T) {
	t.Cleanup(func() { seqbuf.SetLogger(nil) })

	_ = seqbuf.Logger()
	seqbuf.SetLogger(nil)
	require.NotNil(t, seqbuf.Logger())

	b, err := seqbuf.New[int](1)
	require.NoError(t, err)

	require.NotPanics(t, func() {
		assert.ErrorIs(t, b.Get(5, nil), seqbuf.ErrOutOfBounds)
	})

	var zero seqbuf.Settings
	require.NotPanics(t, func() {
		assert.ErrorIs(t, zero.Report(seqbuf.Released("op")), seqbuf.ErrReleased)
	})
}

// Not parallel: swaps the package logger.
func TestSetLogger_UsedByNewBuffers(t *testing.T) {
	t.Cleanup(func() { seqbuf.SetLogger(nil) })

	core, logs := observer.New(zapcore.WarnLevel)
	seqbuf.SetLogger(zap.New(core))

	b, err := seqbuf.New[int](1)
	require.NoError(t, err)
	require.Error(t, b.Remove(0))

	assert.Equal(t, 1, logs.FilterField(zap.String("op", "Buffer.Remove")).Len())
}
