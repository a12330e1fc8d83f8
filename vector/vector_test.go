package vector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rowpack/encoding"
	"github.com/arloliu/rowpack/format"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		vec  Vector
		kind format.ElementKind
		n    int
	}{
		{NewString("a", "b"), format.KindString, 2},
		{NewBoolean(true, false, true), format.KindBoolean, 3},
		{NewInteger(1), format.KindInteger, 1},
		{NewDouble(), format.KindDouble, 0},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			require.Equal(t, tt.kind, tt.vec.Kind())
			require.Equal(t, tt.n, tt.vec.Len())
		})
	}
}

func TestNewBoolean(t *testing.T) {
	v := NewBoolean(true, false)
	require.Equal(t, []encoding.Bool{encoding.BoolTrue, encoding.BoolFalse}, v.Values)
}

func TestString_Missing(t *testing.T) {
	v := NewString("ab")
	require.False(t, v.IsMissing(0))
	require.False(t, v.IsMissing(5))

	v.AppendNA()
	v.Append("cd")

	require.Equal(t, 3, v.Len())
	require.Equal(t, []bool{false, true, false}, v.Missing)
	require.True(t, v.IsMissing(1))
	require.False(t, v.IsMissing(2))
}
