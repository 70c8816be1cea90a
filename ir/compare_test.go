package ir

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareTotalOrder(t *testing.T) {
	ordered := []*Node{
		Null(),
		FromBool(false),
		FromBool(true),
		FromFloat(-1),
		FromFloat(2.5),
		FromString("a"),
		FromString("b"),
		FromSlice([]*Node{FromInt(1)}),
		FromSlice([]*Node{FromInt(1), FromInt(0)}),
		FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
		FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(1)}}),
	}
	for i := range ordered {
		require.Zero(t, Compare(ordered[i], ordered[i]))
		for j := i + 1; j < len(ordered); j++ {
			require.Negative(t, Compare(ordered[i], ordered[j]), "%d vs %d", i, j)
			require.Positive(t, Compare(ordered[j], ordered[i]), "%d vs %d", j, i)
		}
	}
}

func TestCompareSorts(t *testing.T) {
	vs := []*Node{FromString("x"), Null(), FromFloat(2), FromBool(true)}
	slices.SortFunc(vs, Compare)
	require.True(t, vs[0].IsNull())
	require.True(t, vs[1].IsBool())
	require.True(t, vs[2].IsNumber())
	require.True(t, vs[3].IsString())
}
