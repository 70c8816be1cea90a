package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetAutoVivifiesNullOnly(t *testing.T) {
	n := Null()
	require.NoError(t, n.Set("k", FromInt(1)))
	require.True(t, n.IsObject())
	require.True(t, n.Contains("k"))

	for _, bad := range []*Node{
		FromSlice(nil),
		FromString("s"),
		FromFloat(3),
		FromBool(true),
	} {
		err := bad.Set("k", FromInt(1))
		require.ErrorIs(t, err, ErrTypeMismatch)
		// receiver unmodified
		require.False(t, bad.IsObject())
		require.Zero(t, len(bad.Fields))
	}
}

func TestSetUpdatesInPlace(t *testing.T) {
	n := Null()
	require.NoError(t, n.Set("a", FromInt(1)))
	require.NoError(t, n.Set("b", FromInt(2)))
	require.NoError(t, n.Set("a", FromInt(3)))
	require.Equal(t, []string{"a", "b"}, n.Fields)
	v, err := n.At("a")
	require.NoError(t, err)
	require.Equal(t, 3.0, v.Float64)
}

func TestAtAndValueOr(t *testing.T) {
	n := FromKeyVals([]KeyVal{
		{Key: "string", Val: FromString("lorem ipsum")},
		{Key: "number", Val: FromInt(17)},
		{Key: "null", Val: Null()},
	})

	_, err := n.At("missing")
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.True(t, n.Contains("string"))
	require.False(t, n.Contains("missing"))

	got, err := n.FloatOr("number", -5.0)
	require.NoError(t, err)
	require.Equal(t, 17.0, got)

	got, err = n.FloatOr("missing", -5.0)
	require.NoError(t, err)
	require.Equal(t, -5.0, got)

	// present but wrong variant is not suppressed
	_, err = n.FloatOr("string", -5.0)
	require.ErrorIs(t, err, ErrTypeMismatch)
	_, err = n.FloatOr("null", -5.0)
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestIndex(t *testing.T) {
	arr := FromSlice([]*Node{FromInt(1), FromInt(2)})
	v, err := arr.Index(1)
	require.NoError(t, err)
	require.Equal(t, 2.0, v.Float64)
	_, err = arr.Index(2)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = arr.Index(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = FromString("x").Index(0)
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestAppendVivifies(t *testing.T) {
	n := Null()
	require.NoError(t, n.Append(FromInt(1)))
	require.True(t, n.IsArray())
	require.Equal(t, 1, n.Len())
	require.ErrorIs(t, FromBool(false).Append(FromInt(1)), ErrTypeMismatch)
}

func TestEqual(t *testing.T) {
	require.True(t, Equal(Null(), Null()))
	require.False(t, Equal(Null(), FromBool(false)))
	require.True(t, Equal(FromInt(3), FromFloat(3)))
	require.False(t, Equal(FromString("3"), FromFloat(3)))

	a := FromKeyVals([]KeyVal{
		{Key: "x", Val: FromInt(1)},
		{Key: "y", Val: FromSlice([]*Node{FromBool(true), Null()})},
	})
	b := FromKeyVals([]KeyVal{
		{Key: "y", Val: FromSlice([]*Node{FromBool(true), Null()})},
		{Key: "x", Val: FromInt(1)},
	})
	require.True(t, Equal(a, b)) // object entry order does not matter
	require.NoError(t, b.Set("x", FromInt(2)))
	require.False(t, Equal(a, b))

	// array order does matter
	require.False(t, Equal(
		FromSlice([]*Node{FromInt(1), FromInt(2)}),
		FromSlice([]*Node{FromInt(2), FromInt(1)}),
	))
}

func TestCloneIsDeep(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "arr", Val: FromSlice([]*Node{FromInt(1)})},
	})
	cp := orig.Clone()
	require.True(t, Equal(orig, cp))
	inner, err := cp.At("arr")
	require.NoError(t, err)
	require.NoError(t, inner.Append(FromInt(2)))
	require.False(t, Equal(orig, cp))
	origInner, err := orig.At("arr")
	require.NoError(t, err)
	require.Equal(t, 1, origInner.Len())
}

func TestFromAnyNesting(t *testing.T) {
	n, err := FromAny([]any{[]any{[]any{1, 2}, []any{3, 4}}})
	require.NoError(t, err)
	require.True(t, n.IsArray())
	lvl1, err := n.Index(0)
	require.NoError(t, err)
	lvl2, err := lvl1.Index(1)
	require.NoError(t, err)
	leaf, err := lvl2.Index(0)
	require.NoError(t, err)
	require.Equal(t, 3.0, leaf.Float64)

	back := ToAny(n)
	n2, err := FromAny(back)
	require.NoError(t, err)
	require.True(t, Equal(n, n2))
}

func TestPath(t *testing.T) {
	root := Null()
	require.NoError(t, root.Set("a", FromSlice([]*Node{
		FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(7)}}),
	})))
	arr, err := root.At("a")
	require.NoError(t, err)
	elt, err := arr.Index(0)
	require.NoError(t, err)
	inner, err := elt.At("b")
	require.NoError(t, err)
	require.Equal(t, "$.a[0].b", inner.Path())

	got, err := root.GetPath("$.a[0].b")
	require.NoError(t, err)
	require.Equal(t, 7.0, got.Float64)

	missing, err := root.GetPath("$.a[0].zzz")
	require.NoError(t, err)
	require.Nil(t, missing)

	_, err = root.GetPath("$.a.b")
	require.Error(t, err)
}

func TestVisit(t *testing.T) {
	root := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromSlice([]*Node{FromString("x"), Null()})},
	})
	var pre, post int
	err := root.Visit(func(y *Node, isPost bool) (bool, error) {
		if y.Type.IsLeaf() {
			require.Empty(t, y.Values)
		}
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	require.NoError(t, err)
	require.Equal(t, 5, pre)
	require.Equal(t, 5, post)

	// returning false skips children
	var seen int
	err = root.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			seen++
		}
		return false, nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, seen)
}
