package ir

import (
	"fmt"
	"maps"
	"slices"
)

// FromAny converts a native Go value into a Node. Scalars map to their
// variants, []any nests one Array level per literal nesting level, and
// map[string]any becomes an Object (sorted keys, since Go map order is
// not meaningful). Nodes pass through as-is.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case float64:
		return FromFloat(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromInt(int64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return FromFloat(float64(x)), nil
	case []any:
		vs := make([]*Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for _, key := range slices.Sorted(maps.Keys(x)) {
			n, err := FromAny(x[key])
			if err != nil {
				return nil, err
			}
			m[key] = n
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("%w: cannot convert %T", ErrTypeMismatch, v)
	}
}

// ToAny is the inverse of FromAny: Objects become map[string]any,
// Arrays []any, and leaves their scalar values.
func ToAny(y *Node) any {
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case NumberType:
		return y.Float64
	case StringType:
		return y.String
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f] = ToAny(y.Values[i])
		}
		return res
	default:
		panic("type")
	}
}
