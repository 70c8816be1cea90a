package ir

import (
	"fmt"
	"maps"
	"slices"
)

// Node is one JSON value. The Type tag selects which of the payload
// fields is meaningful:
//
//   - NullType: none
//   - BoolType: Bool
//   - NumberType: Float64 (JSON numbers carry no int/float distinction)
//   - StringType: String
//   - ArrayType: Values
//   - ObjectType: Fields and Values in parallel, insertion order
//
// A Node exclusively owns its subtree; mutation installs or moves whole
// subtrees, never aliases, so trees stay acyclic and tear down by
// ordinary garbage collection.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []string
	Values      []*Node

	String  string
	Bool    bool
	Float64 float64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: NumberType, Float64: v}
}

// FromInt funnels into the float64 representation; values beyond 2^53
// lose precision silently.
func FromInt(v int64) *Node {
	return FromFloat(float64(v))
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	for i, v := range vs {
		v.Parent = res
		v.ParentIndex = i
		res.Values[i] = v
	}
	return res
}

// FromMap builds an Object with keys in sorted order, since Go map
// iteration order would otherwise leak into serialization.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]string, 0, len(m))
	res.Values = make([]*Node, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		v := m[key]
		v.Parent = res
		v.ParentIndex = len(res.Values)
		v.ParentField = key
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, v)
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an Object preserving the given entry order.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]string, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.ParentField = kv.Key
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// Get returns the value stored under field, or nil. It never creates.
func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// At returns the child stored under field. It fails with
// ErrTypeMismatch on non-objects and ErrKeyNotFound on a miss; it
// never creates.
func (y *Node) At(field string) (*Node, error) {
	if y.Type != ObjectType {
		return nil, fmt.Errorf("%w: at(%q) on %s", ErrTypeMismatch, field, y.Type)
	}
	if v := Get(y, field); v != nil {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, field)
}

// Index returns the i'th element of an array.
func (y *Node) Index(i int) (*Node, error) {
	if y.Type != ArrayType {
		return nil, fmt.Errorf("%w: index on %s", ErrTypeMismatch, y.Type)
	}
	if i < 0 || i >= len(y.Values) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(y.Values))
	}
	return y.Values[i], nil
}

// Set inserts or updates field. A Null receiver auto-vivifies into an
// empty Object first; any other non-Object receiver is left unchanged
// and Set fails with ErrTypeMismatch.
func (y *Node) Set(field string, child *Node) error {
	switch y.Type {
	case ObjectType:
	case NullType:
		y.Type = ObjectType
	default:
		return fmt.Errorf("%w: cannot assign key %q into %s", ErrTypeMismatch, field, y.Type)
	}
	child.Parent = y
	child.ParentField = field
	for i := range y.Fields {
		if y.Fields[i] == field {
			child.ParentIndex = i
			y.Values[i] = child
			return nil
		}
	}
	child.ParentIndex = len(y.Values)
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, child)
	return nil
}

// SetIndex replaces the i'th element of an array.
func (y *Node) SetIndex(i int, child *Node) error {
	if y.Type != ArrayType {
		return fmt.Errorf("%w: cannot assign index %d into %s", ErrTypeMismatch, i, y.Type)
	}
	if i < 0 || i >= len(y.Values) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(y.Values))
	}
	child.Parent = y
	child.ParentIndex = i
	y.Values[i] = child
	return nil
}

// Append adds an element to an array. Like Set, a Null receiver
// auto-vivifies, here into an empty Array.
func (y *Node) Append(child *Node) error {
	switch y.Type {
	case ArrayType:
	case NullType:
		y.Type = ArrayType
	default:
		return fmt.Errorf("%w: cannot append to %s", ErrTypeMismatch, y.Type)
	}
	child.Parent = y
	child.ParentIndex = len(y.Values)
	y.Values = append(y.Values, child)
	return nil
}

// Delete removes field from an object, reporting whether it was
// present.
func (y *Node) Delete(field string) bool {
	if y.Type != ObjectType {
		return false
	}
	for i := range y.Fields {
		if y.Fields[i] != field {
			continue
		}
		y.Fields = slices.Delete(y.Fields, i, i+1)
		y.Values = slices.Delete(y.Values, i, i+1)
		for j := i; j < len(y.Values); j++ {
			y.Values[j].ParentIndex = j
		}
		return true
	}
	return false
}

func (y *Node) IsNull() bool   { return y.Type == NullType }
func (y *Node) IsBool() bool   { return y.Type == BoolType }
func (y *Node) IsNumber() bool { return y.Type == NumberType }
func (y *Node) IsString() bool { return y.Type == StringType }
func (y *Node) IsArray() bool  { return y.Type == ArrayType }
func (y *Node) IsObject() bool { return y.Type == ObjectType }

func (y *Node) AsString() (string, error) {
	if y.Type != StringType {
		return "", fmt.Errorf("%w: %s is not String", ErrTypeMismatch, y.Type)
	}
	return y.String, nil
}

func (y *Node) AsFloat() (float64, error) {
	if y.Type != NumberType {
		return 0, fmt.Errorf("%w: %s is not Number", ErrTypeMismatch, y.Type)
	}
	return y.Float64, nil
}

func (y *Node) AsBool() (bool, error) {
	if y.Type != BoolType {
		return false, fmt.Errorf("%w: %s is not Bool", ErrTypeMismatch, y.Type)
	}
	return y.Bool, nil
}

// Contains reports whether an object stores field.
func (y *Node) Contains(field string) bool {
	return y.Type == ObjectType && Get(y, field) != nil
}

// Len is the element count of an array or entry count of an object,
// and 0 for leaves.
func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) Empty() bool {
	return len(y.Values) == 0
}

// FloatOr returns def when field is absent. A present value of the
// wrong variant still fails with ErrTypeMismatch.
func (y *Node) FloatOr(field string, def float64) (float64, error) {
	v := Get(y, field)
	if v == nil {
		return def, nil
	}
	return v.AsFloat()
}

func (y *Node) StringOr(field string, def string) (string, error) {
	v := Get(y, field)
	if v == nil {
		return def, nil
	}
	return v.AsString()
}

func (y *Node) BoolOr(field string, def bool) (bool, error) {
	v := Get(y, field)
	if v == nil {
		return def, nil
	}
	return v.AsBool()
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Float64 = y.Float64
	dst.Fields = slices.Clone(y.Fields)
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	return dst
}

// Visit walks the subtree, calling f before (isPost false) and after
// (isPost true) each node. Returning false from the pre call skips the
// node's children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive && !y.Type.IsLeaf() {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
