package gomap

import (
	"encoding"
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/jdom-format/go-jdom/ir"
)

// NodeMarshaler lets a type control its own IR representation. ToIR
// dispatches to it before falling back to reflection.
type NodeMarshaler interface {
	ToNode() (*ir.Node, error)
}

// ToIR converts a Go value to an IR node. Struct fields appear in
// declaration order; map entries in sorted key order. nil pointers,
// slices and maps become Null.
func ToIR(v any) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	visited := make(map[uintptr]string)
	return toIRValue(reflect.ValueOf(v), "", visited)
}

// toIRValue converts one reflect.Value. fieldPath locates errors;
// visited tracks reference types to detect cycles.
func toIRValue(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	if nm, ok := val.Interface().(NodeMarshaler); ok {
		if val.Kind() == reflect.Ptr && val.IsNil() {
			return ir.Null(), nil
		}
		return nm.ToNode()
	}
	if val.CanAddr() {
		if nm, ok := val.Addr().Interface().(NodeMarshaler); ok {
			return nm.ToNode()
		}
	}
	if val.Kind() != reflect.Ptr {
		if tm, ok := val.Interface().(encoding.TextMarshaler); ok {
			text, err := tm.MarshalText()
			if err != nil {
				return nil, &MarshalError{FieldPath: fieldPath, Message: "MarshalText failed", Err: err}
			}
			return ir.FromString(string(text)), nil
		}
	}

	switch val.Kind() {
	case reflect.Ptr:
		if val.IsNil() {
			return ir.Null(), nil
		}
		ptrAddr := val.Pointer()
		if prevPath, seen := visited[ptrAddr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference, previously seen at %q", prevPath),
			}
		}
		visited[ptrAddr] = fieldPath
		node, err := toIRValue(val.Elem(), fieldPath, visited)
		delete(visited, ptrAddr)
		return node, err

	case reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return toIRValue(val.Elem(), fieldPath, visited)

	case reflect.String:
		return ir.FromString(val.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ir.FromFloat(float64(val.Uint())), nil

	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Slice, reflect.Array:
		return toIRSlice(val, fieldPath, visited)

	case reflect.Map:
		return toIRMap(val, fieldPath, visited)

	case reflect.Struct:
		return toIRStruct(val, fieldPath, visited)

	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type: %s", val.Type()),
		}
	}
}

func toIRSlice(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if val.Kind() == reflect.Slice {
		if val.IsNil() {
			return ir.Null(), nil
		}
		slicePtr := val.Pointer()
		if prevPath, seen := visited[slicePtr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference, previously seen at %q", prevPath),
			}
		}
		visited[slicePtr] = fieldPath
		defer delete(visited, slicePtr)
	}
	n := val.Len()
	elts := make([]*ir.Node, n)
	for i := 0; i < n; i++ {
		elt, err := toIRValue(val.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i), visited)
		if err != nil {
			return nil, err
		}
		elts[i] = elt
	}
	return ir.FromSlice(elts), nil
}

func toIRMap(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if val.IsNil() {
		return ir.Null(), nil
	}
	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", val.Type().Key()),
		}
	}
	mapPtr := val.Pointer()
	if prevPath, seen := visited[mapPtr]; seen {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("circular reference, previously seen at %q", prevPath),
		}
	}
	visited[mapPtr] = fieldPath
	defer delete(visited, mapPtr)

	keyVals := make(map[string]reflect.Value, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		keyVals[iter.Key().String()] = iter.Value()
	}
	kvs := make([]ir.KeyVal, 0, len(keyVals))
	for _, key := range slices.Sorted(maps.Keys(keyVals)) {
		node, err := toIRValue(keyVals[key], joinPath(fieldPath, key), visited)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: node})
	}
	return ir.FromKeyVals(kvs), nil
}

func toIRStruct(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	infos := structFields(val.Type())
	kvs := make([]ir.KeyVal, 0, len(infos))
	for _, info := range infos {
		node, err := toIRValue(val.Field(info.Index), joinPath(fieldPath, info.Name), visited)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: info.Name, Val: node})
	}
	return ir.FromKeyVals(kvs), nil
}

func joinPath(fieldPath, name string) string {
	if fieldPath == "" {
		return name
	}
	return fieldPath + "." + name
}
