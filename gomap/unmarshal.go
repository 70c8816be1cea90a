package gomap

import (
	"encoding"
	"fmt"
	"math"
	"reflect"

	"github.com/jdom-format/go-jdom/ir"
)

// NodeUnmarshaler lets a type control its own decoding from IR.
// FromIR dispatches to it (on the pointer receiver) before falling
// back to reflection.
type NodeUnmarshaler interface {
	FromNode(*ir.Node) error
}

// FromIR decodes node into out, which must be a non-nil pointer.
//
// Struct fields without the optional marker must be present in the
// document; a miss is a *MissingFieldError. Entries in the document
// with no corresponding field are ignored. A value of the wrong
// variant is a *FieldTypeError.
func FromIR(node *ir.Node, out any) error {
	val := reflect.ValueOf(out)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return &UnmarshalError{Message: fmt.Sprintf("out must be a non-nil pointer, got %T", out)}
	}
	return fromIRValue(node, val.Elem(), "")
}

func fromIRValue(node *ir.Node, val reflect.Value, fieldPath string) error {
	if val.CanAddr() {
		if nu, ok := val.Addr().Interface().(NodeUnmarshaler); ok {
			return nu.FromNode(node)
		}
	}

	switch val.Kind() {
	case reflect.Ptr:
		if node.IsNull() {
			val.SetZero()
			return nil
		}
		if val.IsNil() {
			val.Set(reflect.New(val.Type().Elem()))
		}
		return fromIRValue(node, val.Elem(), fieldPath)

	case reflect.Interface:
		if val.NumMethod() != 0 {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("cannot decode into non-empty interface %s", val.Type()),
			}
		}
		val.Set(reflect.ValueOf(ir.ToAny(node)))
		return nil

	case reflect.String:
		if val.CanAddr() {
			if tu, ok := val.Addr().Interface().(encoding.TextUnmarshaler); ok && node.IsString() {
				return tu.UnmarshalText([]byte(node.String))
			}
		}
		if !node.IsString() {
			return typeErr(fieldPath, "string", node)
		}
		val.SetString(node.String)
		return nil

	case reflect.Bool:
		if !node.IsBool() {
			return typeErr(fieldPath, "bool", node)
		}
		val.SetBool(node.Bool)
		return nil

	case reflect.Float32, reflect.Float64:
		if !node.IsNumber() {
			return typeErr(fieldPath, "number", node)
		}
		val.SetFloat(node.Float64)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !node.IsNumber() {
			return typeErr(fieldPath, "number", node)
		}
		if node.Float64 != math.Trunc(node.Float64) {
			return typeErr(fieldPath, "integer", node)
		}
		val.SetInt(int64(node.Float64))
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if !node.IsNumber() {
			return typeErr(fieldPath, "number", node)
		}
		if node.Float64 < 0 || node.Float64 != math.Trunc(node.Float64) {
			return typeErr(fieldPath, "unsigned integer", node)
		}
		val.SetUint(uint64(node.Float64))
		return nil

	case reflect.Slice:
		if node.IsNull() {
			val.SetZero()
			return nil
		}
		if !node.IsArray() {
			return typeErr(fieldPath, "array", node)
		}
		res := reflect.MakeSlice(val.Type(), len(node.Values), len(node.Values))
		for i, elt := range node.Values {
			if err := fromIRValue(elt, res.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i)); err != nil {
				return err
			}
		}
		val.Set(res)
		return nil

	case reflect.Array:
		if !node.IsArray() {
			return typeErr(fieldPath, "array", node)
		}
		if len(node.Values) != val.Len() {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("array length %d does not fit [%d]%s", len(node.Values), val.Len(), val.Type().Elem()),
			}
		}
		for i, elt := range node.Values {
			if err := fromIRValue(elt, val.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i)); err != nil {
				return err
			}
		}
		return nil

	case reflect.Map:
		return fromIRMap(node, val, fieldPath)

	case reflect.Struct:
		return fromIRStruct(node, val, fieldPath)

	default:
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type: %s", val.Type()),
		}
	}
}

func fromIRMap(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.IsNull() {
		val.SetZero()
		return nil
	}
	if !node.IsObject() {
		return typeErr(fieldPath, "object", node)
	}
	typ := val.Type()
	if typ.Key().Kind() != reflect.String {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", typ.Key()),
		}
	}
	res := reflect.MakeMapWithSize(typ, len(node.Fields))
	for i, f := range node.Fields {
		elt := reflect.New(typ.Elem()).Elem()
		if err := fromIRValue(node.Values[i], elt, joinPath(fieldPath, f)); err != nil {
			return err
		}
		res.SetMapIndex(reflect.ValueOf(f).Convert(typ.Key()), elt)
	}
	val.Set(res)
	return nil
}

func fromIRStruct(node *ir.Node, val reflect.Value, fieldPath string) error {
	if !node.IsObject() {
		return typeErr(fieldPath, "object", node)
	}
	for _, info := range structFields(val.Type()) {
		child := ir.Get(node, info.Name)
		if child == nil {
			if info.Optional {
				continue
			}
			return &MissingFieldError{FieldPath: fieldPath, Field: info.Name}
		}
		if err := fromIRValue(child, val.Field(info.Index), joinPath(fieldPath, info.Name)); err != nil {
			return err
		}
	}
	return nil
}

func typeErr(fieldPath, expected string, node *ir.Node) error {
	return &FieldTypeError{
		FieldPath: fieldPath,
		Expected:  expected,
		Actual:    node.Type.String(),
	}
}
