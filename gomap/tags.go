package gomap

import (
	"reflect"
	"strings"
)

// fieldInfo holds field metadata extracted from struct tags.
type fieldInfo struct {
	// Name is the document entry name, after any tag renaming.
	Name string

	// Index is the field's index in its struct.
	Index int

	// Omit marks fields excluded from mapping (`jdom:"-"`).
	Omit bool

	// Optional fields may be absent from the document; the Go zero
	// value is kept. Every field is required unless it opts in with
	// the "optional" tag flag.
	Optional bool
}

// parseFieldTag reads a `jdom:"..."` tag: the first comma-separated
// part renames the entry (empty keeps the field name), later parts are
// flags.
func parseFieldTag(field reflect.StructField, i int) *fieldInfo {
	info := &fieldInfo{
		Name:  field.Name,
		Index: i,
	}
	tag := field.Tag.Get("jdom")
	if tag == "" {
		return info
	}
	parts := strings.Split(tag, ",")
	if parts[0] == "-" && len(parts) == 1 {
		info.Omit = true
		return info
	}
	if parts[0] != "" {
		info.Name = parts[0]
	}
	for _, flag := range parts[1:] {
		switch flag {
		case "optional":
			info.Optional = true
		case "required":
			info.Optional = false
		}
	}
	return info
}

// structFields lists the mappable fields of a struct type in
// declaration order.
func structFields(typ reflect.Type) []*fieldInfo {
	res := make([]*fieldInfo, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		info := parseFieldTag(field, i)
		if info.Omit {
			continue
		}
		res = append(res, info)
	}
	return res
}
