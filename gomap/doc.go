// Package gomap maps between Go values and IR nodes.
//
// ToIR converts Go values (structs, maps, slices, scalars) into
// document trees; FromIR decodes trees back into Go values. Types can
// take over their own conversion by implementing NodeMarshaler or
// NodeUnmarshaler, and encoding.TextMarshaler/TextUnmarshaler are
// honored for string-shaped types.
//
// Struct fields are controlled by `jdom` tags:
//
//	type Server struct {
//		Host string `jdom:"host"`
//		Port int    `jdom:"port"`
//		Note string `jdom:"note,optional"`
//		priv string // unexported, ignored
//		Skip string `jdom:"-"`
//	}
//
// On decoding, every field is required unless its tag carries the
// "optional" flag. A required field absent from the document yields a
// *MissingFieldError and a present value of the wrong variant a
// *FieldTypeError, both naming the path of the offending entry.
//
// # Related Packages
//
//   - github.com/jdom-format/go-jdom/ir - The mapped representation
//   - github.com/jdom-format/go-jdom/parse - Used by Unmarshal
//   - github.com/jdom-format/go-jdom/encode - Used by Marshal
package gomap
