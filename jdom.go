package jdom

import (
	"bytes"
	"io"

	"github.com/jdom-format/go-jdom/encode"
	"github.com/jdom-format/go-jdom/gomap"
	"github.com/jdom-format/go-jdom/ir"
	"github.com/jdom-format/go-jdom/parse"
)

// Parse reads a JSON document from d.
func Parse(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

// ParseFile reads a JSON document from the file at path.
func ParseFile(path string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseFile(path, opts...)
}

// Serialize renders node to w, minimized by default.
func Serialize(node *ir.Node, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(node, w, opts...)
}

// SerializeBytes renders node to a byte slice.
func SerializeBytes(node *ir.Node, opts ...encode.EncodeOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Marshal converts a Go value to JSON bytes.
func Marshal(v any, opts ...encode.EncodeOption) ([]byte, error) {
	return gomap.Marshal(v, opts...)
}

// Unmarshal parses JSON bytes into out.
func Unmarshal(d []byte, out any, opts ...parse.ParseOption) error {
	return gomap.Unmarshal(d, out, opts...)
}
