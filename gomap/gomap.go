package gomap

import (
	"bytes"

	"github.com/jdom-format/go-jdom/encode"
	"github.com/jdom-format/go-jdom/parse"
)

// Marshal converts a Go value to JSON bytes, going through the IR.
func Marshal(v any, opts ...encode.EncodeOption) ([]byte, error) {
	node, err := ToIR(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses JSON bytes and decodes the result into out.
func Unmarshal(d []byte, out any, opts ...parse.ParseOption) error {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return err
	}
	return FromIR(node, out)
}
