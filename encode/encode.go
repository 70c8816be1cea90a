package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jdom-format/go-jdom/format"
	"github.com/jdom-format/go-jdom/ir"
	"github.com/jdom-format/go-jdom/token"
)

// ErrEncoding wraps values that have no document text form.
var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. The default rendering is Minimized; see
// EncodeFormat and Indent.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		format: format.Minimized,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return writeColored(w, es, ir.StringType, ValueColor, token.Quote(node.String))
	case ir.NumberType:
		s, err := formatNumber(node.Float64)
		if err != nil {
			return err
		}
		return writeColored(w, es, ir.NumberType, ValueColor, s)
	case ir.BoolType:
		return writeColored(w, es, ir.BoolType, ValueColor, strconv.FormatBool(node.Bool))
	case ir.NullType:
		return writeColored(w, es, ir.NullType, ValueColor, "null")
	default:
		panic("type")
	}
}

// formatNumber uses the shortest decimal form that parses back to the
// same float64. Integral values render without fraction or exponent
// when that form is shortest, so int-valued trees round-trip textually.
// NaN and the infinities have no number grammar and are rejected.
func formatNumber(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("%w: number %v has no text form", ErrEncoding, v)
	}
	return strconv.FormatFloat(v, 'g', -1, 64), nil
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeColored(w, es, ir.ObjectType, SepColor, "{"); err != nil {
		return err
	}
	es.depth++
	for i, f := range node.Fields {
		if i > 0 {
			if err := writeColored(w, es, ir.ObjectType, SepColor, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeColored(w, es, ir.ObjectType, FieldColor, token.Quote(f)); err != nil {
			return err
		}
		if err := writeColored(w, es, ir.ObjectType, SepColor, colon(es)); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if len(node.Fields) != 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeColored(w, es, ir.ObjectType, SepColor, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeColored(w, es, ir.ArrayType, SepColor, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeColored(w, es, ir.ArrayType, SepColor, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if len(node.Values) != 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeColored(w, es, ir.ArrayType, SepColor, "]")
}

// writeNL starts an indented line in Pretty mode and is a no-op in
// Minimized mode.
func writeNL(w io.Writer, es *EncState) error {
	if es.format.IsMinimized() {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func colon(es *EncState) string {
	if es.format.IsMinimized() {
		return ":"
	}
	return ": "
}

func writeColored(w io.Writer, es *EncState, t ir.Type, attr ColorAttr, v string) error {
	if es.Color != nil {
		v = es.Color(t, attr, v)
	}
	return writeString(w, v)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
